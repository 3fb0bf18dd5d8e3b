package syllables

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/ForceConstant/lyrical-mcp/internal/analyze"
	"github.com/ForceConstant/lyrical-mcp/internal/cmudict"
)

func newHandler(t *testing.T) func(context.Context, string) (string, error) {
	t.Helper()
	dict, err := cmudict.Default()
	if err != nil {
		t.Fatalf("failed to load embedded dictionary: %v", err)
	}
	return handler(analyze.NewCounter(dict))
}

func TestCountSyllables(t *testing.T) {
	t.Parallel()
	h := newHandler(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"multi line with blank", "hello\n\nworld", []int{2, 0, 1}},
		{"single line", "hello world", []int{3}},
		{"empty string", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, _ := json.Marshal(countArgs{InputString: tt.input})
			out, err := h(ctx, string(args))
			if err != nil {
				t.Fatalf("handler unexpected error: %v", err)
			}

			var counts []int
			if err := json.Unmarshal([]byte(out), &counts); err != nil {
				t.Fatalf("failed to unmarshal: %v\noutput: %s", err, out)
			}
			if !slices.Equal(counts, tt.want) {
				t.Errorf("counts = %v, want %v", counts, tt.want)
			}
		})
	}
}

func TestCountSyllables_EmptyInputIsJSONArray(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	out, err := h(context.Background(), `{"input_string": ""}`)
	if err != nil {
		t.Fatalf("handler unexpected error: %v", err)
	}
	if out != "[]" {
		t.Errorf("output = %q, want %q", out, "[]")
	}
}

func TestCountSyllables_MalformedArguments(t *testing.T) {
	t.Parallel()
	h := newHandler(t)

	if _, err := h(context.Background(), "not json"); err == nil {
		t.Error("expected an error for malformed arguments")
	}
}

func TestTools_Definition(t *testing.T) {
	t.Parallel()
	dict, err := cmudict.Default()
	if err != nil {
		t.Fatalf("failed to load embedded dictionary: %v", err)
	}

	ts := Tools(analyze.NewCounter(dict))
	if len(ts) != 1 {
		t.Fatalf("Tools returned %d tools, want 1", len(ts))
	}
	def := ts[0].Definition
	if def.Name != "count_syllables" {
		t.Errorf("name = %q, want count_syllables", def.Name)
	}
	required, _ := def.Parameters["required"].([]string)
	if !slices.Contains(required, "input_string") {
		t.Errorf("input_string must be required, got %v", def.Parameters["required"])
	}
}
