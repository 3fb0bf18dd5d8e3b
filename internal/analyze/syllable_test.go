package analyze

import (
	"slices"
	"testing"

	"github.com/ForceConstant/lyrical-mcp/internal/cmudict"
)

func testDict(t *testing.T) *cmudict.Dict {
	t.Helper()
	d, err := cmudict.Default()
	if err != nil {
		t.Fatalf("failed to load embedded dictionary: %v", err)
	}
	return d
}

func TestCountText_PerLine(t *testing.T) {
	t.Parallel()
	c := NewCounter(testDict(t))

	tests := []struct {
		name string
		text string
		want []int
	}{
		{"single word", "hello", []int{2}},
		{"blank middle line", "hello\n\nworld", []int{2, 0, 1}},
		{"two words one line", "hello world", []int{3}},
		{"empty input has no lines", "", []int{}},
		{"trailing newline adds no line", "hello world\n", []int{3}},
		{"only a newline is one empty line", "\n", []int{0}},
		{"windows line endings", "cat\r\nhat", []int{1, 1}},
		{"bare carriage return", "cat\rhat", []int{1, 1}},
		{"case insensitive", "Hello World", []int{3}},
		{"punctuation ignored", "cat, hat!", []int{2}},
		{"punctuation-only line", "...", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CountText(tt.text)
			if got == nil {
				t.Fatal("CountText returned nil")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("CountText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountText_DictionaryBeatsFallback(t *testing.T) {
	t.Parallel()
	c := NewCounter(testDict(t))

	// "banana" has three stress-bearing phonemes but only three vowel
	// letters too; "beautiful" separates the two: the dictionary says 3,
	// the vowel fallback would say 5.
	if got := c.CountText("beautiful"); !slices.Equal(got, []int{3}) {
		t.Errorf("CountText(beautiful) = %v, want [3]", got)
	}
}

func TestCountText_UnknownWordFallsBackToVowels(t *testing.T) {
	t.Parallel()
	c := NewCounter(testDict(t))

	tests := []struct {
		text string
		want []int
	}{
		{"xylophone", []int{4}}, // y, o, o, e
		{"qqq", []int{0}},       // no vowel letters at all
		{"zzyzx", []int{1}},     // single y
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := c.CountText(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("CountText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"lowercases", "Hello World", []string{"hello", "world"}},
		{"strips punctuation", "cat, hat!", []string{"cat", "hat"}},
		{"keeps apostrophes", "don't stop", []string{"don't", "stop"}},
		{"empty", "", nil},
		{"punctuation only", "?!...", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
