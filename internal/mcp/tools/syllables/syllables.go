// Package syllables provides the "count_syllables" MCP tool: per-line
// syllable counts for a block of text, computed against the CMU pronunciation
// dictionary with a vowel-letter fallback for unknown words.
//
// The handler never fails on input content — blank lines count 0 and
// punctuation-only tokens contribute nothing — so any text is safe to send.
package syllables

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ForceConstant/lyrical-mcp/internal/analyze"
	"github.com/ForceConstant/lyrical-mcp/internal/mcp/tools"
)

// countArgs is the JSON-decoded input for the "count_syllables" tool.
type countArgs struct {
	// InputString is the text to analyze; may span multiple lines.
	InputString string `json:"input_string"`
}

// handler returns the "count_syllables" handler closed over counter.
func handler(counter *analyze.Counter) func(context.Context, string) (string, error) {
	return func(_ context.Context, args string) (string, error) {
		var a countArgs
		if err := json.Unmarshal([]byte(args), &a); err != nil {
			return "", fmt.Errorf("syllables: count_syllables: failed to parse arguments: %w", err)
		}

		counts := counter.CountText(a.InputString)

		res, err := json.Marshal(counts)
		if err != nil {
			return "", fmt.Errorf("syllables: count_syllables: failed to encode result: %w", err)
		}
		return string(res), nil
	}
}

// Tools returns the syllable-counting tool ready for registration with the
// MCP server.
func Tools(counter *analyze.Counter) []tools.Tool {
	return []tools.Tool{
		{
			Definition: tools.Definition{
				Name:        "count_syllables",
				Description: "Count the number of syllables in each line of the input string. Returns one integer per line, in order. Uses the CMU Pronouncing Dictionary, falling back to a vowel-count heuristic for unknown words.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input_string": map[string]any{
							"type":        "string",
							"description": "Text to analyze. May contain multiple lines; each line is counted separately.",
						},
					},
					"required": []string{"input_string"},
				},
			},
			Handler: handler(counter),
		},
	}
}
