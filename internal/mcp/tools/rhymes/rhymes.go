// Package rhymes provides the "find_rhymes" MCP tool: perfect-rhyme lookup
// for a word (or the final word of a phrase) against the CMU pronunciation
// dictionary, grouped by syllable count.
//
// A word with no dictionary entry is a normal, expected outcome: the handler
// returns a structured {"error": ...} record rather than a tool failure, so
// clients always receive a well-formed JSON result.
package rhymes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ForceConstant/lyrical-mcp/internal/analyze"
	"github.com/ForceConstant/lyrical-mcp/internal/mcp/tools"
)

// findArgs is the JSON-decoded input for the "find_rhymes" tool.
type findArgs struct {
	// InputWord is the word or phrase to rhyme. For a phrase, only the final
	// whitespace-separated word is analyzed.
	InputWord string `json:"input_word"`
}

// errorRecord is the structured not-found result.
type errorRecord struct {
	Error string `json:"error"`
}

// handler returns the "find_rhymes" handler closed over finder.
func handler(finder *analyze.Finder) func(context.Context, string) (string, error) {
	return func(_ context.Context, args string) (string, error) {
		var a findArgs
		if err := json.Unmarshal([]byte(args), &a); err != nil {
			return "", fmt.Errorf("rhymes: find_rhymes: failed to parse arguments: %w", err)
		}

		groups, err := finder.FindRhymes(a.InputWord)
		if err != nil {
			var notFound *analyze.NotFoundError
			if errors.As(err, &notFound) {
				res, merr := json.Marshal(errorRecord{Error: notFound.Error()})
				if merr != nil {
					return "", fmt.Errorf("rhymes: find_rhymes: failed to encode error record: %w", merr)
				}
				return string(res), nil
			}
			return "", fmt.Errorf("rhymes: find_rhymes: %w", err)
		}

		res, err := json.Marshal(groups)
		if err != nil {
			return "", fmt.Errorf("rhymes: find_rhymes: failed to encode result: %w", err)
		}
		return string(res), nil
	}
}

// Tools returns the rhyme-lookup tool ready for registration with the MCP
// server.
func Tools(finder *analyze.Finder) []tools.Tool {
	return []tools.Tool{
		{
			Definition: tools.Definition{
				Name:        "find_rhymes",
				Description: "Find words that rhyme with the input word, grouped by syllable count (1, 2, or 3 syllables). For a multi-word phrase, rhymes are found for the final word. Returns {\"error\": ...} when the word is not in the dictionary.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input_word": map[string]any{
							"type":        "string",
							"description": "Word to find rhymes for. A phrase is rhymed on its last word.",
						},
					},
					"required": []string{"input_word"},
				},
			},
			Handler: handler(finder),
		},
	}
}
