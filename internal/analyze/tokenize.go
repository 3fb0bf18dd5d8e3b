// Package analyze implements the two text-analysis operations served by
// lyrical-mcp: per-line syllable counting ([Counter]) and rhyme lookup
// ([Finder]). Both operate over an immutable [cmudict.Dict] and are safe for
// concurrent use — no state is shared beyond the read-only dictionary.
package analyze

import (
	"strings"
	"unicode"
)

// Tokenize splits a line of text into lowercase word tokens. Any rune that is
// not a letter, a digit, or an apostrophe is a separator, so punctuation-only
// runs produce no tokens. Apostrophes are kept inside tokens so contractions
// like "don't" can match dictionary entries.
func Tokenize(line string) []string {
	return strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// splitLines splits text on line breaks ("\n", "\r\n", or bare "\r"),
// matching the splitlines convention: a trailing line break does not produce
// an extra empty line, and an empty input yields no lines at all.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
