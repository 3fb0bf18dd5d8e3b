package analyze

import (
	"strings"

	"github.com/ForceConstant/lyrical-mcp/internal/cmudict"
)

// vowelLetters is the character set used by the out-of-vocabulary fallback.
// Counting these letters is a crude approximation of syllable count and is
// intentionally imprecise for words the dictionary does not know.
const vowelLetters = "aeiouy"

// Counter counts syllables per line of text using a pronunciation dictionary
// with a vowel-letter fallback for unknown words.
type Counter struct {
	dict *cmudict.Dict
}

// NewCounter returns a Counter backed by dict.
func NewCounter(dict *cmudict.Dict) *Counter {
	return &Counter{dict: dict}
}

// CountText returns one syllable count per line of text, in input order.
// Lines are split on "\n", "\r\n", or "\r"; an empty line counts 0. The
// result always has exactly as many entries as text has lines, and the
// returned slice is never nil.
func (c *Counter) CountText(text string) []int {
	lines := splitLines(text)
	counts := make([]int, 0, len(lines))
	for _, line := range lines {
		counts = append(counts, c.countLine(line))
	}
	return counts
}

// countLine sums the per-word syllable counts of every token in line.
func (c *Counter) countLine(line string) int {
	total := 0
	for _, word := range Tokenize(line) {
		total += c.countWord(word)
	}
	return total
}

// countWord returns the syllable count for a single lowercase word. Words in
// the dictionary use their first pronunciation variant's stress-bearing
// phoneme count; unknown words fall back to counting vowel letters.
func (c *Counter) countWord(word string) int {
	if prons := c.dict.Lookup(word); len(prons) > 0 {
		return prons[0].Syllables()
	}

	n := 0
	for _, r := range word {
		if strings.ContainsRune(vowelLetters, r) {
			n++
		}
	}
	return n
}
