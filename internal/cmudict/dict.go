// Package cmudict provides an immutable in-memory pronunciation dictionary in
// CMU Pronouncing Dictionary format.
//
// A [Dict] maps lowercase words to one or more [Pronunciation] variants, each
// an ordered sequence of ARPAbet phoneme tokens. Vowel phonemes carry a
// trailing stress digit (0 = unstressed, 1 = primary, 2 = secondary);
// consonant phonemes carry no digit. A Dict is write-once/read-many: after
// [Parse] or [Load] returns it is never mutated, so all methods are safe for
// concurrent use without locking.
//
// Word iteration order is the file order of each word's first appearance.
// This keeps scans over the dictionary deterministic, which matters for
// callers that truncate their results.
package cmudict

import "iter"

// Pronunciation is an ordered sequence of ARPAbet phoneme tokens, e.g.
// ["HH", "AH0", "L", "OW1"] for "hello".
type Pronunciation []string

// Syllables returns the number of stress-bearing phoneme tokens in p. Each
// vowel sound carries a stress digit, so this count is the standard CMU
// syllable-count heuristic.
func (p Pronunciation) Syllables() int {
	n := 0
	for _, tok := range p {
		if isVowelToken(tok) {
			n++
		}
	}
	return n
}

// RhymePart returns the suffix of p starting at the first phoneme that is a
// vowel carrying primary or secondary stress — the stressed vowel plus
// everything after it, which is the rhyming part of the word in phonetic
// terms. Returns nil when p contains no stressed vowel (no rhyme part is
// derivable).
//
// The returned slice aliases p; callers must not modify it.
func (p Pronunciation) RhymePart() []string {
	for i, tok := range p {
		if isStressedVowel(tok) {
			return p[i:]
		}
	}
	return nil
}

// EndsWith reports whether p's phoneme sequence has the same or greater
// length as suffix and ends with it, token for token.
func (p Pronunciation) EndsWith(suffix []string) bool {
	if len(suffix) == 0 || len(p) < len(suffix) {
		return false
	}
	off := len(p) - len(suffix)
	for i, tok := range suffix {
		if p[off+i] != tok {
			return false
		}
	}
	return true
}

// isVowelToken reports whether tok is a vowel phoneme, i.e. ends in a stress
// digit 0, 1, or 2.
func isVowelToken(tok string) bool {
	if tok == "" {
		return false
	}
	switch tok[len(tok)-1] {
	case '0', '1', '2':
		return true
	}
	return false
}

// isStressedVowel reports whether tok is a vowel phoneme carrying primary or
// secondary stress (trailing digit 1 or 2).
func isStressedVowel(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[len(tok)-1]
	return c == '1' || c == '2'
}

// Dict is an immutable pronunciation dictionary. Create instances with
// [Parse], [Load], or [Default]; the zero value is empty but usable.
type Dict struct {
	entries map[string][]Pronunciation
	words   []string // insertion order of first appearance
}

// Lookup returns the pronunciation variants for word (matched
// case-insensitively), in dictionary order with the base entry first.
// Returns nil when word is not in the dictionary.
//
// The returned slice aliases the Dict's internal storage; callers must not
// modify it.
func (d *Dict) Lookup(word string) []Pronunciation {
	return d.entries[lower(word)]
}

// Contains reports whether word (matched case-insensitively) has at least one
// pronunciation.
func (d *Dict) Contains(word string) bool {
	_, ok := d.entries[lower(word)]
	return ok
}

// Len returns the number of distinct words in the dictionary.
func (d *Dict) Len() int {
	return len(d.words)
}

// Words returns a copy of all dictionary words in insertion order.
func (d *Dict) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// All iterates over every word and its pronunciation variants in insertion
// order. The yielded slices alias the Dict's internal storage.
func (d *Dict) All() iter.Seq2[string, []Pronunciation] {
	return func(yield func(string, []Pronunciation) bool) {
		for _, w := range d.words {
			if !yield(w, d.entries[w]) {
				return
			}
		}
	}
}

// lower is an ASCII-fast lowercase used for dictionary keys. CMU dictionary
// headwords are ASCII; full Unicode folding is unnecessary here.
func lower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
