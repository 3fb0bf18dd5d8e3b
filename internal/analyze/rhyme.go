package analyze

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ForceConstant/lyrical-mcp/internal/cmudict"
)

// defaultMaxPerBucket caps how many rhymes are returned per syllable bucket.
const defaultMaxPerBucket = 20

// Groups holds rhyme candidates bucketed by their own syllable count.
// Candidates whose syllable count falls outside 1–3 are not reported.
// All three slices are non-nil so the buckets always serialize as arrays.
type Groups struct {
	OneSyllable   []string `json:"1_syllable"`
	TwoSyllable   []string `json:"2_syllable"`
	ThreeSyllable []string `json:"3_syllable"`
}

// NotFoundError is returned by [Finder.FindRhymes] when the queried word has
// no dictionary entry. It is an expected outcome, not a fault: callers render
// it as a structured error record. When a phonetically similar dictionary
// word exists, Suggestion carries it.
type NotFoundError struct {
	Word       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("'%s' not found in dictionary. Cannot find rhymes.", e.Word)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" Did you mean '%s'?", e.Suggestion)
	}
	return msg
}

// Option is a functional option for configuring a [Finder].
type Option func(*Finder)

// WithMaxPerBucket caps the number of rhymes kept per syllable bucket.
// Values < 1 leave the default of 20 in place.
func WithMaxPerBucket(n int) Option {
	return func(f *Finder) {
		if n >= 1 {
			f.maxPerBucket = n
		}
	}
}

// Finder looks up perfect rhymes in a pronunciation dictionary: words whose
// phoneme sequence ends with the queried word's rhyme part (first stressed
// vowel plus everything after it). Finder is read-only after construction and
// safe for concurrent use.
type Finder struct {
	dict         *cmudict.Dict
	maxPerBucket int
}

// NewFinder returns a Finder backed by dict, configured with the supplied
// options.
func NewFinder(dict *cmudict.Dict, opts ...Option) *Finder {
	f := &Finder{
		dict:         dict,
		maxPerBucket: defaultMaxPerBucket,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// FindRhymes returns rhymes for the last whitespace-separated token of
// phrase, so a multi-word phrase rhymes on its final word. Every
// pronunciation variant of the queried word is tried independently and the
// results are merged: a candidate matches when one of its own variants ends
// with the variant's rhyme part, token for token, and it is bucketed by that
// matched variant's syllable count. Buckets are de-duplicated (first
// occurrence kept), ordered by dictionary iteration order, and capped.
//
// The queried word itself never appears in the result. When the phrase is
// empty or its final word is not in the dictionary, FindRhymes returns a
// [*NotFoundError].
func (f *Finder) FindRhymes(phrase string) (Groups, error) {
	groups := Groups{
		OneSyllable:   []string{},
		TwoSyllable:   []string{},
		ThreeSyllable: []string{},
	}

	fields := strings.Fields(strings.ToLower(phrase))
	if len(fields) == 0 {
		return groups, &NotFoundError{Word: strings.TrimSpace(phrase)}
	}
	word := fields[len(fields)-1]

	prons := f.dict.Lookup(word)
	if len(prons) == 0 {
		return groups, &NotFoundError{Word: word, Suggestion: f.suggest(word)}
	}

	for _, pron := range prons {
		rhymePart := pron.RhymePart()
		if rhymePart == nil {
			// No stressed vowel in this variant; no rhyme part derivable.
			continue
		}

		for candidate, candidateProns := range f.dict.All() {
			if candidate == word {
				continue
			}
			for _, cp := range candidateProns {
				if !cp.EndsWith(rhymePart) {
					continue
				}
				switch cp.Syllables() {
				case 1:
					groups.OneSyllable = appendUnique(groups.OneSyllable, candidate)
				case 2:
					groups.TwoSyllable = appendUnique(groups.TwoSyllable, candidate)
				case 3:
					groups.ThreeSyllable = appendUnique(groups.ThreeSyllable, candidate)
				}
			}
		}
	}

	groups.OneSyllable = truncate(groups.OneSyllable, f.maxPerBucket)
	groups.TwoSyllable = truncate(groups.TwoSyllable, f.maxPerBucket)
	groups.ThreeSyllable = truncate(groups.ThreeSyllable, f.maxPerBucket)
	return groups, nil
}

// appendUnique appends word to bucket unless it is already present.
func appendUnique(bucket []string, word string) []string {
	if slices.Contains(bucket, word) {
		return bucket
	}
	return append(bucket, word)
}

// truncate caps bucket at max entries, preserving order.
func truncate(bucket []string, max int) []string {
	if len(bucket) > max {
		return bucket[:max]
	}
	return bucket
}
