package analyze

import "github.com/antzucaro/matchr"

// suggestThreshold is the minimum Jaro-Winkler similarity required before a
// phonetically matched dictionary word is offered as a suggestion.
const suggestThreshold = 0.8

// suggest returns the dictionary word most likely meant by the unknown word,
// or "" when nothing is convincingly close.
//
// Candidates are filtered by Double Metaphone code overlap, then ranked by
// Jaro-Winkler similarity on the spellings; the best candidate wins if it
// clears the threshold. Both stages come from the matchr library.
func (f *Finder) suggest(word string) string {
	if word == "" {
		return ""
	}

	wp, ws := matchr.DoubleMetaphone(word)

	var (
		best      string
		bestScore float64
	)
	for candidate := range f.dict.All() {
		cp, cs := matchr.DoubleMetaphone(candidate)
		if !codesOverlap(wp, ws, cp, cs) {
			continue
		}
		if score := matchr.JaroWinkler(word, candidate, false); score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore < suggestThreshold {
		return ""
	}
	return best
}

// codesOverlap reports whether any non-empty Double Metaphone code is shared
// between the two (primary, secondary) code pairs.
func codesOverlap(ap, as, bp, bs string) bool {
	for _, a := range [2]string{ap, as} {
		if a == "" {
			continue
		}
		if a == bp || a == bs {
			return true
		}
	}
	return false
}
