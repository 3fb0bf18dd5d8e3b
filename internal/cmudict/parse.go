package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseStats summarises a parse run, for startup logging.
type ParseStats struct {
	// Words is the number of distinct headwords parsed.
	Words int

	// Variants is the number of alternate pronunciations (entries of the
	// form "WORD(1)", "WORD(2)", ...) attached to existing headwords.
	Variants int

	// Skipped is the number of malformed lines that were ignored.
	Skipped int
}

// Parse reads a CMU Pronouncing Dictionary from r and returns the resulting
// [Dict].
//
// The expected format is one entry per line:
//
//	WORD  PH0 PH1 PH2 ...
//
// Comment lines starting with ";;;" and blank lines are skipped. Alternate
// pronunciations use the "WORD(1)" convention and are appended to the base
// word's variant list in file order, so the unsuffixed entry stays first.
// Headwords are lowercased; phoneme tokens are kept verbatim. Malformed
// lines (no phonemes) are counted in [ParseStats.Skipped] rather than
// failing the whole load.
func Parse(r io.Reader) (*Dict, ParseStats, error) {
	d := &Dict{entries: make(map[string][]Pronunciation)}
	var stats ParseStats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			stats.Skipped++
			continue
		}

		word, isVariant := splitHeadword(fields[0])
		if word == "" {
			stats.Skipped++
			continue
		}

		pron := Pronunciation(fields[1:])
		if _, known := d.entries[word]; !known {
			d.words = append(d.words, word)
			stats.Words++
		} else if isVariant {
			stats.Variants++
		}
		d.entries[word] = append(d.entries[word], pron)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("cmudict: read: %w", err)
	}

	return d, stats, nil
}

// Load reads and parses the CMU dictionary file at path.
func Load(path string) (*Dict, ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("cmudict: open %q: %w", path, err)
	}
	defer f.Close()

	d, stats, err := Parse(f)
	if err != nil {
		return nil, stats, fmt.Errorf("cmudict: parse %q: %w", path, err)
	}
	return d, stats, nil
}

// splitHeadword lowercases a headword token and strips a trailing variant
// marker like "(1)". Returns isVariant true when a marker was present.
func splitHeadword(tok string) (word string, isVariant bool) {
	if i := strings.IndexByte(tok, '('); i >= 0 {
		return lower(tok[:i]), true
	}
	return lower(tok), false
}
