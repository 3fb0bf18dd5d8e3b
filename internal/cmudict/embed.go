package cmudict

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

// embeddedData is a curated subset of the CMU Pronouncing Dictionary shipped
// with the binary so the server works with no external files. A full
// dictionary file can be configured instead via dictionary.path.
//
//go:embed data/cmudict.dict
var embeddedData []byte

// defaultDict builds the embedded dictionary exactly once, even under
// concurrent first access.
var defaultDict = sync.OnceValues(func() (*Dict, error) {
	d, stats, err := Parse(bytes.NewReader(embeddedData))
	if err != nil {
		return nil, fmt.Errorf("cmudict: embedded dictionary: %w", err)
	}
	if stats.Words == 0 {
		return nil, fmt.Errorf("cmudict: embedded dictionary is empty")
	}
	return d, nil
})

// Default returns the dictionary built from the embedded CMU subset. The
// dictionary is constructed on first call and shared by all callers.
func Default() (*Dict, error) {
	return defaultDict()
}
