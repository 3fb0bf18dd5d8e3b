package cmudict

import (
	"slices"
	"strings"
	"testing"
)

const sampleDict = `;;; This is a comment line
;;; another comment

cat  K AE1 T
hat  HH AE1 T
hello  HH AH0 L OW1
HELLO(1)  HH EH0 L OW1
read  R IY1 D
read(1)  R EH1 D
broken
`

func TestParse_Basic(t *testing.T) {
	t.Parallel()

	d, stats, err := Parse(strings.NewReader(sampleDict))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}

	if stats.Words != 4 {
		t.Errorf("stats.Words = %d, want 4", stats.Words)
	}
	if stats.Variants != 2 {
		t.Errorf("stats.Variants = %d, want 2", stats.Variants)
	}
	if stats.Skipped != 1 {
		t.Errorf("stats.Skipped = %d, want 1", stats.Skipped)
	}
	if d.Len() != 4 {
		t.Errorf("Len() = %d, want 4", d.Len())
	}
}

func TestParse_VariantsKeepFileOrder(t *testing.T) {
	t.Parallel()

	d, _, err := Parse(strings.NewReader(sampleDict))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}

	prons := d.Lookup("hello")
	if len(prons) != 2 {
		t.Fatalf("Lookup(hello) returned %d variants, want 2", len(prons))
	}
	// The unsuffixed entry must stay first: syllable counting uses variant 0.
	if !slices.Equal([]string(prons[0]), []string{"HH", "AH0", "L", "OW1"}) {
		t.Errorf("first variant = %v, want the base entry", prons[0])
	}
	if !slices.Equal([]string(prons[1]), []string{"HH", "EH0", "L", "OW1"}) {
		t.Errorf("second variant = %v, want the (1) entry", prons[1])
	}
}

func TestParse_WordOrderIsFileOrder(t *testing.T) {
	t.Parallel()

	d, _, err := Parse(strings.NewReader(sampleDict))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}

	want := []string{"cat", "hat", "hello", "read"}
	if got := d.Words(); !slices.Equal(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}

	// All() must yield the same order.
	var iterated []string
	for w := range d.All() {
		iterated = append(iterated, w)
	}
	if !slices.Equal(iterated, want) {
		t.Errorf("All() order = %v, want %v", iterated, want)
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	d, stats, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if d.Len() != 0 || stats.Words != 0 {
		t.Errorf("empty input produced %d words", d.Len())
	}
	if d.Lookup("anything") != nil {
		t.Error("Lookup on empty dict should return nil")
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	t.Parallel()

	d, _, err := Parse(strings.NewReader(sampleDict))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}

	for _, word := range []string{"cat", "CAT", "Cat"} {
		if !d.Contains(word) {
			t.Errorf("Contains(%q) = false, want true", word)
		}
		if len(d.Lookup(word)) != 1 {
			t.Errorf("Lookup(%q) returned no pronunciations", word)
		}
	}
}

func TestDefault_EmbeddedDictionary(t *testing.T) {
	t.Parallel()

	d, err := Default()
	if err != nil {
		t.Fatalf("Default unexpected error: %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("embedded dictionary is empty")
	}

	// Spot-check a few well-known entries.
	if got := d.Lookup("hello")[0].Syllables(); got != 2 {
		t.Errorf("hello syllables = %d, want 2", got)
	}
	if got := d.Lookup("world")[0].Syllables(); got != 1 {
		t.Errorf("world syllables = %d, want 1", got)
	}
	if !d.Contains("cat") {
		t.Error("embedded dictionary is missing 'cat'")
	}

	// Default is shared; a second call returns the same instance.
	d2, err := Default()
	if err != nil {
		t.Fatalf("second Default call errored: %v", err)
	}
	if d != d2 {
		t.Error("Default returned a different instance on second call")
	}
}
