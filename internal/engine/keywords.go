package engine

import (
	"sort"
	"strings"
)

// Entry is a word with its current weight.
type Entry struct {
	Word   string `json:"word"`
	Weight Weight `json:"weight"`
}

// Set is a case-insensitive word → Weight map. Two words differing
// only in case share one entry; the casing of the first-stored form is
// kept for output.
type Set struct {
	entries map[string]*Entry
}

// NewSet returns an empty keyword set.
func NewSet() *Set {
	return &Set{entries: make(map[string]*Entry)}
}

// foldKey is the case-insensitive key form of a word. The normalizer
// only emits ASCII and Latin-1 letters, for which lower-casing is an
// exact case fold.
func foldKey(word string) string {
	return strings.ToLower(word)
}

// Len returns the number of distinct words in the set.
func (s *Set) Len() int {
	return len(s.entries)
}

// Get returns the current weight of word, matched case-insensitively.
func (s *Set) Get(word string) (Weight, bool) {
	e, ok := s.entries[foldKey(word)]
	if !ok {
		return 0, false
	}
	return e.Weight, true
}

// adjust applies a signed delta to word's weight, saturating at the
// weight bounds. When the word is absent it is inserted only if insert
// is set: a non-negative delta becomes the initial weight (clamped), a
// negative one inserts at MinWeight. Returns false when the word is
// absent and insert is not set.
func (s *Set) adjust(word string, delta int64, insert bool) bool {
	key := foldKey(word)
	if e, ok := s.entries[key]; ok {
		e.Weight = clampWeight(int64(e.Weight) + delta)
		return true
	}
	if !insert {
		return false
	}
	w := MinWeight
	if delta >= 0 {
		w = clampWeight(delta)
	}
	s.entries[key] = &Entry{Word: word, Weight: w}
	return true
}

// put inserts or overwrites word with the given weight, clamped into
// bounds. An existing entry keeps its stored casing.
func (s *Set) put(word string, w Weight) {
	key := foldKey(word)
	w = clampWeight(int64(w))
	if e, ok := s.entries[key]; ok {
		e.Weight = w
		return
	}
	s.entries[key] = &Entry{Word: word, Weight: w}
}

// merge folds other into s, keeping the higher weight for words
// present in both. Weights in s never decrease.
func (s *Set) merge(other *Set) {
	for key, oe := range other.entries {
		if e, ok := s.entries[key]; ok {
			if oe.Weight > e.Weight {
				e.Weight = oe.Weight
			}
			continue
		}
		s.entries[key] = &Entry{Word: oe.Word, Weight: oe.Weight}
	}
}

// Sorted returns the entries in descending weight order. Equal weights
// are ordered lexicographically by folded word, so iteration order is
// deterministic.
func (s *Set) Sorted() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return foldKey(out[i].Word) < foldKey(out[j].Word)
	})
	return out
}
