// Package engine implements an incremental keyword-weighting engine.
// Messages are fed in one at a time; the engine keeps a running
// word → weight map across the whole stream and returns a ranked
// keyword summary for each message.
package engine

import (
	"strings"
	"unicode/utf8"
)

const weightIncrement = 1

// Engine accumulates keyword weights over a message stream. It is not
// safe for concurrent use; one goroutine owns an instance at a time.
type Engine struct {
	cfg      Config
	keywords *Set
	messages []string
}

// New returns an empty engine with the given tunables.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, keywords: NewSet()}
}

// Feed ingests one message and returns its ranked keyword summary.
//
// The message is normalized, weighted against the accumulated state,
// and the per-message weights are then merged back so later calls see
// them. The summary is limited to a window proportional to the
// normalized message's character length.
func (e *Engine) Feed(message string) string {
	clean := Normalize(message)
	local := e.weighMessage(clean)

	window := utf8.RuneCountInString(clean) * e.cfg.TakeWordsPercentage / 100
	out := e.extract(local, window)

	e.messages = append(e.messages, clean)
	e.keywords.merge(local)

	return out
}

// FeedEmpty returns a ranked summary of the accumulated keyword state
// without consuming a message. Pure read.
func (e *Engine) FeedEmpty() string {
	return e.extract(e.keywords, e.cfg.TakeWordsMax)
}

// PrioritizeKeyword bumps a known keyword's weight by one, saturating
// at the upper bound. Returns false if the word has never been seen;
// unknown words are not inserted.
func (e *Engine) PrioritizeKeyword(word string) bool {
	return e.keywords.adjust(word, weightIncrement, false)
}

// TrivializeKeyword lowers a known keyword's weight by one, saturating
// at the lower bound. Returns false if the word has never been seen.
func (e *Engine) TrivializeKeyword(word string) bool {
	return e.keywords.adjust(word, -weightIncrement, false)
}

// Keywords returns a snapshot of the accumulated keyword state in
// descending weight order.
func (e *Engine) Keywords() []Entry {
	return e.keywords.Sorted()
}

// Restore seeds the accumulated state from a snapshot, clamping
// weights into bounds. Intended for rehydrating an engine from
// persisted state before feeding.
func (e *Engine) Restore(entries []Entry) {
	for _, ent := range entries {
		e.keywords.put(ent.Word, ent.Weight)
	}
}

// History returns the normalized messages fed so far, in order. The
// ranking path never reads it; it exists for auditing and persistence.
func (e *Engine) History() []string {
	return e.messages
}

// weighMessage builds the per-message keyword set. Every token
// occurrence adds one, then each distinct word gets a second delta:
// plus its accumulated weight when already known, minus one when brand
// new, so recurring vocabulary outranks one-off words.
func (e *Engine) weighMessage(clean string) *Set {
	words := strings.Fields(clean)
	local := NewSet()

	for _, w := range words {
		local.adjust(w, weightIncrement, true)
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		key := foldKey(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		if g, ok := e.keywords.Get(w); ok {
			local.adjust(w, int64(g), true)
		} else {
			local.adjust(w, -weightIncrement, true)
		}
	}

	return local
}

// extract renders a keyword set as a ranked, space-joined string.
// Entries below the weight threshold or shorter than the minimum word
// length are dropped. A non-negative limit is clamped into the
// configured window bounds; a negative limit takes everything.
func (e *Engine) extract(set *Set, limit int) string {
	if limit >= 0 {
		floor := e.cfg.MinWordLength
		if e.cfg.UseTakeWordsMin {
			floor = e.cfg.TakeWordsMin
		}
		if limit < floor {
			limit = floor
		}
		if limit > e.cfg.TakeWordsMax {
			limit = e.cfg.TakeWordsMax
		}
		if limit == 0 {
			return ""
		}
	}

	var out []string
	for _, ent := range set.Sorted() {
		if ent.Weight < e.cfg.Threshold {
			continue
		}
		if utf8.RuneCountInString(ent.Word) < e.cfg.MinWordLength {
			continue
		}
		out = append(out, ent.Word)
		if limit >= 0 && len(out) >= limit {
			break
		}
	}
	return strings.Join(out, " ")
}
