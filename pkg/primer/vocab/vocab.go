// Package vocab turns per-document extraction results into a primed
// vocabulary: it stamps runs with ULID identifiers and aggregates ranked
// terms across many documents.
package vocab

import (
	"crypto/rand"
	"sort"
	"strings"
	"time"

	"github.com/kljensen/snowball"
	"github.com/oklog/ulid/v2"

	"github.com/cognicore/primer/pkg/primer"
	"github.com/cognicore/primer/pkg/primer/store"
)

// Builder stamps extraction results into store runs with ULID identifiers.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// NewBuilder creates a run builder.
func NewBuilder() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Run converts one extraction result into a storable run.
func (b *Builder) Run(docRef, title string, res primer.Result, at time.Time) store.Run {
	terms := make([]store.Term, len(res.Terms))
	for i, t := range res.Terms {
		terms[i] = store.Term{Term: t.Term, Score: t.Score, Rank: i + 1}
	}
	return store.Run{
		ID:          ulid.MustNew(ulid.Timestamp(at), b.entropy).String(),
		DocRef:      docRef,
		Title:       title,
		ExtractedAt: at,
		TokenCount:  res.TokenCount,
		Terms:       terms,
	}
}

// Entry is one aggregated vocabulary term.
type Entry struct {
	Term      string  // display form: the first surface seen for this entry
	Docs      int     // number of runs contributing
	ScoreMass float64 // summed score across runs
}

// Aggregator merges ranked terms across runs. With stem folding enabled,
// surface variants whose stemmed words coincide ("graph"/"graphs") share one
// entry; the first surface seen becomes the display form. Folding is a
// vocabulary-building convenience and never feeds back into single-document
// scoring.
type Aggregator struct {
	fold    bool
	entries map[string]*Entry
	order   []string // entry keys in first-seen order
}

// NewAggregator creates an aggregator. fold enables snowball stem folding.
func NewAggregator(fold bool) *Aggregator {
	return &Aggregator{
		fold:    fold,
		entries: make(map[string]*Entry),
	}
}

// Add tallies one run's terms into the vocabulary.
func (a *Aggregator) Add(r store.Run) {
	for _, t := range r.Terms {
		key := t.Term
		if a.fold {
			key = stemKey(t.Term)
		}
		e, ok := a.entries[key]
		if !ok {
			e = &Entry{Term: t.Term}
			a.entries[key] = e
			a.order = append(a.order, key)
		}
		e.Docs++
		e.ScoreMass += t.Score
	}
}

// Top returns the k highest-mass entries, ties resolved by first-seen order.
func (a *Aggregator) Top(k int) []Entry {
	out := make([]Entry, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, *a.entries[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScoreMass > out[j].ScoreMass
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// stemKey stems each word of a term. Words the stemmer cannot handle are
// kept as-is.
func stemKey(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		stemmed, err := snowball.Stem(w, "english", true)
		if err != nil {
			continue
		}
		words[i] = stemmed
	}
	return strings.Join(words, " ")
}
