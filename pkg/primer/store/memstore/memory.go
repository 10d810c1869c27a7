// Package memstore is an in-memory store.Store implementation for tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/primer/pkg/primer/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	runs     map[string]store.Run
	refIndex map[string]string
	order    []string // run IDs in insertion order
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:     make(map[string]store.Run),
		refIndex: make(map[string]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertRun stores a run, replacing any previous run for the same DocRef.
func (s *Store) UpsertRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.refIndex[r.DocRef]; ok {
		delete(s.runs, old)
		for i, id := range s.order {
			if id == old {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}

	s.runs[r.ID] = r
	s.refIndex[r.DocRef] = r.ID
	s.order = append(s.order, r.ID)
	return nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	return r, ok, nil
}

// GetRunByDocRef retrieves a run by document reference.
func (s *Store) GetRunByDocRef(ctx context.Context, ref string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.refIndex[ref]
	if !ok {
		return store.Run{}, false, nil
	}
	r, ok := s.runs[id]
	return r, ok, nil
}

// ListRuns returns the most recently stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	var out []store.Run
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.runs[s.order[i]])
	}
	return out, nil
}

// TopTerms aggregates terms across runs by summed score mass.
func (s *Store) TopTerms(ctx context.Context, limit int) ([]store.AggregateTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 25
	}

	agg := make(map[string]*store.AggregateTerm)
	for _, id := range s.order {
		for _, t := range s.runs[id].Terms {
			a, ok := agg[t.Term]
			if !ok {
				a = &store.AggregateTerm{Term: t.Term}
				agg[t.Term] = a
			}
			a.Docs++
			a.ScoreMass += t.Score
		}
	}

	out := make([]store.AggregateTerm, 0, len(agg))
	for _, a := range agg {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScoreMass != out[j].ScoreMass {
			return out[i].ScoreMass > out[j].ScoreMass
		}
		return out[i].Term < out[j].Term
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
