// Package store defines persistence for extraction runs and their ranked
// terms. The extraction core itself never touches a store; persistence is a
// downstream concern for batch vocabulary priming.
package store

import (
	"context"
	"time"
)

// Store persists extraction runs and answers aggregate term queries.
type Store interface {
	Close() error

	// Runs
	UpsertRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	GetRunByDocRef(ctx context.Context, ref string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Aggregates
	TopTerms(ctx context.Context, limit int) ([]AggregateTerm, error)
}

// Run is one stored extraction: the document it came from and its ranked
// terms. Re-extracting the same DocRef replaces the previous run.
type Run struct {
	ID          string // ULID
	DocRef      string // caller-supplied document reference (URL, path, ...)
	Title       string
	ExtractedAt time.Time
	TokenCount  int
	Terms       []Term
}

// Term is one ranked term within a run.
type Term struct {
	Term  string
	Score float64
	Rank  int // 1-based position in the run's ranking
}

// AggregateTerm summarizes one term across runs.
type AggregateTerm struct {
	Term      string
	Docs      int     // number of runs the term appears in
	ScoreMass float64 // summed score across runs
}
