package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/primer/pkg/primer/store"
)

func sampleRun(id, ref string, at time.Time, terms ...store.Term) store.Run {
	return store.Run{
		ID:          id,
		DocRef:      ref,
		Title:       "Sample",
		ExtractedAt: at,
		TokenCount:  42,
		Terms:       terms,
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	run := sampleRun("01A", "doc://a", time.Now(),
		store.Term{Term: "graph theory", Score: 0.91, Rank: 1},
		store.Term{Term: "graph", Score: 0.72, Rank: 2},
	)
	if err := s.UpsertRun(ctx, run); err != nil {
		t.Fatalf("UpsertRun: %v", err)
	}

	got, ok, err := s.GetRun(ctx, "01A")
	if err != nil || !ok {
		t.Fatalf("GetRun: ok=%v err=%v", ok, err)
	}
	if got.DocRef != "doc://a" || len(got.Terms) != 2 {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.Terms[0].Term != "graph theory" || got.Terms[0].Rank != 1 {
		t.Errorf("Term order lost: %+v", got.Terms)
	}

	byRef, ok, err := s.GetRunByDocRef(ctx, "doc://a")
	if err != nil || !ok || byRef.ID != "01A" {
		t.Errorf("GetRunByDocRef: %+v ok=%v err=%v", byRef, ok, err)
	}
}

func TestMissingRun(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.GetRun(ctx, "nope"); ok || err != nil {
		t.Errorf("Missing ID must report ok=false, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := s.GetRunByDocRef(ctx, "doc://nope"); ok || err != nil {
		t.Errorf("Missing ref must report ok=false, got ok=%v err=%v", ok, err)
	}
}

func TestUpsertReplacesByDocRef(t *testing.T) {
	ctx := context.Background()
	s := New()

	at := time.Now()
	if err := s.UpsertRun(ctx, sampleRun("01A", "doc://a", at, store.Term{Term: "old", Score: 0.5, Rank: 1})); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertRun(ctx, sampleRun("01B", "doc://a", at.Add(time.Minute), store.Term{Term: "new", Score: 0.6, Rank: 1})); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := s.GetRun(ctx, "01A"); ok {
		t.Error("Replaced run must be gone")
	}
	got, ok, _ := s.GetRunByDocRef(ctx, "doc://a")
	if !ok || got.ID != "01B" || got.Terms[0].Term != "new" {
		t.Errorf("Replacement not applied: %+v", got)
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("Replace must not grow the run list: %d", len(runs))
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	at := time.Now()
	for i, id := range []string{"01A", "01B", "01C"} {
		if err := s.UpsertRun(ctx, sampleRun(id, "doc://"+id, at.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID != "01C" || runs[1].ID != "01B" {
		t.Errorf("Want newest two runs, got %+v", runs)
	}
}

func TestTopTerms(t *testing.T) {
	ctx := context.Background()
	s := New()

	at := time.Now()
	s.UpsertRun(ctx, sampleRun("01A", "doc://a", at,
		store.Term{Term: "graph", Score: 0.5, Rank: 1},
		store.Term{Term: "lattice", Score: 0.3, Rank: 2},
	))
	s.UpsertRun(ctx, sampleRun("01B", "doc://b", at,
		store.Term{Term: "graph", Score: 0.4, Rank: 1},
		store.Term{Term: "matrix", Score: 0.3, Rank: 2},
	))

	top, err := s.TopTerms(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 3 {
		t.Fatalf("Want 3 aggregate terms, got %+v", top)
	}
	if top[0].Term != "graph" || top[0].Docs != 2 || top[0].ScoreMass != 0.9 {
		t.Errorf("Unexpected leader: %+v", top[0])
	}
	// Equal mass resolves alphabetically.
	if top[1].Term != "lattice" || top[2].Term != "matrix" {
		t.Errorf("Tie must break on term name: %+v", top[1:])
	}
}
