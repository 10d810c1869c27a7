// Command vocab-report prints aggregate term statistics from an existing
// priming database built by prime-batch.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/primer/pkg/primer/store/sqlite"
)

type report struct {
	Runs  []runEntry  `json:"runs"`
	Terms []termEntry `json:"terms"`
}

type runEntry struct {
	ID         string `json:"id"`
	DocRef     string `json:"doc_ref"`
	Title      string `json:"title,omitempty"`
	TokenCount int    `json:"token_count"`
	TermCount  int    `json:"term_count"`
}

type termEntry struct {
	Term      string  `json:"term"`
	Docs      int     `json:"docs"`
	ScoreMass float64 `json:"score_mass"`
}

func main() {
	var (
		dbPath = flag.String("db", "", "SQLite database path (required)")
		top    = flag.Int("top", 25, "Number of aggregate terms to report")
		runs   = flag.Int("runs", 20, "Number of recent runs to list")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	recent, err := st.ListRuns(ctx, *runs)
	if err != nil {
		log.Fatalf("list runs: %v", err)
	}

	terms, err := st.TopTerms(ctx, *top)
	if err != nil {
		log.Fatalf("top terms: %v", err)
	}

	rep := report{}
	for _, r := range recent {
		rep.Runs = append(rep.Runs, runEntry{
			ID:         r.ID,
			DocRef:     r.DocRef,
			Title:      r.Title,
			TokenCount: r.TokenCount,
			TermCount:  len(r.Terms),
		})
	}
	for _, t := range terms {
		rep.Terms = append(rep.Terms, termEntry{Term: t.Term, Docs: t.Docs, ScoreMass: t.ScoreMass})
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
