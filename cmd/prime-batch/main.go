// Command prime-batch extracts key phrases from a JSONL corpus, persists the
// per-document runs in a SQLite store, and prints an aggregated vocabulary
// report as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/cognicore/primer/internal/docs"
	"github.com/cognicore/primer/pkg/primer"
	"github.com/cognicore/primer/pkg/primer/config"
	"github.com/cognicore/primer/pkg/primer/store/sqlite"
	"github.com/cognicore/primer/pkg/primer/vocab"
)

type report struct {
	Docs    int         `json:"docs"`
	Skipped int         `json:"skipped"`
	Terms   []termEntry `json:"terms"`
}

type termEntry struct {
	Term      string  `json:"term"`
	Docs      int     `json:"docs"`
	ScoreMass float64 `json:"score_mass"`
}

func main() {
	var (
		input      = flag.String("input", "", "Path to JSONL corpus (required)")
		dbPath     = flag.String("db", "", "SQLite database path (required)")
		configPath = flag.String("config", "", "Optional YAML config file")
		top        = flag.Int("top", 25, "Number of aggregate terms to report")
		stem       = flag.Bool("stem", false, "Fold term variants by snowball stem when aggregating")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	opts, err := config.Loader{Path: *configPath}.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	corpus, err := docs.LoadFromJSONL(*input)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	extractor := primer.New(opts)
	builder := vocab.NewBuilder()
	agg := vocab.NewAggregator(*stem)

	processed, skipped := 0, 0
	for _, d := range corpus {
		res := extractor.Extract(d.Body)
		if res.BelowMinimum {
			log.Printf("Skipping %s: only %d tokens", d.Ref, res.TokenCount)
			skipped++
			continue
		}

		run := builder.Run(d.Ref, d.Title, res, time.Now())
		if err := st.UpsertRun(ctx, run); err != nil {
			log.Fatalf("store run for %s: %v", d.Ref, err)
		}
		agg.Add(run)
		processed++
	}

	rep := report{Docs: processed, Skipped: skipped}
	for _, e := range agg.Top(*top) {
		rep.Terms = append(rep.Terms, termEntry{Term: e.Term, Docs: e.Docs, ScoreMass: e.ScoreMass})
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
