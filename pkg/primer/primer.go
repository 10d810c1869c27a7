// Package primer extracts ranked key phrases from a single document to prime
// a downstream vocabulary.
//
// The engine is a pure function from text to ranked terms: it combines
// max-normalized term frequency, rank propagation over a word co-occurrence
// graph, pattern-based compound detection, paragraph-scoped n-grams, and
// positional boosting into one fused score per candidate. Nothing survives an
// extraction call except the static stopword sets, so one Extractor may be
// shared freely across goroutines working on different documents.
package primer

import (
	"math"
	"strings"

	"github.com/cognicore/primer/pkg/primer/compound"
	"github.com/cognicore/primer/pkg/primer/freq"
	"github.com/cognicore/primer/pkg/primer/ngram"
	"github.com/cognicore/primer/pkg/primer/position"
	"github.com/cognicore/primer/pkg/primer/rank"
	"github.com/cognicore/primer/pkg/primer/stoplist"
	"github.com/cognicore/primer/pkg/primer/textrank"
	"github.com/cognicore/primer/pkg/primer/token"
)

// minTokens is the minimum document size for a full extraction. Shorter
// inputs short-circuit to an empty term list; that is a documented guard,
// not an error.
const minTokens = 10

// Options configures an Extractor. Zero values select the defaults.
type Options struct {
	Stoplist   *stoplist.List
	Window     int     // co-occurrence window (default 5)
	Damping    float64 // propagation damping factor (default 0.85)
	Iterations int     // propagation iteration budget (default 30)
	MaxTerms   int     // ranked output truncation (default 25)
	Weights    rank.Weights
}

// Extractor runs the extraction pipeline. Safe for concurrent use.
type Extractor struct {
	stops  *stoplist.List
	cfg    textrank.Config
	ranker *rank.Ranker
}

// New creates an extractor with the given options.
func New(opts Options) *Extractor {
	stops := opts.Stoplist
	if stops == nil {
		stops = stoplist.Default()
	}

	cfg := textrank.DefaultConfig()
	if opts.Window > 0 {
		cfg.Window = opts.Window
	}
	if opts.Damping > 0 {
		cfg.Damping = opts.Damping
	}
	if opts.Iterations > 0 {
		cfg.Iterations = opts.Iterations
	}

	weights := opts.Weights
	if weights == (rank.Weights{}) {
		weights = rank.DefaultWeights()
	}

	return &Extractor{
		stops:  stops,
		cfg:    cfg,
		ranker: rank.NewRanker(weights, opts.MaxTerms, stops),
	}
}

// Term is one ranked candidate with its fused score, rounded to 4 decimals.
type Term struct {
	Term  string
	Score float64
}

// Result is the outcome of one extraction.
//
// When BelowMinimum is set the document tokenized to fewer than minTokens
// words: Terms is empty and only TokenCount is meaningful.
type Result struct {
	Terms         []Term
	TokenCount    int
	UniqueTokens  int
	GraphNodes    int
	CompoundCount int
	BelowMinimum  bool
}

// Extract runs the full pipeline on one document.
func (e *Extractor) Extract(text string) Result {
	tokens := token.Tokenize(text)
	if len(tokens) < minTokens {
		return Result{TokenCount: len(tokens), BelowMinimum: true}
	}

	paragraphs := token.Paragraphs(text)

	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !e.stops.IsFiltered(t) {
			filtered = append(filtered, t)
		}
	}

	tf := freq.Scores(filtered)
	tr := textrank.Run(filtered, e.cfg)
	compounds := compound.Extract(text, e.stops)

	boosts := position.Boosts(text, candidateSurfaces(filtered, compounds))

	ranked := e.ranker.Rank(rank.Inputs{
		TermFreq:   tf,
		RankScores: tr.Scores,
		RankVocab:  tr.Vocab,
		Bigrams:    ngram.FromParagraphs(paragraphs, 2, e.stops),
		Trigrams:   ngram.FromParagraphs(paragraphs, 3, e.stops),
		Compounds:  compounds,
		Boosts:     boosts,
	})

	terms := make([]Term, len(ranked))
	for i, t := range ranked {
		terms[i] = Term{Term: t.Term, Score: round4(t.Score)}
	}

	return Result{
		Terms:         terms,
		TokenCount:    len(tokens),
		UniqueTokens:  distinct(tokens),
		GraphNodes:    len(tr.Scores),
		CompoundCount: len(compounds),
	}
}

// candidateSurfaces unions the frequency-scored vocabulary with the
// lowercased compound hits, in first-occurrence order, for positional
// boosting.
func candidateSurfaces(filtered, compounds []string) []string {
	seen := make(map[string]struct{}, len(filtered))
	var surfaces []string
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		surfaces = append(surfaces, s)
	}
	for _, t := range filtered {
		add(t)
	}
	for _, c := range compounds {
		add(strings.ToLower(c))
	}
	return surfaces
}

func distinct(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}
	return len(seen)
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
