// Package rank fuses the pipeline's signals into a single ranked term list.
package rank

import (
	"sort"
	"strings"

	"github.com/cognicore/primer/pkg/primer/stoplist"
)

// Weights defines the linear combination of the three scoring components.
type Weights struct {
	TF        float64 // mean term frequency of constituent words
	TextRank  float64 // summed rank-propagation score of constituent words
	Frequency float64 // surface-form frequency (unigram TF or n-gram share)
}

// DefaultWeights returns the standard component weights.
func DefaultWeights() Weights {
	return Weights{TF: 0.3, TextRank: 0.4, Frequency: 0.3}
}

// DefaultMaxTerms is the truncation limit applied when none is configured.
const DefaultMaxTerms = 25

// Inputs carries every upstream signal into fusion. Slices are in document
// scan order; RankVocab lists the rank-propagation vocabulary in
// first-occurrence order so candidate assembly stays deterministic.
type Inputs struct {
	TermFreq   map[string]float64
	RankScores map[string]float64
	RankVocab  []string
	Bigrams    []string
	Trigrams   []string
	Compounds  []string
	Boosts     map[string]float64
}

// Term is one ranked candidate.
type Term struct {
	Term  string
	Score float64
}

// Ranker assembles the candidate pool, scores it, and emits the top terms.
type Ranker struct {
	weights  Weights
	maxTerms int
	stops    *stoplist.List
}

// NewRanker creates a ranker. A non-positive maxTerms falls back to
// DefaultMaxTerms.
func NewRanker(w Weights, maxTerms int, stops *stoplist.List) *Ranker {
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}
	return &Ranker{weights: w, maxTerms: maxTerms, stops: stops}
}

// Rank merges all signals into one candidate set, scores each candidate,
// applies the post-filters, and returns the top terms sorted by descending
// score. Ties keep pool-assembly order, which follows first occurrence in
// the document within each candidate family.
func (r *Ranker) Rank(in Inputs) []Term {
	pool := newPool()

	// Unigrams from rank propagation, skipping filtered and short tokens.
	for _, t := range in.RankVocab {
		if r.stops.IsFiltered(t) || len(t) <= 2 {
			continue
		}
		pool.add(t)
	}

	bigramCounts, bigramOrder := countDistinct(in.Bigrams)
	trigramCounts, trigramOrder := countDistinct(in.Trigrams)

	// Bigrams survive on repetition or on rank-score mass of their words.
	for _, bg := range bigramOrder {
		words := strings.Fields(bg)
		trSum := 0.0
		for _, w := range words {
			trSum += in.RankScores[w]
		}
		if bigramCounts[bg] < 2 && trSum <= 0.01 {
			continue
		}
		if r.allFiltered(words) {
			continue
		}
		pool.add(bg)
	}

	// Trigrams need repetition.
	for _, tg := range trigramOrder {
		if trigramCounts[tg] < 2 {
			continue
		}
		if r.allFiltered(strings.Fields(tg)) {
			continue
		}
		pool.add(tg)
	}

	// Pattern-detected compounds, case-folded. Anything spanning lines is
	// discarded.
	for _, ct := range in.Compounds {
		lower := strings.ToLower(ct)
		if strings.Contains(lower, "\n") {
			continue
		}
		pool.add(lower)
	}

	scored := make([]Term, 0, len(pool.terms))
	for _, term := range pool.terms {
		words := strings.Fields(term)
		if len(words) == 0 {
			continue
		}

		tfSum := 0.0
		trSum := 0.0
		for _, w := range words {
			tfSum += in.TermFreq[w]
			trSum += in.RankScores[w]
		}
		tfComponent := tfSum / float64(len(words))

		var freqComponent float64
		switch len(words) {
		case 1:
			freqComponent = in.TermFreq[term]
		case 2:
			freqComponent = float64(bigramCounts[term]) / float64(max(len(in.Bigrams), 1))
		default:
			freqComponent = float64(trigramCounts[term]) / float64(max(len(in.Trigrams), 1))
		}

		lengthBonus := 1.0 + 0.2*float64(len(words)-1)

		boost, ok := in.Boosts[term]
		if !ok {
			boost = 1.0
		}

		score := (r.weights.TF*tfComponent + r.weights.TextRank*trSum + r.weights.Frequency*freqComponent) *
			lengthBonus * boost
		scored = append(scored, Term{Term: term, Score: score})
	}

	// Post-filters: self-duplicating n-grams ("system system") and terms
	// with a stopword at either boundary. Upstream generators should already
	// guarantee the latter; this is the authoritative re-check.
	kept := scored[:0]
	for _, t := range scored {
		words := strings.Fields(t.Term)
		if len(words) > 1 && hasDuplicate(words) {
			continue
		}
		if r.stops.IsStop(words[0]) || r.stops.IsStop(words[len(words)-1]) {
			continue
		}
		kept = append(kept, t)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	if len(kept) > r.maxTerms {
		kept = kept[:r.maxTerms]
	}
	return kept
}

func (r *Ranker) allFiltered(words []string) bool {
	for _, w := range words {
		if !r.stops.IsFiltered(w) {
			return false
		}
	}
	return true
}

// pool is an insertion-ordered string set.
type pool struct {
	terms []string
	seen  map[string]struct{}
}

func newPool() *pool {
	return &pool{seen: make(map[string]struct{})}
}

func (p *pool) add(term string) {
	if _, ok := p.seen[term]; ok {
		return
	}
	p.seen[term] = struct{}{}
	p.terms = append(p.terms, term)
}

// countDistinct tallies occurrences and reports distinct values in
// first-occurrence order.
func countDistinct(grams []string) (map[string]int, []string) {
	counts := make(map[string]int, len(grams))
	var order []string
	for _, g := range grams {
		if counts[g] == 0 {
			order = append(order, g)
		}
		counts[g]++
	}
	return counts, order
}

func hasDuplicate(words []string) bool {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			return true
		}
		seen[w] = struct{}{}
	}
	return false
}
