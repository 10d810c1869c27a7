// Package textrank scores word importance by building a weighted co-occurrence
// graph over a token stream and running a damped, PageRank-style fixed-point
// iteration on it.
package textrank

import "sort"

// Config controls graph construction and rank propagation.
type Config struct {
	Window     int     // co-occurrence window over the flattened token stream
	Damping    float64 // damping factor of the propagation formula
	Iterations int     // fixed iteration budget; there is no convergence check
}

// DefaultConfig returns the standard parameters.
func DefaultConfig() Config {
	return Config{Window: 5, Damping: 0.85, Iterations: 30}
}

// Result holds per-word rank scores. Vocab lists the distinct words in
// first-occurrence order; iterating it instead of the Scores map keeps
// downstream processing deterministic across runs.
type Result struct {
	Scores map[string]float64
	Vocab  []string
}

type edge struct {
	target int
	weight float64
}

// Run builds the co-occurrence graph from tokens and propagates rank.
//
// The input must already be filtered (no stopwords or generic terms). Fewer
// than 3 tokens yield an empty result: rank propagation is not meaningful
// below that size. Every unordered co-occurring pair is recorded as two
// directed edges of equal weight, which is what makes per-node out-degree
// well-defined for the propagation formula.
func Run(tokens []string, cfg Config) Result {
	if cfg.Window <= 0 {
		cfg.Window = 5
	}
	if cfg.Damping <= 0 {
		cfg.Damping = 0.85
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 30
	}

	if len(tokens) < 3 {
		return Result{Scores: map[string]float64{}}
	}

	// Assign each distinct token a stable index by first occurrence.
	index := make(map[string]int, len(tokens))
	var vocab []string
	for _, t := range tokens {
		if _, ok := index[t]; !ok {
			index[t] = len(vocab)
			vocab = append(vocab, t)
		}
	}
	n := len(vocab)

	// Accumulate symmetric double-entry co-occurrence weights. Self-loops
	// (a token co-occurring with itself) are excluded.
	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}
	for i := range tokens {
		end := i + cfg.Window
		if end > len(tokens) {
			end = len(tokens)
		}
		si := index[tokens[i]]
		for j := i + 1; j < end; j++ {
			sj := index[tokens[j]]
			if si == sj {
				continue
			}
			adj[si][sj]++
			adj[sj][si]++
		}
	}

	// Convert to edge lists sorted by target so floating-point accumulation
	// order is identical on every run.
	edges := make([][]edge, n)
	outDegree := make([]float64, n)
	for i, m := range adj {
		targets := make([]int, 0, len(m))
		for t := range m {
			targets = append(targets, t)
		}
		sort.Ints(targets)
		list := make([]edge, len(targets))
		for k, t := range targets {
			list[k] = edge{target: t, weight: m[t]}
			outDegree[i] += m[t]
		}
		edges[i] = list
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	base := (1 - cfg.Damping) / float64(n)
	for it := 0; it < cfg.Iterations; it++ {
		next := make([]float64, n)
		for i := range next {
			next[i] = base
		}
		for src := 0; src < n; src++ {
			if outDegree[src] == 0 {
				continue
			}
			for _, e := range edges[src] {
				next[e.target] += cfg.Damping * scores[src] * e.weight / outDegree[src]
			}
		}
		scores = next
	}

	out := make(map[string]float64, n)
	for i, w := range vocab {
		out[w] = scores[i]
	}
	return Result{Scores: out, Vocab: vocab}
}
