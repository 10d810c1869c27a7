// Package freq computes normalized term frequency over a token stream.
package freq

// Scores counts token occurrences and normalizes every count by the maximum
// count observed, so the most frequent token always scores exactly 1.0.
//
// The input is expected to be pre-filtered (no stopwords or generic terms).
// Empty input yields an empty map. Only the document's own maximum frequency
// is used for normalization; there is no cross-document signal.
func Scores(tokens []string) map[string]float64 {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	if len(counts) == 0 {
		return map[string]float64{}
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	scores := make(map[string]float64, len(counts))
	for t, c := range counts {
		scores[t] = float64(c) / float64(maxCount)
	}
	return scores
}
