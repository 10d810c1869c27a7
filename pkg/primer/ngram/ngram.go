// Package ngram produces paragraph-scoped bigrams and trigrams.
package ngram

import (
	"strings"

	"github.com/cognicore/primer/pkg/primer/stoplist"
)

// FromParagraphs returns every contiguous n-token window within each
// paragraph as a space-joined string, in scan order.
//
// A window is rejected when its first or last word is a stopword, or when
// every word in it is one. Windows never span paragraph boundaries; that is
// a correctness rule, not an optimization.
func FromParagraphs(paragraphs [][]string, n int, stops *stoplist.List) []string {
	var grams []string
	for _, tokens := range paragraphs {
		for i := 0; i+n <= len(tokens); i++ {
			window := tokens[i : i+n]
			if stops.IsStop(window[0]) || stops.IsStop(window[n-1]) {
				continue
			}
			if allStopwords(window, stops) {
				continue
			}
			grams = append(grams, strings.Join(window, " "))
		}
	}
	return grams
}

func allStopwords(words []string, stops *stoplist.List) bool {
	for _, w := range words {
		if !stops.IsStop(w) {
			return false
		}
	}
	return true
}
