// Package position computes multiplicative boosts for terms that appear in
// structurally privileged text: markdown-style headers and the document's
// opening paragraph.
package position

import (
	"strings"

	"github.com/cognicore/primer/pkg/primer/token"
)

// Boost increments. A term matching both sets gets 1.0 + HeaderBoost +
// LeadBoost; there is no cap beyond that.
const (
	HeaderBoost = 0.3
	LeadBoost   = 0.1
)

// Boosts classifies each line of text as header or first-paragraph body and
// returns a boost for every candidate term, starting at 1.0. A term is
// boosted when any of its constituent words intersects the header-term or
// first-paragraph sets.
func Boosts(text string, terms []string) map[string]float64 {
	headerTerms := make(map[string]struct{})
	leadTerms := make(map[string]struct{})

	inFirstPara := true
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(stripped, "#"):
			for _, w := range token.Tokenize(stripped) {
				headerTerms[w] = struct{}{}
			}
		case stripped == "" && inFirstPara:
			inFirstPara = false
		case inFirstPara:
			for _, w := range token.Tokenize(stripped) {
				leadTerms[w] = struct{}{}
			}
		}
	}

	boosts := make(map[string]float64, len(terms))
	for _, term := range terms {
		words := strings.Fields(term)
		boost := 1.0
		if intersects(words, headerTerms) {
			boost += HeaderBoost
		}
		if intersects(words, leadTerms) {
			boost += LeadBoost
		}
		boosts[term] = boost
	}
	return boosts
}

func intersects(words []string, set map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}
