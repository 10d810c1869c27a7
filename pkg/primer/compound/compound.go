// Package compound detects multi-word candidate terms through surface
// patterns common in technical writing: hyphenated compounds, camel-cased
// identifiers, capitalized phrases, and quoted spans.
//
// Extraction is strictly line-by-line over the raw mixed-case text, so a
// pattern can never match across lines. No overlap resolution happens here;
// deduplication is the ranker's job.
package compound

import (
	"regexp"
	"strings"

	"github.com/cognicore/primer/pkg/primer/stoplist"
)

var (
	hyphenRE = regexp.MustCompile(`\b[a-z]+-[a-z]+(?:-[a-z]+)*\b`)
	camelRE  = regexp.MustCompile(`\b[A-Z][a-z]+(?:[A-Z][a-z]+)+\b`)
	titleRE  = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+`)
	quoteRE  = regexp.MustCompile(`"([^"]{3,40})"`)
)

// Extract returns every raw compound hit in scan order: per line, hyphenated
// compounds first, then camel-case identifiers, capitalized phrases, and
// quoted spans.
func Extract(text string, stops *stoplist.List) []string {
	var compounds []string

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		// Hyphenated compounds ("cross-dimensional traversal"). Short hits
		// and stopword-led ones are noise; hyphens become spaces.
		for _, m := range hyphenRE.FindAllString(lower, -1) {
			if len(m) > 5 && !stops.IsStop(m[:strings.IndexByte(m, '-')]) {
				compounds = append(compounds, strings.ReplaceAll(m, "-", " "))
			}
		}

		// Camel-case identifiers ("TagConceptBridger"), case preserved.
		compounds = append(compounds, camelRE.FindAllString(line, -1)...)

		// Capitalized phrases in running text ("Seed Promotion").
		for _, phrase := range titlePhrases(line) {
			words := strings.Fields(phrase)
			if len(words) > 4 {
				continue
			}
			if allStopwords(words, stops) {
				continue
			}
			compounds = append(compounds, phrase)
		}

		// Quoted technical terms.
		for _, m := range quoteRE.FindAllStringSubmatch(line, -1) {
			term := m[1]
			if term[0] >= '0' && term[0] <= '9' {
				continue
			}
			if len(strings.Fields(term)) <= 5 {
				compounds = append(compounds, term)
			}
		}
	}

	return compounds
}

// titlePhrases finds runs of 2+ title-cased words that sit mid-sentence:
// preceded by a sentence boundary or whitespace and followed by punctuation
// or whitespace. A run at the very start of a line never qualifies. When a
// run ends flush against the line end or a disqualifying character, trailing
// words are dropped until the remainder is followed by whitespace, mirroring
// how a backtracking lookahead would settle.
func titlePhrases(line string) []string {
	var out []string
	offset := 0
	for offset < len(line) {
		loc := titleRE.FindStringIndex(line[offset:])
		if loc == nil {
			break
		}
		s, e := offset+loc[0], offset+loc[1]

		if s == 0 || !boundaryBefore(line[s-1]) {
			offset = s + 1
			continue
		}

		ok := true
		for e == len(line) || !boundaryAfter(line[e]) {
			cut := lastSpace(line[s:e])
			if cut < 0 {
				ok = false
				break
			}
			e = s + cut
			for e > s && isSpace(line[e-1]) {
				e--
			}
			if lastSpace(line[s:e]) < 0 {
				// down to a single word; the pattern requires at least two
				ok = false
				break
			}
		}

		if ok {
			out = append(out, line[s:e])
			offset = e
		} else {
			offset = s + 1
		}
	}
	return out
}

func allStopwords(words []string, stops *stoplist.List) bool {
	for _, w := range words {
		if !stops.IsStop(strings.ToLower(w)) {
			return false
		}
	}
	return true
}

func boundaryBefore(b byte) bool {
	return b == '.' || b == '!' || b == '?' || isSpace(b)
}

func boundaryAfter(b byte) bool {
	return b == ',' || b == '.' || isSpace(b)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

func lastSpace(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if isSpace(s[i]) {
			return i
		}
	}
	return -1
}
