// Package token splits raw document text into lowercase word tokens and
// paragraph-scoped token lists.
package token

import (
	"regexp"
	"strings"
)

// wordRE matches a lowercase word of at least three characters with optional
// internal hyphens; leading and trailing hyphens never match.
var wordRE = regexp.MustCompile(`\b[a-z][a-z-]+[a-z]\b`)

// paraRE matches a paragraph break: a blank line made of zero or more
// whitespace characters between two newlines.
var paraRE = regexp.MustCompile(`\n\s*\n`)

// Tokenize lowercases text and returns its word tokens in document order.
// No de-duplication is performed; empty input yields an empty slice.
func Tokenize(text string) []string {
	return wordRE.FindAllString(strings.ToLower(text), -1)
}

// Paragraphs splits text on blank-line boundaries and tokenizes each
// non-blank paragraph independently. N-grams built from the result can never
// span a paragraph break.
func Paragraphs(text string) [][]string {
	var out [][]string
	for _, p := range paraRE.Split(text, -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, Tokenize(p))
	}
	return out
}
