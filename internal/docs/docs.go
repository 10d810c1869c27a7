// Package docs loads batch documents from JSONL files for vocabulary
// priming.
package docs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Doc is one input document.
type Doc struct {
	Ref   string `json:"ref"`
	Title string `json:"title"`
	Body  string `json:"text"`
	HTML  bool   `json:"html"` // when set, Body is stripped to plain text on load
}

// LoadFromJSONL loads documents from a JSONL file. Malformed lines are
// skipped with a warning; a file with no valid documents is an error.
func LoadFromJSONL(path string) ([]Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []Doc
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var d Doc
		if err := json.Unmarshal([]byte(line), &d); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if d.Ref == "" {
			log.Printf("Warning: skipping document without ref at line %d in %s", i+1, path)
			continue
		}
		if d.HTML {
			d.Body = StripHTML(d.Body)
			d.HTML = false
		}
		docs = append(docs, d)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}

	return docs, nil
}

// StripHTML extracts the text content of an HTML fragment.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
