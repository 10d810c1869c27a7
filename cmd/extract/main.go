// Command extract reads a document from standard input and writes ranked
// candidate terms as pretty-printed JSON to standard output.
//
// The input may be a bare document or a JSON envelope carrying the document
// text under an "input_data" key. An envelope that does not parse as JSON,
// or lacks that key, is treated as the document text itself; malformed input
// is never a fatal error.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/primer/pkg/primer"
	"github.com/cognicore/primer/pkg/primer/config"
)

type termJSON struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

type fullStats struct {
	TokenCount    int `json:"token_count"`
	UniqueTokens  int `json:"unique_tokens"`
	TextRankNodes int `json:"textrank_nodes"`
	CompoundTerms int `json:"compound_terms_found"`
}

type shortStats struct {
	TokenCount int `json:"token_count"`
}

type dataJSON struct {
	CandidateTerms []termJSON `json:"candidate_terms"`
	Stats          any        `json:"stats"`
}

type payload struct {
	Success bool     `json:"success"`
	Data    dataJSON `json:"data"`
}

type envelope struct {
	InputData *string `json:"input_data"`
}

func main() {
	var (
		configPath = flag.String("config", "", "Optional YAML config file")
		maxTerms   = flag.Int("max-terms", 0, "Override max ranked terms (0 = config/default)")
	)
	flag.Parse()

	opts, err := config.Loader{Path: *configPath}.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *maxTerms > 0 {
		opts.MaxTerms = *maxTerms
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	result := primer.New(opts).Extract(unwrap(strings.TrimSpace(string(raw))))

	out, err := json.MarshalIndent(shape(result), "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	fmt.Println(string(out))
}

// unwrap extracts document text from an orchestration envelope, falling back
// to the raw input when the envelope does not parse or lacks input_data.
func unwrap(raw string) string {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.InputData != nil {
		return *env.InputData
	}
	return raw
}

func shape(res primer.Result) payload {
	terms := make([]termJSON, len(res.Terms))
	for i, t := range res.Terms {
		terms[i] = termJSON{Term: t.Term, Score: t.Score}
	}

	var stats any
	if res.BelowMinimum {
		stats = shortStats{TokenCount: res.TokenCount}
	} else {
		stats = fullStats{
			TokenCount:    res.TokenCount,
			UniqueTokens:  res.UniqueTokens,
			TextRankNodes: res.GraphNodes,
			CompoundTerms: res.CompoundCount,
		}
	}

	return payload{
		Success: true,
		Data: dataJSON{
			CandidateTerms: terms,
			Stats:          stats,
		},
	}
}
