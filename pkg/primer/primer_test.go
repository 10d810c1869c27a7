package primer

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func findTerm(res Result, term string) (Term, bool) {
	for _, t := range res.Terms {
		if t.Term == term {
			return t, true
		}
	}
	return Term{}, false
}

func TestMinimumInputGuard(t *testing.T) {
	res := New(Options{}).Extract("one two three")

	if !res.BelowMinimum {
		t.Fatal("Fewer than 10 tokens must short-circuit")
	}
	if res.TokenCount != 3 {
		t.Errorf("TokenCount = %d, want 3", res.TokenCount)
	}
	if len(res.Terms) != 0 {
		t.Errorf("Short-circuit yields no terms, got %v", res.Terms)
	}
	if res.UniqueTokens != 0 || res.GraphNodes != 0 || res.CompoundCount != 0 {
		t.Error("Short-circuit carries only the token count")
	}
}

func TestEmptyInput(t *testing.T) {
	res := New(Options{}).Extract("")

	if !res.BelowMinimum || res.TokenCount != 0 {
		t.Errorf("Empty input is a zero-token short-circuit, got %+v", res)
	}
}

func TestEndToEnd(t *testing.T) {
	text := "# Graph Theory\n\nGraph theory studies graphs and graph algorithms. Graph algorithms analyze graph structure."
	res := New(Options{}).Extract(text)

	if res.BelowMinimum {
		t.Fatal("Document is large enough for a full extraction")
	}
	if len(res.Terms) == 0 {
		t.Fatal("Expected ranked terms")
	}

	if res.Terms[0].Term != "graph" {
		t.Errorf("Expected graph on top, got %q", res.Terms[0].Term)
	}
	if _, ok := findTerm(res, "graph algorithms"); !ok {
		t.Errorf("Expected graph algorithms among terms, got %v", res.Terms)
	}

	for _, term := range res.Terms {
		if len(term.Term) <= 2 {
			t.Errorf("Single- and double-character terms must not appear: %q", term.Term)
		}
	}

	if res.TokenCount != 14 {
		t.Errorf("TokenCount = %d, want 14", res.TokenCount)
	}
	if res.GraphNodes == 0 {
		t.Error("Expected a non-empty co-occurrence graph")
	}
}

func TestDeterminism(t *testing.T) {
	text := "# Graph Theory\n\nGraph theory studies graphs and graph algorithms. Graph algorithms analyze graph structure."
	e := New(Options{})

	a := e.Extract(text)
	b := e.Extract(text)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Repeated extraction must be bit-identical:\n%v\n%v", a, b)
	}
}

func TestParagraphBoundaryLaw(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta.\n\neta theta iota kappa lambda omega."
	res := New(Options{}).Extract(text)

	if _, ok := findTerm(res, "zeta eta"); ok {
		t.Error("No n-gram may span a paragraph break")
	}
}

func TestHeaderBoostMonotonicity(t *testing.T) {
	// alpha and beta are interchangeable in the body; only alpha sits in a
	// header, so its fused score must be strictly greater.
	text := "# alpha\n\nalpha beta alpha beta alpha beta alpha beta alpha beta"
	res := New(Options{}).Extract(text)

	alpha, okA := findTerm(res, "alpha")
	beta, okB := findTerm(res, "beta")
	if !okA || !okB {
		t.Fatalf("Expected both unigrams, got %v", res.Terms)
	}
	if alpha.Score <= beta.Score {
		t.Errorf("Header term must outrank its body twin: alpha=%v beta=%v", alpha.Score, beta.Score)
	}
}

func TestSelfDuplicationNeverRanks(t *testing.T) {
	text := "engine engine engine engine power power torque torque valve valve piston piston"
	res := New(Options{}).Extract(text)

	for _, term := range res.Terms {
		words := strings.Fields(term.Term)
		seen := map[string]bool{}
		for _, w := range words {
			if seen[w] {
				t.Fatalf("Self-duplicating term ranked: %q", term.Term)
			}
			seen[w] = true
		}
	}
}

func TestNoBoundaryStopwords(t *testing.T) {
	text := "the algorithm runs the graph and the algorithm scores the graph nodes quickly today"
	res := New(Options{}).Extract(text)

	for _, term := range res.Terms {
		words := strings.Fields(term.Term)
		stops := map[string]bool{"the": true, "and": true}
		if stops[words[0]] || stops[words[len(words)-1]] {
			t.Errorf("Term with boundary stopword ranked: %q", term.Term)
		}
	}
}

func TestTruncationToMaxTerms(t *testing.T) {
	var b strings.Builder
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "theta", "iota", "kappa", "lambda"}
	for i := 0; i < 8; i++ {
		for _, w := range words {
			b.WriteString(w)
			b.WriteByte(' ')
		}
	}

	res := New(Options{MaxTerms: 5}).Extract(b.String())

	if len(res.Terms) > 5 {
		t.Errorf("Output exceeds max terms: %d", len(res.Terms))
	}
}

func TestScoresRoundedToFourDecimals(t *testing.T) {
	text := "# Graph Theory\n\nGraph theory studies graphs and graph algorithms. Graph algorithms analyze graph structure."
	res := New(Options{}).Extract(text)

	for _, term := range res.Terms {
		scaled := term.Score * 1e4
		if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Errorf("Score %v is not rounded to 4 decimals", term.Score)
		}
	}
}

func TestConcurrentExtractions(t *testing.T) {
	e := New(Options{})
	text := "# Graph Theory\n\nGraph theory studies graphs and graph algorithms. Graph algorithms analyze graph structure."
	want := e.Extract(text)

	done := make(chan Result, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- e.Extract(text)
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Errorf("Concurrent extraction diverged")
		}
	}
}
