package textrank

import (
	"math"
	"strings"
	"testing"
)

func TestRunBelowMinimumSize(t *testing.T) {
	res := Run([]string{"alpha", "beta"}, DefaultConfig())

	if res.Scores == nil {
		t.Fatal("Result map should be empty, not nil")
	}
	if len(res.Scores) != 0 {
		t.Errorf("Fewer than 3 tokens must yield no scores, got %v", res.Scores)
	}
}

func TestRunCentralTokenScoresHighest(t *testing.T) {
	tokens := strings.Fields("graph theory graph algorithms graph structure graph analysis")
	res := Run(tokens, DefaultConfig())

	best := ""
	bestScore := -1.0
	for w, s := range res.Scores {
		if s > bestScore {
			best, bestScore = w, s
		}
	}
	if best != "graph" {
		t.Errorf("Expected graph to dominate, got %q (%v)", best, res.Scores)
	}
}

func TestRunScoresSumToOne(t *testing.T) {
	tokens := strings.Fields("alpha beta gamma delta alpha beta epsilon zeta gamma")
	res := Run(tokens, DefaultConfig())

	sum := 0.0
	for _, s := range res.Scores {
		sum += s
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Connected-graph scores should sum to 1, got %v", sum)
	}
}

func TestRunVocabFirstOccurrenceOrder(t *testing.T) {
	res := Run([]string{"gamma", "alpha", "gamma", "beta"}, DefaultConfig())

	want := []string{"gamma", "alpha", "beta"}
	if len(res.Vocab) != len(want) {
		t.Fatalf("Vocab = %v, want %v", res.Vocab, want)
	}
	for i := range want {
		if res.Vocab[i] != want[i] {
			t.Errorf("Vocab[%d] = %q, want %q", i, res.Vocab[i], want[i])
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	tokens := strings.Fields("graph theory graph algorithms structure graph analysis theory node edge graph")

	a := Run(tokens, DefaultConfig())
	b := Run(tokens, DefaultConfig())

	if len(a.Scores) != len(b.Scores) {
		t.Fatalf("Score counts differ: %d vs %d", len(a.Scores), len(b.Scores))
	}
	for w, s := range a.Scores {
		if b.Scores[w] != s {
			t.Errorf("Score for %q differs between runs: %v vs %v", w, s, b.Scores[w])
		}
	}
}

func TestRunNoEdgesNoPanic(t *testing.T) {
	// Three identical tokens build a single node with no edges; zero
	// out-degree must contribute nothing rather than divide by zero.
	res := Run([]string{"same", "same", "same"}, DefaultConfig())

	score := res.Scores["same"]
	if math.IsNaN(score) || math.IsInf(score, 0) {
		t.Fatalf("Score must stay finite, got %v", score)
	}
	if score <= 0 {
		t.Errorf("Isolated node keeps its base score, got %v", score)
	}
}

func TestRunSelfLoopExcluded(t *testing.T) {
	res := Run([]string{"alpha", "alpha", "beta", "gamma"}, DefaultConfig())

	for _, s := range res.Scores {
		if math.IsNaN(s) {
			t.Fatal("Adjacent duplicates must not produce self-loops or NaN")
		}
	}
	if len(res.Scores) != 3 {
		t.Errorf("Expected 3 nodes, got %d", len(res.Scores))
	}
}
