package textgen

import (
	"context"
	"strings"
	"testing"

	"github.com/mandykoh/go-markov/pkg/markov"
)

// setupTestGenerator trains a fresh order-2 model with a fixed corpus and a
// zero randomness source, so sampling always picks the highest-ranked
// successor and output is deterministic.
func setupTestGenerator(t *testing.T) *Generator {
	t.Helper()

	model := markov.NewModel[string](2)
	g := NewGenerator(model, NewWordTokenizer(), func() float64 { return 0.0 })

	trainingData := "one fish two fish. red fish blue fish."
	if err := g.Train(context.Background(), strings.NewReader(trainingData)); err != nil {
		t.Fatalf("Train() failed: %v", err)
	}
	return g
}

func TestTrainBuildsModel(t *testing.T) {
	g := setupTestGenerator(t)

	stats := g.Model().Stats()
	if stats.Contexts == 0 {
		t.Fatal("expected training to record contexts")
	}
	// 8 words plus 2 end-of-chain markers.
	if stats.TotalObservations != 10 {
		t.Errorf("expected 10 observations, got %d", stats.TotalObservations)
	}
	// one, fish, two, red, blue.
	if stats.VocabSize != 5 {
		t.Errorf("expected vocabulary of 5, got %d", stats.VocabSize)
	}
	// The empty context saw "one" and "red".
	if stats.StartingSymbols != 2 {
		t.Errorf("expected 2 starting symbols, got %d", stats.StartingSymbols)
	}
}

func TestTrainEndsTrailingSequence(t *testing.T) {
	model := markov.NewModel[string](1)
	g := NewGenerator(model, NewWordTokenizer(), func() float64 { return 0.0 })

	// No trailing punctuation: the final sequence still gets terminated.
	if err := g.Train(context.Background(), strings.NewReader("a b")); err != nil {
		t.Fatalf("Train() failed: %v", err)
	}

	got := g.Generate()
	if got != "a b." {
		t.Errorf("expected %q, got %q", "a b.", got)
	}
}

func TestGenerate(t *testing.T) {
	g := setupTestGenerator(t)

	// With a zero randomness source the output is deterministic: "one"
	// entered the starting table before "red" and stays ranked first.
	got := g.Generate(WithMaxLength(10))
	expected := "one fish two fish."
	if got != expected {
		t.Errorf("Generate() got %q, want %q", got, expected)
	}
}

func TestGenerateStoppedByMaxLength(t *testing.T) {
	g := setupTestGenerator(t)

	got := g.Generate(WithMaxLength(3))
	expected := "one fish two."
	if got != expected {
		t.Errorf("Generate() got %q, want %q", got, expected)
	}
}

func TestGenerateWithoutEarlyTermination(t *testing.T) {
	g := setupTestGenerator(t)

	// The end of the first sequence resets the context; generation
	// continues with a new sequence until the length limit.
	got := g.Generate(WithMaxLength(6), WithEarlyTermination(false))
	expected := "one fish two fish. one."
	if got != expected {
		t.Errorf("Generate() got %q, want %q", got, expected)
	}
}

func TestGenerateOnEmptyModel(t *testing.T) {
	model := markov.NewModel[string](2)
	g := NewGenerator(model, NewWordTokenizer(), func() float64 { return 0.0 })

	// An empty model ends the sequence immediately.
	if got := g.Generate(); got != "." {
		t.Errorf("Generate() on empty model got %q", got)
	}
}

func TestComplete(t *testing.T) {
	g := setupTestGenerator(t)

	testCases := []struct {
		name     string
		seed     string
		expected string
	}{
		{
			name:     "completes a known seed",
			seed:     "one fish",
			expected: "one fish two fish.",
		},
		{
			name:     "completes from a shorter context",
			seed:     "red fish",
			expected: "red fish blue fish.",
		},
		{
			name:     "unseen seed gets no continuation",
			seed:     "green fish",
			expected: "green fish.",
		},
		{
			name:     "empty seed predicts from the start",
			seed:     "",
			expected: "one fish two fish.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Complete(tc.seed)
			if err != nil {
				t.Fatalf("Complete() failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Complete(%q) got %q, want %q", tc.seed, got, tc.expected)
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	model := markov.NewModel[string](2)
	g := NewGenerator(model, NewWordTokenizer(), nil)

	corpus := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)
	if err := g.Train(context.Background(), strings.NewReader(corpus)); err != nil {
		b.Fatalf("Train() setup failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := g.Generate(WithMaxLength(50), WithEarlyTermination(false))
		b.SetBytes(int64(len(s)))
	}
}

func TestCompleteStoppedByMaxLength(t *testing.T) {
	g := setupTestGenerator(t)

	got, err := g.Complete("one fish", WithMaxLength(1))
	if err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}
	// The continuation is truncated without a closing EOC.
	if got != "one fish two" {
		t.Errorf("Complete() got %q, want %q", got, "one fish two")
	}
}
