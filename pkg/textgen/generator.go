package textgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/mandykoh/go-markov/pkg/markov"
)

// Generator ties a word-symbol markov.Model to a Tokenizer, providing text
// training and generation on top of the core chain primitives.
type Generator struct {
	model      *markov.Model[string]
	tokenizer  Tokenizer
	randSource func() float64
	logger     *slog.Logger
}

// NewGenerator creates a Generator over model using the given tokenizer.
// randSource drives sampling and must return values in the [0, 1) range;
// passing nil uses math/rand/v2.
func NewGenerator(model *markov.Model[string], tokenizer Tokenizer, randSource func() float64) *Generator {
	if randSource == nil {
		randSource = rand.Float64
	}
	return &Generator{
		model:      model,
		tokenizer:  tokenizer,
		randSource: randSource,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Generator. By default, all logs are
// discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Model returns the underlying chain model.
func (g *Generator) Model() *markov.Model[string] {
	return g.model
}

// Train tokenizes the text from r and feeds it into the model. Tokens
// flagged as end-of-chain terminate the current sequence; a trailing
// unterminated sequence is ended when the stream is exhausted.
func (g *Generator) Train(ctx context.Context, r io.Reader) error {
	acc := markov.NewAccumulator(g.model)
	stream := g.tokenizer.NewStream(r)

	var symbolCount, sequenceCount int64
	inSequence := false

	for {
		token, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("tokenizer error: %w", err)
		}

		if token.EOC {
			if inSequence {
				acc.End()
				sequenceCount++
				inSequence = false
			}
			continue
		}

		acc.Add(token.Text)
		symbolCount++
		inSequence = true
	}

	if inSequence {
		acc.End()
		sequenceCount++
	}

	g.logger.InfoContext(ctx, "Training completed",
		slog.Int64("sequences_processed", sequenceCount),
		slog.Int64("symbols_processed", symbolCount),
	)

	return nil
}

// generateOptions is used by the generate functions to configure default
// options.
type generateOptions struct {
	maxLength   int
	canEndEarly bool
}

// GenerateOption is a function that configures generation parameters, used
// as a variadic argument in Generate and Complete.
type GenerateOption func(*generateOptions)

// WithMaxLength sets the maximum number of symbols to generate. Generation
// may stop earlier when a sequence ends and WithEarlyTermination is
// enabled.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

// WithEarlyTermination specifies whether generation stops at the end of a
// sequence. When disabled, the context resets and generation continues
// with a new sequence until the maximum length is reached.
func WithEarlyTermination(canEnd bool) GenerateOption {
	return func(o *generateOptions) { o.canEndEarly = canEnd }
}

func applyOptions(opts []GenerateOption) *generateOptions {
	options := &generateOptions{
		maxLength:   100,
		canEndEarly: true,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Generate produces a new string from the model by repeated weighted
// sampling, starting at the beginning of a sequence.
func (g *Generator) Generate(opts ...GenerateOption) string {
	options := applyOptions(opts)

	gen := markov.NewGenerator(g.model, g.randSource)

	var builder strings.Builder
	firstWord := true
	lastWord := ""

	for generated := 0; generated < options.maxLength; generated++ {
		word, ok := gen.Next()
		if !ok {
			builder.WriteString(g.tokenizer.EOC(lastWord))
			if options.canEndEarly {
				g.logger.Debug("Generation terminated by end of sequence",
					slog.Int("generated_length", generated),
				)
				return builder.String()
			}
			gen.End()
			lastWord = ""
			continue
		}

		if !firstWord {
			builder.WriteString(g.tokenizer.Separator(lastWord, word))
		}
		firstWord = false
		lastWord = word
		builder.WriteString(word)
	}

	// Close off output that ran into the length limit, so every generated
	// string ends like a finished sequence.
	builder.WriteString(g.tokenizer.EOC(lastWord))
	g.logger.Debug("Generation terminated by reaching max length",
		slog.Int("max_length", options.maxLength),
	)

	return builder.String()
}

// Complete deterministically extends seed with the most probable
// continuation, returning the seed followed by the continuation. The
// continuation is empty when the seed's context was never observed. An
// end-of-chain token inside the seed starts a new sequence, mirroring
// training.
func (g *Generator) Complete(seed string, opts ...GenerateOption) (string, error) {
	options := applyOptions(opts)

	pre := markov.NewPredictor(g.model)
	stream := g.tokenizer.NewStream(strings.NewReader(seed))

	var builder strings.Builder
	firstWord := true
	lastWord := ""

	for {
		token, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", fmt.Errorf("tokenizer error while reading seed: %w", err)
		}

		if token.EOC {
			pre.End()
			builder.WriteString(g.tokenizer.EOC(lastWord))
			lastWord = token.Text
			continue
		}

		pre.Given(token.Text)
		if !firstWord {
			builder.WriteString(g.tokenizer.Separator(lastWord, token.Text))
		}
		firstWord = false
		lastWord = token.Text
		builder.WriteString(token.Text)
	}

	for generated := 0; generated < options.maxLength; generated++ {
		word, ok := pre.Next()
		if !ok {
			builder.WriteString(g.tokenizer.EOC(lastWord))
			break
		}

		if !firstWord {
			builder.WriteString(g.tokenizer.Separator(lastWord, word))
		}
		firstWord = false
		lastWord = word
		builder.WriteString(word)
	}

	return builder.String(), nil
}
