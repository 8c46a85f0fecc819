package textgen

import (
	"bufio"
	"io"
	"regexp"
)

// Token is a single tokenized unit of text. EOC marks tokens that end a
// chain (e.g. sentence-ending punctuation).
type Token struct {
	Text string
	EOC  bool
}

// Tokenizer defines the contract for splitting input text into tokens and
// for joining generated tokens back into text.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
	// Separator returns the string used to join two adjacent tokens when
	// building generated output.
	Separator(prev, current string) string
	// EOC returns the string written for an end-of-chain in generated
	// output, given the last token of the sequence.
	EOC(last string) string
}

// StreamTokenizer is a stateful tokenizer over a stream of data, returning
// one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as
	// the error when the stream is fully consumed.
	Next() (*Token, error)
}

// WordTokenizer is a regexp-based Tokenizer that splits text into words and
// punctuation, treating sentence-ending punctuation as end-of-chain. Its
// behavior can be customized with functional options.
type WordTokenizer struct {
	separator  string
	eoc        string
	splitRegex *regexp.Regexp
	eocRegex   *regexp.Regexp
	noSepRegex *regexp.Regexp
	noEOCRegex *regexp.Regexp
}

// TokenizerOption configures a WordTokenizer.
type TokenizerOption func(*WordTokenizer)

// WithSeparator sets the string used for joining tokens during generation.
// Default: " "
func WithSeparator(sep string) TokenizerOption {
	return func(t *WordTokenizer) { t.separator = sep }
}

// WithEOC sets the string written for an end-of-chain in generated output.
// Default: "."
func WithEOC(eoc string) TokenizerOption {
	return func(t *WordTokenizer) { t.eoc = eoc }
}

// WithSplitRegex sets the regex used to split input text into tokens.
// Default: `[\w']+|[.,!?;]`
func WithSplitRegex(expr string) TokenizerOption {
	return func(t *WordTokenizer) { t.splitRegex = regexp.MustCompile(expr) }
}

// WithEOCRegex sets the regex deciding whether a token ends a chain.
// Default: `^[.!?]$`
func WithEOCRegex(expr string) TokenizerOption {
	return func(t *WordTokenizer) { t.eocRegex = regexp.MustCompile(expr) }
}

// NewWordTokenizer creates a tokenizer with default settings, which can be
// overridden by providing one or more TokenizerOption functions.
func NewWordTokenizer(opts ...TokenizerOption) *WordTokenizer {
	t := &WordTokenizer{
		separator: " ",
		eoc:       ".",
		// Sequences of word characters, or single punctuation marks.
		splitRegex: regexp.MustCompile(`[\w']+|[.,!?;]`),
		// Sentence-ending punctuation.
		eocRegex: regexp.MustCompile(`^[.!?]$`),
		// Punctuation gets no separator before it and no EOC after it.
		noSepRegex: regexp.MustCompile(`^[.,!?;]`),
		noEOCRegex: regexp.MustCompile(`^[.,!?;]`),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Separator returns the configured separator, or nothing when the next
// token is punctuation.
func (t *WordTokenizer) Separator(_, next string) string {
	if t.noSepRegex.MatchString(next) {
		return ""
	}
	return t.separator
}

// EOC returns the configured end-of-chain string, or nothing when the last
// token is already punctuation.
func (t *WordTokenizer) EOC(last string) string {
	if t.noEOCRegex.MatchString(last) {
		return ""
	}
	return t.eoc
}

// NewStream returns a stream processor over r.
func (t *WordTokenizer) NewStream(r io.Reader) StreamTokenizer {
	return &wordStreamTokenizer{
		scanner:    bufio.NewScanner(r),
		splitRegex: t.splitRegex,
		eocRegex:   t.eocRegex,
	}
}

// wordStreamTokenizer reads a stream line by line, splitting each line into
// tokens with the configured regexes.
type wordStreamTokenizer struct {
	scanner    *bufio.Scanner
	buffer     []string
	splitRegex *regexp.Regexp
	eocRegex   *regexp.Regexp
}

func (s *wordStreamTokenizer) Next() (*Token, error) {
	for len(s.buffer) == 0 {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		s.buffer = s.splitRegex.FindAllString(s.scanner.Text(), -1)
	}

	word := s.buffer[0]
	s.buffer = s.buffer[1:]

	return &Token{Text: word, EOC: s.eocRegex.MatchString(word)}, nil
}
