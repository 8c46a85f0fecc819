package markov

// Generator draws random continuations from a Model using an externally
// supplied randomness source. Generators never modify the underlying
// model.
type Generator[S comparable] struct {
	model    *Model[S]
	current  Sequence[S]
	nextRand func() float64
}

// NewGenerator creates a Generator over model, starting at the beginning
// of a sequence. randSource must return values in the [0, 1) range; it is
// called once per generated symbol.
func NewGenerator[S comparable](model *Model[S], randSource func() float64) *Generator[S] {
	return &Generator[S]{model: model, nextRand: randSource}
}

// Next generates and returns the next symbol following the previously
// generated ones. It reports false when the end of a sequence is reached,
// leaving the context as-is; call End before generating a new sequence.
func (g *Generator[S]) Next() (S, bool) {
	symbol, ok := g.model.Sample(g.current, g.nextRand())
	if !ok {
		var zero S
		return zero, false
	}
	g.current = g.model.Advance(g.current, symbol)
	return symbol, true
}

// End resets the Generator so that the next symbol generated begins a new
// sequence.
func (g *Generator[S]) End() {
	g.current = Sequence[S]{}
}
