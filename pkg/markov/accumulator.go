package markov

// Accumulator feeds training data into a Model one symbol at a time,
// tracking the current context between calls. An Accumulator holds the
// only mutable reference to its model while in use.
type Accumulator[S comparable] struct {
	model   *Model[S]
	current Sequence[S]
}

// NewAccumulator creates an Accumulator that updates the given model,
// starting at the beginning of a sequence.
func NewAccumulator[S comparable](model *Model[S]) *Accumulator[S] {
	return &Accumulator[S]{model: model}
}

// Add records symbol as the next symbol of the current sequence and
// advances the context.
func (a *Accumulator[S]) Add(symbol S) {
	a.model.Add(a.current, symbol)
	a.current = a.model.Advance(a.current, symbol)
}

// End marks the end of the current sequence and resets the Accumulator so
// that the next Add begins a new sequence.
func (a *Accumulator[S]) End() {
	a.model.AddEnd(a.current)
	a.current = Sequence[S]{}
}

// Predict returns the most probable next symbol given the symbols added so
// far. It reports false when the end of a sequence is reached.
func (a *Accumulator[S]) Predict() (S, bool) {
	return a.model.Predict(a.current)
}
