package markov

// Predictor walks the most probable continuation of a sequence based on a
// Model. Predictors never modify the underlying model.
type Predictor[S comparable] struct {
	model   *Model[S]
	current Sequence[S]
}

// NewPredictor creates a Predictor over model, starting at the beginning
// of a sequence.
func NewPredictor[S comparable](model *Model[S]) *Predictor[S] {
	return &Predictor[S]{model: model}
}

// Given advances the context by a known prior symbol without querying the
// model.
func (p *Predictor[S]) Given(symbol S) {
	p.current = p.model.Advance(p.current, symbol)
}

// Next returns the most probable next symbol and advances the context by
// it. It reports false when the end of a sequence is reached, leaving the
// context as-is.
func (p *Predictor[S]) Next() (S, bool) {
	symbol, ok := p.model.Predict(p.current)
	if !ok {
		var zero S
		return zero, false
	}
	p.current = p.model.Advance(p.current, symbol)
	return symbol, true
}

// Predict returns the most probable next symbol without advancing the
// context. It reports false when the end of a sequence is reached.
func (p *Predictor[S]) Predict() (S, bool) {
	return p.model.Predict(p.current)
}

// End resets the Predictor so that the next prediction begins a new
// sequence.
func (p *Predictor[S]) End() {
	p.current = Sequence[S]{}
}
