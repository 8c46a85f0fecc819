package markov

// Sequence is an immutable window over the most recent symbols of a
// sequence, used as the context for addressing chain state. The zero value
// is the empty window, representing the start of a sequence with no
// history. Sequences are values: no operation modifies an existing window.
type Sequence[S comparable] struct {
	symbols []S
}

// WithNext derives the window that follows this one when next is observed.
// The result keeps at most order symbols, dropping the oldest when the
// window is full. An order of zero always yields the empty window.
func (s Sequence[S]) WithNext(next S, order int) Sequence[S] {
	if order <= 0 {
		return Sequence[S]{}
	}

	last := s.symbols
	if len(last) >= order {
		last = last[len(last)-order+1:]
	}

	symbols := make([]S, 0, len(last)+1)
	symbols = append(symbols, last...)
	symbols = append(symbols, next)

	return Sequence[S]{symbols: symbols}
}

// Len returns the number of symbols in the window.
func (s Sequence[S]) Len() int {
	return len(s.symbols)
}

// Symbols returns a copy of the window's symbols, oldest first.
func (s Sequence[S]) Symbols() []S {
	symbols := make([]S, len(s.symbols))
	copy(symbols, s.symbols)
	return symbols
}
