package markov

import "strconv"

// Model is a variable-order Markov chain over symbols of type S. It owns
// one frequency table per observed context and exposes the primitives for
// training (Add, AddEnd), context tracking (Advance), and read-only
// querying (Predict, Sample).
//
// Symbols are interned into dense integer IDs, and tables are addressed by
// the space-joined IDs of the context window. Structurally equal windows
// therefore always address the same table.
type Model[S comparable] struct {
	order  int
	vocab  map[S]int
	tables map[string]*Table[S]
}

// NewModel creates an empty model of the given order. A first order model
// (order 1) tracks probabilities of future symbols based on one prior
// symbol, a second order model on two prior symbols, and so on. An order
// of zero collapses every context to the empty window, producing a single
// unconditional frequency table.
func NewModel[S comparable](order int) *Model[S] {
	return &Model[S]{
		order:  order,
		vocab:  make(map[S]int),
		tables: make(map[string]*Table[S]),
	}
}

// Order returns the model's order, fixed at creation.
func (m *Model[S]) Order() int {
	return m.order
}

// Add records one observation of symbol following the context seq,
// creating the context's table if this is its first observation.
func (m *Model[S]) Add(seq Sequence[S], symbol S) {
	m.intern(symbol)
	m.table(seq).Add(symbol)
}

// AddEnd records one observation of a sequence ending at the context seq.
func (m *Model[S]) AddEnd(seq Sequence[S]) {
	m.table(seq).AddEnd()
}

// Advance returns the context that follows seq when next is observed,
// bounded by the model's order. It does not modify the model.
func (m *Model[S]) Advance(seq Sequence[S], next S) Sequence[S] {
	return seq.WithNext(next, m.order)
}

// Predict returns the most probable next symbol for the context seq. It
// reports false when the context has never been observed, or when the end
// of the sequence is its most frequent successor.
func (m *Model[S]) Predict(seq Sequence[S]) (S, bool) {
	var zero S
	t, ok := m.lookup(seq)
	if !ok {
		return zero, false
	}
	return t.MostFrequent()
}

// Sample returns a successor for the context seq drawn proportionally to
// observed frequencies, driven by x in the [0, 1) range. It reports false
// when the context has never been observed, or when the selection lands on
// the end of the sequence.
func (m *Model[S]) Sample(seq Sequence[S], x float64) (S, bool) {
	var zero S
	t, ok := m.lookup(seq)
	if !ok {
		return zero, false
	}
	return t.Sample(x)
}

func (m *Model[S]) intern(symbol S) int {
	id, ok := m.vocab[symbol]
	if !ok {
		id = len(m.vocab)
		m.vocab[symbol] = id
	}
	return id
}

// contextKey builds the table key for seq, interning any window symbols not
// yet in the vocabulary. Only the training path uses it.
func (m *Model[S]) contextKey(seq Sequence[S]) string {
	var keyBuf []byte
	for i, symbol := range seq.symbols {
		if i > 0 {
			keyBuf = append(keyBuf, ' ')
		}
		keyBuf = strconv.AppendInt(keyBuf, int64(m.intern(symbol)), 10)
	}
	return string(keyBuf)
}

// lookup resolves seq to its table without modifying the model. A window
// containing a symbol the model has never seen cannot have been observed,
// so it resolves to no table at all.
func (m *Model[S]) lookup(seq Sequence[S]) (*Table[S], bool) {
	var keyBuf []byte
	for i, symbol := range seq.symbols {
		id, ok := m.vocab[symbol]
		if !ok {
			return nil, false
		}
		if i > 0 {
			keyBuf = append(keyBuf, ' ')
		}
		keyBuf = strconv.AppendInt(keyBuf, int64(id), 10)
	}
	t, ok := m.tables[string(keyBuf)]
	return t, ok
}

func (m *Model[S]) table(seq Sequence[S]) *Table[S] {
	key := m.contextKey(seq)
	t, ok := m.tables[key]
	if !ok {
		t = NewTable[S]()
		m.tables[key] = t
	}
	return t
}
