package markov

// successor identifies one table entry: either a real symbol, or the
// end-of-sequence marker.
type successor[S comparable] struct {
	symbol S
	end    bool
}

type tableEntry[S comparable] struct {
	succ      successor[S]
	frequency int
}

// Table tracks how often each successor symbol (or the end of a sequence)
// has been observed following a single context. Entries are kept sorted by
// descending frequency after every update, so the most frequent successor
// is an O(1) lookup.
type Table[S comparable] struct {
	total   int
	entries []tableEntry[S]
	index   map[successor[S]]int
}

// NewTable returns an empty table with no recorded observations.
func NewTable[S comparable]() *Table[S] {
	return &Table[S]{index: make(map[successor[S]]int)}
}

// Add records one observation of symbol following the table's context.
func (t *Table[S]) Add(symbol S) {
	t.add(successor[S]{symbol: symbol})
}

// AddEnd records one observation of the sequence ending at the table's
// context.
func (t *Table[S]) AddEnd() {
	t.add(successor[S]{end: true})
}

func (t *Table[S]) add(su successor[S]) {
	if i, ok := t.index[su]; ok {
		t.entries[i].frequency++
		t.restoreOrder(i)
	} else {
		t.index[su] = len(t.entries)
		t.entries = append(t.entries, tableEntry[S]{succ: su, frequency: 1})
	}
	t.total++
}

// restoreOrder swaps the entry at index leftward past any neighbour with a
// strictly lower frequency. Frequencies only grow by one per add, so a
// single correction pass is enough. Entries of equal frequency are never
// overtaken, which keeps the ordering stable and deterministic for a fixed
// series of adds.
func (t *Table[S]) restoreOrder(index int) {
	j := index
	for i := index - 1; i >= 0; i-- {
		if t.entries[j].frequency <= t.entries[i].frequency {
			break
		}
		t.entries[i], t.entries[j] = t.entries[j], t.entries[i]
		j = i
	}
	for i := j; i <= index; i++ {
		t.index[t.entries[i].succ] = i
	}
}

// MostFrequent returns the successor observed most often for this context.
// It reports false when the table is empty, or when the most frequent
// observation is the end of the sequence.
func (t *Table[S]) MostFrequent() (S, bool) {
	var zero S
	if len(t.entries) == 0 || t.entries[0].succ.end {
		return zero, false
	}
	return t.entries[0].succ.symbol, true
}

// Sample returns a successor drawn proportionally to observed frequencies,
// driven by x in the [0, 1) range. Sampling is a pure function of x and the
// table's current state; an x of 0 always selects the most frequent entry.
// It reports false when the table is empty, or when the selection lands on
// the end of the sequence. Values of x outside [0, 1) violate the caller
// contract: they can walk past the final entry, reporting false even for a
// non-empty table.
func (t *Table[S]) Sample(x float64) (S, bool) {
	var zero S
	remaining := int(x * float64(t.total))

	for _, e := range t.entries {
		if remaining < e.frequency {
			if e.succ.end {
				return zero, false
			}
			return e.succ.symbol, true
		}
		remaining -= e.frequency
	}

	return zero, false
}

// Total returns the number of observations ever recorded in this table.
func (t *Table[S]) Total() int {
	return t.total
}

// Len returns the number of distinct successors recorded in this table.
func (t *Table[S]) Len() int {
	return len(t.entries)
}
