package markov

// ModelStats holds aggregated statistics for a single model.
type ModelStats struct {
	Contexts          int // The number of distinct contexts observed during training.
	TotalLinks        int // The number of unique context->successor links.
	TotalObservations int // The sum of frequencies of all links; the total number of trained transitions.
	VocabSize         int // The number of unique symbols the model has seen.
	StartingSymbols   int // The number of unique successors recorded for the empty context.
}

// Stats returns a snapshot of statistics for the model.
func (m *Model[S]) Stats() ModelStats {
	stats := ModelStats{
		Contexts:  len(m.tables),
		VocabSize: len(m.vocab),
	}

	for _, t := range m.tables {
		stats.TotalLinks += t.Len()
		stats.TotalObservations += t.Total()
	}

	if t, ok := m.tables[""]; ok {
		stats.StartingSymbols = t.Len()
	}

	return stats
}
