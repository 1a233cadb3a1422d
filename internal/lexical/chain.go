// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

// TermStats holds the per-term aggregates of a chain model. Count is how
// often the term occurs with a successor; Successors maps each immediately
// following term to the number of times it follows.
type TermStats struct {
	Count      int
	Successors map[string]int
}

// ChainModel records term adjacency over one logical stream: the query
// terms followed by every collected snippet's terms, in arrival order.
// Links are built across Ingest-call boundaries as well as within them,
// which captures cross-document term association. A model is built fresh
// for every search request and is read-only once scoring begins.
type ChainModel struct {
	stats   map[string]*TermStats
	tail    string
	hasTail bool
	links   int
}

// NewChainModel returns an empty model.
func NewChainModel() *ChainModel {
	return &ChainModel{stats: make(map[string]*TermStats)}
}

// Ingest appends terms to the running stream. For every adjacent pair
// (t, next) in the concatenation built so far it increments both
// Successors[t][next] and Count[t]. The terminal term of the stream has
// no outgoing link until a later Ingest extends the stream past it.
func (m *ChainModel) Ingest(terms []string) {
	for _, term := range terms {
		if m.hasTail {
			ts := m.stats[m.tail]
			if ts == nil {
				ts = &TermStats{Successors: make(map[string]int)}
				m.stats[m.tail] = ts
			}
			ts.Count++
			ts.Successors[term]++
			m.links++
		}
		m.tail = term
		m.hasTail = true
	}
}

// Occurrences returns the occurrence count of term, 0 if unseen.
func (m *ChainModel) Occurrences(term string) int {
	if ts, ok := m.stats[term]; ok {
		return ts.Count
	}
	return 0
}

// Successors returns the successor counts of term. The returned map is the
// model's own; callers must not mutate it. Nil when the term has no
// outgoing links.
func (m *ChainModel) Successors(term string) map[string]int {
	if ts, ok := m.stats[term]; ok {
		return ts.Successors
	}
	return nil
}

// Links returns the total number of successor links recorded.
func (m *ChainModel) Links() int { return m.links }
