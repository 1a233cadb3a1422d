// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"sort"

	"github.com/pdiddy/journal-scout/pkg/types"
)

// Scorer ranks snippets against a set of query terms using a built chain
// model. The model must be fully ingested before the first Score call.
type Scorer struct {
	Model    *ChainModel
	Analyzer Analyzer
}

// Score computes the lexical relevance of snippet to queryTerms.
//
// Each query term present in the snippet contributes its occurrence count,
// plus a flat +1 for every chain successor of the term that also appears
// in the snippet. Duplicate query terms are scored independently, matching
// the chain-construction semantics where the query seeds the stream.
// Snippet membership is set membership; the successor's co-occurrence
// count is recorded in the analysis but does not weight the bonus.
func (s *Scorer) Score(queryTerms []string, snippet string) (int, []types.TermContribution) {
	inSnippet := make(map[string]struct{})
	for _, t := range s.Analyzer.Terms(snippet) {
		inSnippet[t] = struct{}{}
	}

	score := 0
	var analysis []types.TermContribution
	for _, term := range queryTerms {
		if _, ok := inSnippet[term]; !ok {
			continue
		}

		base := s.Model.Occurrences(term)
		score += base

		var connected []types.RelatedTerm
		for related, count := range s.Model.Successors(term) {
			if _, ok := inSnippet[related]; !ok {
				continue
			}
			connected = append(connected, types.RelatedTerm{Term: related, Count: count})
			score++
		}
		// Map iteration order is random; sort for deterministic output.
		sort.Slice(connected, func(i, j int) bool {
			return connected[i].Term < connected[j].Term
		})

		analysis = append(analysis, types.TermContribution{
			Term:           term,
			BaseScore:      base,
			ConnectedTerms: connected,
		})
	}
	return score, analysis
}
