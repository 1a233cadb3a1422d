// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Candidate is one discovered article. The provider fills the descriptive
// fields; RelevanceScore and TermAnalysis are attached by the scoring pass
// after all sources have been queried.
type Candidate struct {
	// Title is the article title as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// URL points at the article document (PDF).
	URL string `json:"url" yaml:"url"`

	// Snippet is the provider's text excerpt; the unit of relevance scoring.
	Snippet string `json:"snippet" yaml:"snippet"`

	// SourceName names the venue the candidate was found through.
	SourceName string `json:"source_name" yaml:"source_name"`

	// RankLabel is the rank label of that venue.
	RankLabel string `json:"rank_label" yaml:"rank_label"`

	// SourceWebsite is the venue base URL.
	SourceWebsite string `json:"source_website" yaml:"source_website"`

	// RelevanceScore is the lexical-chain score of Snippet against the topic.
	RelevanceScore int `json:"relevance_score" yaml:"relevance_score"`

	// TermAnalysis explains the score, one entry per matching query term
	// in query order.
	TermAnalysis []TermContribution `json:"term_analysis" yaml:"term_analysis"`
}

// TermContribution records how one query term contributed to a candidate's
// relevance score.
type TermContribution struct {
	// Term is the normalized query term.
	Term string `json:"term" yaml:"term"`

	// BaseScore is the term's occurrence count in the chain model.
	BaseScore int `json:"base_score" yaml:"base_score"`

	// ConnectedTerms lists chain successors of Term that also appear in
	// the scored snippet. Each contributes a flat +1; the count is
	// informational.
	ConnectedTerms []RelatedTerm `json:"connected_terms" yaml:"connected_terms"`
}

// RelatedTerm is one chain successor and its co-occurrence count.
type RelatedTerm struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}
