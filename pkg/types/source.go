// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for journal-scout: source
// descriptors, candidate articles, and per-stage configuration.
package types

import "fmt"

// RankSelected is the rank label stamped on caller-supplied sources that
// carry no rank of their own.
const RankSelected = "SELECTED"

// GroupNonRanked is the catalog group for sources outside the rank tiers.
const GroupNonRanked = "NON_RANKED"

// GroupKeys returns the recognized catalog group keys in presentation
// order: the six rank tiers followed by the non-ranked group.
func GroupKeys() []string {
	keys := make([]string, 0, 7)
	for i := 1; i <= 6; i++ {
		keys = append(keys, fmt.Sprintf("RANK_%d", i))
	}
	return append(keys, GroupNonRanked)
}

// SourceDescriptor identifies one venue the provider can be pointed at.
// Read-only once loaded from the catalog or parsed from a caller-supplied
// selection.
type SourceDescriptor struct {
	// Name is the human-readable venue name.
	Name string `json:"name" yaml:"name"`

	// BaseURL is the venue website; the provider scopes its query to it.
	BaseURL string `json:"url" yaml:"url"`

	// RankLabel is the catalog group key the source came from
	// ("RANK_1".."RANK_6", "NON_RANKED") or "SELECTED" for explicit
	// caller-supplied sources.
	RankLabel string `json:"rank,omitempty" yaml:"rank,omitempty"`
}
