// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider retrieves candidate articles from the external search
// provider, one source venue at a time.
package provider

import (
	"context"

	"github.com/pdiddy/journal-scout/pkg/types"
)

// Searcher fetches candidates for a topic scoped to one source venue.
// The discovery loop treats a Fetch failure as zero candidates for that
// source and moves on; implementations must return an error rather than
// panic on provider trouble.
type Searcher interface {
	Name() string
	Fetch(ctx context.Context, topic string, src types.SourceDescriptor) ([]types.Candidate, error)
}
