// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover drives one search request end to end: source selection,
// sequential per-source retrieval with pacing, lexical-chain scoring, and
// incremental event streaming.
package discover

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pdiddy/journal-scout/internal/catalog"
	"github.com/pdiddy/journal-scout/internal/lexical"
	"github.com/pdiddy/journal-scout/internal/provider"
	"github.com/pdiddy/journal-scout/pkg/types"
)

// Request is one inbound search request. A non-empty SourcesJSON switches
// to explicit mode and RankFilter is ignored.
type Request struct {
	Topic       string
	RankFilter  string
	SourcesJSON string
}

// Sink receives the streamed events of one run. Progress fires once per
// source before its fetch; exactly one of Error, Results, or Empty
// terminates the stream (unless the caller cancels first).
type Sink interface {
	Progress(src types.SourceDescriptor)
	Error(reason string)
	Results(batch []types.Candidate)
	Empty()
}

// Deps holds the collaborators of one run.
type Deps struct {
	Searcher provider.Searcher
	Analyzer lexical.Analyzer

	// Catalog may be nil when loading failed; explicit-mode requests
	// still work without it.
	Catalog *catalog.Catalog

	// Delay is the pacing delay between consecutive source fetches.
	// Retrieval is sequential on purpose: the provider rate-limits
	// concurrent querying.
	Delay time.Duration

	// Log receives per-source failure warnings.
	Log io.Writer
}

// Outcome summarizes a finished run for history recording.
type Outcome struct {
	Mode           string
	SourcesQueried int
	ResultCount    int
	TopScore       int
}

// Modes reported in Outcome.
const (
	ModeCatalog  = "catalog"
	ModeExplicit = "explicit"
)

// Run executes one search request, emitting events on sink as it goes.
// Fatal setup problems are reported through sink.Error and a nil error
// return; the error return is reserved for caller cancellation.
func Run(ctx context.Context, req Request, deps Deps, sink Sink) (Outcome, error) {
	if req.Topic == "" {
		sink.Error("topic is required")
		return Outcome{}, nil
	}

	var sources []types.SourceDescriptor
	mode := ModeCatalog
	if req.SourcesJSON != "" {
		mode = ModeExplicit
		parsed, err := ParseSources(req.SourcesJSON)
		if err != nil {
			sink.Error(fmt.Sprintf("invalid source list: %v", err))
			return Outcome{}, nil
		}
		sources = parsed
	} else {
		if deps.Catalog == nil {
			sink.Error("no source catalog available")
			return Outcome{}, nil
		}
		sources = deps.Catalog.Select(req.RankFilter)
	}

	var results []types.Candidate
	var snippets []string
	queried := 0

	for i, src := range sources {
		if i > 0 && deps.Delay > 0 {
			select {
			case <-ctx.Done():
				return Outcome{}, ctx.Err()
			case <-time.After(deps.Delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		// Announce the source before fetching so a slow fetch does not
		// hide which source is being processed.
		sink.Progress(src)
		queried++

		candidates, err := deps.Searcher.Fetch(ctx, req.Topic, src)
		if err != nil {
			if deps.Log != nil {
				fmt.Fprintf(deps.Log, "warning: source %s failed: %v\n", src.Name, err)
			}
			continue
		}
		for _, c := range candidates {
			results = append(results, c)
			if c.Snippet != "" {
				snippets = append(snippets, c.Snippet)
			}
		}
	}

	scoreAll(req.Topic, snippets, results, deps.Analyzer)

	// Stable: equal scores keep arrival order, which reflects source
	// priority (catalog order or explicit order).
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	out := Outcome{Mode: mode, SourcesQueried: queried, ResultCount: len(results)}
	if len(results) == 0 {
		sink.Empty()
		return out, nil
	}
	out.TopScore = results[0].RelevanceScore
	sink.Results(results)
	return out, nil
}

// scoreAll builds a fresh chain model over the topic terms followed by
// every pooled snippet's terms in arrival order, then scores each
// candidate in place.
func scoreAll(topic string, snippets []string, results []types.Candidate, analyzer lexical.Analyzer) {
	model := lexical.NewChainModel()
	queryTerms := analyzer.Terms(topic)
	model.Ingest(queryTerms)
	for _, snippet := range snippets {
		model.Ingest(analyzer.Terms(snippet))
	}

	scorer := &lexical.Scorer{Model: model, Analyzer: analyzer}
	for i := range results {
		s, analysis := scorer.Score(queryTerms, results[i].Snippet)
		results[i].RelevanceScore = s
		results[i].TermAnalysis = analysis
	}
}

// ParseSources decodes a caller-supplied JSON array of source descriptors.
// Entries with neither a name nor a URL are dropped; a missing name
// defaults to the URL; a missing rank defaults to SELECTED.
func ParseSources(raw string) ([]types.SourceDescriptor, error) {
	var parsed []types.SourceDescriptor
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("expected a JSON array of sources: %w", err)
	}

	var sources []types.SourceDescriptor
	for _, src := range parsed {
		if src.Name == "" && src.BaseURL == "" {
			continue
		}
		if src.Name == "" {
			src.Name = src.BaseURL
		}
		if src.RankLabel == "" {
			src.RankLabel = types.RankSelected
		}
		sources = append(sources, src)
	}
	return sources, nil
}
