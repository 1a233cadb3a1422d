// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/journal-scout/pkg/types"
)

// ResultFile is the on-disk representation of one completed search. A
// ranked batch can be saved and reloaded later without re-querying the
// provider.
type ResultFile struct {
	Topic      string            `yaml:"topic"`
	RankFilter string            `yaml:"rank_filter,omitempty"`
	Mode       string            `yaml:"mode"`
	Summary    ResultSummary     `yaml:"summary"`
	Results    []types.Candidate `yaml:"results"`
}

// ResultSummary stores batch statistics and a timestamp.
type ResultSummary struct {
	Total          int       `yaml:"total"`
	SourcesQueried int       `yaml:"sources_queried"`
	TopScore       int       `yaml:"top_score"`
	Timestamp      time.Time `yaml:"timestamp"`
}

// WriteResultFile saves a ranked batch to a YAML file.
func WriteResultFile(path string, req Request, out Outcome, results []types.Candidate) error {
	rf := ResultFile{
		Topic:      req.Topic,
		RankFilter: req.RankFilter,
		Mode:       out.Mode,
		Summary: ResultSummary{
			Total:          len(results),
			SourcesQueried: out.SourcesQueried,
			TopScore:       out.TopScore,
			Timestamp:      time.Now(),
		},
		Results: results,
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
