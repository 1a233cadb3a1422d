// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the source catalog: journal venues grouped by rank
// tier, read from a JSON file maintained outside this service.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/journal-scout/pkg/types"
)

// ErrUnavailable reports that none of the configured catalog files could
// be read.
var ErrUnavailable = errors.New("no source catalog available")

// Catalog holds venues grouped by the recognized rank keys. Read-only
// after Load.
type Catalog struct {
	// Note is the catalog's free-text note field.
	Note string

	groups map[string][]types.SourceDescriptor
}

// Group is one ordered entry of the grouped catalog view.
type Group struct {
	Key     string                   `json:"rank"`
	Sources []types.SourceDescriptor `json:"sources"`
}

// Load reads the first existing file in paths. A generated catalog is
// listed before the hand-maintained fallback, so path order is priority
// order. A missing file falls through to the next path; a file that exists
// but fails to parse is an error, not a fallthrough.
func Load(paths []string) (*Catalog, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
		c, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		return c, nil
	}
	return nil, ErrUnavailable
}

func parse(data []byte) (*Catalog, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	c := &Catalog{groups: make(map[string][]types.SourceDescriptor)}
	if noteRaw, ok := raw["note"]; ok {
		if err := json.Unmarshal(noteRaw, &c.Note); err != nil {
			return nil, fmt.Errorf("parsing note: %w", err)
		}
	}

	// Unrecognized keys are ignored, not rejected: the file may carry
	// bookkeeping fields for the tool that generates it.
	for _, key := range types.GroupKeys() {
		groupRaw, ok := raw[key]
		if !ok {
			continue
		}
		var sources []types.SourceDescriptor
		if err := json.Unmarshal(groupRaw, &sources); err != nil {
			return nil, fmt.Errorf("parsing group %s: %w", key, err)
		}
		c.groups[key] = sources
	}
	return c, nil
}

// MatchesFilter reports whether the group identified by groupKey is
// selected by the caller's rank filter. An empty filter selects every
// recognized group; "non" (and its underscore/hyphen variants) selects
// NON_RANKED only; a number n selects RANK_n only. Anything else selects
// nothing.
func MatchesFilter(filter, groupKey string) bool {
	f := strings.ToLower(strings.TrimSpace(filter))
	switch {
	case f == "":
		return true
	case f == "non" || f == "nonranked" || f == "non_ranked" || f == "non-ranked":
		return groupKey == types.GroupNonRanked
	case isDigits(f):
		return groupKey == "RANK_"+f
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Select returns the sources matching filter in stable order: group order
// RANK_1..RANK_6 then NON_RANKED, then within-group order. Entries with no
// name are header rows or malformed and are skipped. Each returned
// descriptor carries its group key as the rank label.
func (c *Catalog) Select(filter string) []types.SourceDescriptor {
	var selected []types.SourceDescriptor
	for _, key := range types.GroupKeys() {
		if !MatchesFilter(filter, key) {
			continue
		}
		for _, src := range c.groups[key] {
			if src.Name == "" {
				continue
			}
			src.RankLabel = key
			selected = append(selected, src)
		}
	}
	return selected
}

// Grouped returns the ordered group view for the read-only catalog query.
// Absent or empty groups are omitted.
func (c *Catalog) Grouped() []Group {
	var groups []Group
	for _, key := range types.GroupKeys() {
		sources := c.groups[key]
		if len(sources) == 0 {
			continue
		}
		groups = append(groups, Group{Key: key, Sources: sources})
	}
	return groups
}
