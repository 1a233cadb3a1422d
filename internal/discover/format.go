// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/journal-scout/pkg/types"
)

// FormatTable writes candidates as a human-readable table to w.
func FormatTable(results []types.Candidate, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-55s  %-25s  %-10s  %s\n",
		"Rank", "Title", "Source", "Tier", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 105))

	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-55s  %-25s  %-10s  %d\n",
			i+1, truncate(r.Title, 55), truncate(r.SourceName, 25),
			r.RankLabel, r.RelevanceScore)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes candidates as indented JSON to w.
func FormatJSON(results []types.Candidate, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
