// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/journal-scout/internal/catalog"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Print the source catalog grouped by rank",
	RunE:  runSources,
}

func runSources(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(catalogPaths(cmd))
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"note":   cat.Note,
			"groups": cat.Grouped(),
		})
	}

	if cat.Note != "" {
		fmt.Printf("Note: %s\n\n", cat.Note)
	}
	for _, group := range cat.Grouped() {
		fmt.Printf("%s (%d sources)\n", group.Key, len(group.Sources))
		for _, src := range group.Sources {
			if src.Name == "" {
				continue
			}
			fmt.Printf("  %-40s  %s\n", src.Name, src.BaseURL)
		}
	}
	return nil
}

func init() {
	sourcesCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(sourcesCmd)
}
