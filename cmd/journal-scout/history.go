// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/journal-scout/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir := historyDir(cmd)
	if dir == "" {
		return fmt.Errorf("history is disabled: set --history-dir or history.dir in the config")
	}

	store, err := history.NewStore(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-9s  %-8s  %-8s  %s\n",
		"When", "Topic", "Mode", "Sources", "Results", "Top")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, e := range entries {
		topic := e.Topic
		if len(topic) > 30 {
			topic = topic[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-9s  %-8d  %-8d  %d\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), topic, e.Mode,
			e.SourcesQueried, e.ResultCount, e.TopScore)
	}
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to list")

	rootCmd.AddCommand(historyCmd)
}
