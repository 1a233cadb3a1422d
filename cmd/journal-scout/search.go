// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/journal-scout/internal/catalog"
	"github.com/pdiddy/journal-scout/internal/discover"
	"github.com/pdiddy/journal-scout/internal/history"
	"github.com/pdiddy/journal-scout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [topic]",
	Short: "Discover and rank articles about a topic",
	Long: `Search queries the provider for articles about the topic, one catalog
source at a time, and prints the batch ranked by lexical relevance.

Progress is written to stderr as each source is queried. Use --rank to
restrict the catalog to one rank group, or --sources to bypass the catalog
with an explicit JSON list of sources.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// cliSink prints progress to stderr and keeps the terminal batch for
// formatting after the run.
type cliSink struct {
	batch  []types.Candidate
	reason string
	failed bool
}

func (s *cliSink) Progress(src types.SourceDescriptor) {
	fmt.Fprintf(os.Stderr, "Searching %s (%s)...\n", src.Name, src.RankLabel)
}

func (s *cliSink) Error(reason string) {
	s.failed = true
	s.reason = reason
}

func (s *cliSink) Results(batch []types.Candidate) { s.batch = batch }

func (s *cliSink) Empty() {}

func runSearch(cmd *cobra.Command, args []string) error {
	searcher, err := newSearcher(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(catalogPaths(cmd))
	if err != nil && !errors.Is(err, catalog.ErrUnavailable) {
		return err
	}

	sourcesJSON, _ := cmd.Flags().GetString("sources")
	rankFilter, _ := cmd.Flags().GetString("rank")
	req := discover.Request{
		Topic:       args[0],
		RankFilter:  rankFilter,
		SourcesJSON: sourcesJSON,
	}

	sink := &cliSink{}
	out, err := discover.Run(cmd.Context(), req, discover.Deps{
		Searcher: searcher,
		Analyzer: newAnalyzer(cmd),
		Catalog:  cat,
		Delay:    sourceDelay(cmd),
		Log:      os.Stderr,
	}, sink)
	if err != nil {
		return err
	}
	if sink.failed {
		return fmt.Errorf("%s", sink.reason)
	}

	if dir := historyDir(cmd); dir != "" {
		if recordErr := recordSearch(cmd, req, out, dir); recordErr != nil {
			fmt.Fprintf(os.Stderr, "warning: recording history: %v\n", recordErr)
		}
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := discover.WriteResultFile(savePath, req, out, sink.batch); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved results to %s\n", savePath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return discover.FormatJSON(sink.batch, os.Stdout)
	}
	discover.FormatTable(sink.batch, os.Stdout)
	return nil
}

func recordSearch(cmd *cobra.Command, req discover.Request, out discover.Outcome, dir string) error {
	store, err := history.NewStore(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(cmd.Context(), history.Entry{
		Topic:          req.Topic,
		Mode:           out.Mode,
		RankFilter:     req.RankFilter,
		SourcesQueried: out.SourcesQueried,
		ResultCount:    out.ResultCount,
		TopScore:       out.TopScore,
	})
	return err
}

func init() {
	searchCmd.Flags().String("rank", "", "rank group filter: 1-6 or \"non\"")
	searchCmd.Flags().String("sources", "", "explicit JSON list of sources (bypasses the catalog)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}
