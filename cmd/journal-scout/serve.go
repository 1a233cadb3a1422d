// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-scout/internal/history"
	"github.com/pdiddy/journal-scout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serve starts the HTTP server: a streaming search endpoint (POST /search),
the grouped source catalog (GET /sources), and a minimal search page (GET /).`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	searcher, err := newSearcher(cmd)
	if err != nil {
		return err
	}

	var store *history.Store
	if dir := historyDir(cmd); dir != "" {
		store, err = history.NewStore(dir)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	router := server.NewRouter(server.Deps{
		Searcher:     searcher,
		Analyzer:     newAnalyzer(cmd),
		CatalogPaths: catalogPaths(cmd),
		Delay:        sourceDelay(cmd),
		History:      store,
		Log:          os.Stderr,
	})

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = viper.GetString("server.addr")
	}
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("journal-scout listening on %s", addr)
	return router.Run(addr)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	rootCmd.AddCommand(serveCmd)
}
