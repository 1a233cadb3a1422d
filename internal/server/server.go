// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes discovery over HTTP: a streaming search endpoint,
// the grouped source catalog, and a minimal search page.
package server

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/journal-scout/internal/catalog"
	"github.com/pdiddy/journal-scout/internal/discover"
	"github.com/pdiddy/journal-scout/internal/history"
	"github.com/pdiddy/journal-scout/internal/lexical"
	"github.com/pdiddy/journal-scout/internal/provider"
)

//go:embed index.html
var indexPage []byte

// Deps holds everything the handlers need.
type Deps struct {
	Searcher provider.Searcher
	Analyzer lexical.Analyzer

	// CatalogPaths is passed to catalog.Load on every search request, so
	// catalog file updates are picked up without a restart.
	CatalogPaths []string

	// Delay is the pacing delay between consecutive source fetches.
	Delay time.Duration

	// History records completed searches when non-nil.
	History *history.Store

	// Log receives handler warnings.
	Log io.Writer
}

type server struct {
	deps Deps
}

// NewRouter builds the gin router with all routes registered.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Log == nil {
		deps.Log = io.Discard
	}
	s := &server{deps: deps}

	router := gin.Default()
	router.GET("/", s.indexHandler)
	router.GET("/health", s.healthHandler)
	router.GET("/sources", s.sourcesHandler)
	router.POST("/search", s.searchHandler)
	return router
}

func (s *server) indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (s *server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sourcesHandler returns the catalog grouped by rank, groups ordered
// RANK_1..RANK_6 then NON_RANKED, absent groups omitted.
func (s *server) sourcesHandler(c *gin.Context) {
	cat, err := catalog.Load(s.deps.CatalogPaths)
	if errors.Is(err, catalog.ErrUnavailable) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no source catalog found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"note":   cat.Note,
		"groups": cat.Grouped(),
	})
}

// searchHandler runs one discovery and streams its events as SSE lines.
func (s *server) searchHandler(c *gin.Context) {
	req := discover.Request{
		Topic:       c.PostForm("topic"),
		RankFilter:  c.PostForm("rank"),
		SourcesJSON: c.PostForm("sources_json"),
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	cat, err := catalog.Load(s.deps.CatalogPaths)
	if err != nil {
		// Catalog-mode requests will see the error terminal event from
		// the run; explicit-mode requests proceed without a catalog.
		fmt.Fprintf(s.deps.Log, "warning: catalog load: %v\n", err)
		cat = nil
	}

	deps := discover.Deps{
		Searcher: s.deps.Searcher,
		Analyzer: s.deps.Analyzer,
		Catalog:  cat,
		Delay:    s.deps.Delay,
		Log:      s.deps.Log,
	}

	sink := newSSESink(c.Writer)
	outcome, err := discover.Run(c.Request.Context(), req, deps, sink)
	if err != nil {
		// Caller disconnected; nothing left to send.
		return
	}

	if s.deps.History != nil && outcome.SourcesQueried > 0 {
		entry := history.Entry{
			Topic:          req.Topic,
			Mode:           outcome.Mode,
			RankFilter:     req.RankFilter,
			SourcesQueried: outcome.SourcesQueried,
			ResultCount:    outcome.ResultCount,
			TopScore:       outcome.TopScore,
		}
		if _, err := s.deps.History.Record(c.Request.Context(), entry); err != nil {
			fmt.Fprintf(s.deps.Log, "warning: recording history: %v\n", err)
		}
	}
}
