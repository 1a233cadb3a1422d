// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/journal-scout/internal/httputil"
	"github.com/pdiddy/journal-scout/pkg/types"
)

// serpSearchBase is the SerpAPI search endpoint. Declared as a var so
// tests can substitute an httptest server.
var serpSearchBase = "https://serpapi.com/search"

// SerpAPI queries the SerpAPI Google engine scoped to one venue per call.
type SerpAPI struct {
	Client *http.Client
	Cfg    types.ProviderConfig
}

// Name returns the provider identifier.
func (p *SerpAPI) Name() string { return "serpapi" }

// Fetch queries the provider for PDFs about topic hosted on the source's
// website. Results whose link is not a PDF are dropped: the discovery
// pipeline ranks article documents, not landing pages.
func (p *SerpAPI) Fetch(ctx context.Context, topic string, src types.SourceDescriptor) ([]types.Candidate, error) {
	engine := p.Cfg.Engine
	if engine == "" {
		engine = "google"
	}
	language := p.Cfg.Language
	if language == "" {
		language = "id"
	}
	pageSize := p.Cfg.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	params := url.Values{
		"engine":  {engine},
		"q":       {fmt.Sprintf("%s site:%s filetype:pdf", topic, src.BaseURL)},
		"hl":      {language},
		"num":     {fmt.Sprintf("%d", pageSize)},
		"api_key": {p.Cfg.APIKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.Cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, p.Cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned HTTP %d", resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing provider response: %w", err)
	}

	var candidates []types.Candidate
	for _, r := range sr.OrganicResults {
		if !strings.HasSuffix(strings.ToLower(r.Link), ".pdf") {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Title:         r.Title,
			URL:           r.Link,
			Snippet:       r.Snippet,
			SourceName:    src.Name,
			RankLabel:     src.RankLabel,
			SourceWebsite: src.BaseURL,
		})
	}
	return candidates, nil
}

// SerpAPI response JSON structures; only the fields the pipeline reads.
type serpResponse struct {
	OrganicResults []serpResult `json:"organic_results"`
}

type serpResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
