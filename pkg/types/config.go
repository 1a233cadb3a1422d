// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "journal-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ProviderConfig holds settings for the external search provider.
type ProviderConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Engine selects the provider engine (default "google"; "google_scholar"
	// is the common alternative for academic material).
	Engine string `json:"engine" yaml:"engine"`

	// Language is the hl parameter sent with every query (default "id").
	Language string `json:"language" yaml:"language"`

	// PageSize is the number of results requested per source (default 20).
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxRetries bounds rate-limit retries per request (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CatalogConfig holds settings for the source catalog.
type CatalogConfig struct {
	// Paths lists catalog files to try in order; the first readable one wins.
	Paths []string `json:"paths" yaml:"paths"`
}

// DiscoveryConfig holds settings for the discovery loop.
type DiscoveryConfig struct {
	// SourceDelay is the pacing delay between consecutive source fetches
	// (default 1s). The provider rate-limits abusive querying, so retrieval
	// stays sequential with this delay between fetches.
	SourceDelay time.Duration `json:"source_delay" yaml:"source_delay"`

	// LexiconPath optionally points at a normalization lexicon file.
	LexiconPath string `json:"lexicon_path,omitempty" yaml:"lexicon_path,omitempty"`
}

// HistoryConfig holds settings for the search history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database. Empty disables
	// history recording.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}
