// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the journal-scout CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-scout/internal/lexical"
	"github.com/pdiddy/journal-scout/internal/provider"
	"github.com/pdiddy/journal-scout/internal/secrets"
	"github.com/pdiddy/journal-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the journal-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "journal-scout",
	Short: "Discover and rank scholarly articles across journal sources",
	Long: `journal-scout queries an external search provider for articles about a
topic, one journal source at a time, then ranks the discovered snippets by
lexical-chain relevance to the topic.

Sources come from a rank-grouped catalog file or from an explicit list
supplied with the request. Run the HTTP server with "serve" or search from
the terminal with "search".`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./journal-scout.yaml or ~/.config/journal-scout/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "search provider API key (overrides config and .secrets/)")
	rootCmd.PersistentFlags().StringSlice("catalog", nil, "catalog file paths, first readable wins")
	rootCmd.PersistentFlags().String("lexicon", "", "normalization lexicon file")
	rootCmd.PersistentFlags().Duration("delay", 0, "pacing delay between source fetches")
	rootCmd.PersistentFlags().String("history-dir", "", "directory for the search history database (empty disables history)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("journal-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "journal-scout"))
		}
	}

	viper.SetEnvPrefix("JOURNAL_SCOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfig returns the flag value when set, the viper key otherwise,
// and fallback when both are empty.
func flagOrConfig(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// providerConfig assembles the provider configuration. The API key comes
// from the flag, then config/env, then .secrets/.
func providerConfig(cmd *cobra.Command) types.ProviderConfig {
	apiKey := flagOrConfig(cmd, "api-key", "provider.api_key", "")
	if apiKey == "" {
		apiKey = loadedSecrets[secrets.ProviderAPIKey]
	}

	timeout := viper.GetDuration("provider.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return types.ProviderConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "journal-scout/" + version,
		},
		APIKey:     apiKey,
		Engine:     viper.GetString("provider.engine"),
		Language:   viper.GetString("provider.language"),
		PageSize:   viper.GetInt("provider.page_size"),
		MaxRetries: viper.GetInt("provider.max_retries"),
	}
}

// newSearcher builds the provider client. Errors when no API key is
// configured anywhere.
func newSearcher(cmd *cobra.Command) (provider.Searcher, error) {
	cfg := providerConfig(cmd)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider API key required: set --api-key, JOURNAL_SCOUT_PROVIDER_API_KEY, or .secrets/%s", secrets.ProviderAPIKey)
	}
	return &provider.SerpAPI{
		Client: &http.Client{Timeout: cfg.Timeout},
		Cfg:    cfg,
	}, nil
}

func catalogPaths(cmd *cobra.Command) []string {
	if paths, _ := cmd.Flags().GetStringSlice("catalog"); len(paths) > 0 {
		return paths
	}
	if paths := viper.GetStringSlice("catalog.paths"); len(paths) > 0 {
		return paths
	}
	return []string{"catalog.generated.json", "catalog.json"}
}

func sourceDelay(cmd *cobra.Command) time.Duration {
	if d, _ := cmd.Flags().GetDuration("delay"); d > 0 {
		return d
	}
	if d := viper.GetDuration("discovery.source_delay"); d > 0 {
		return d
	}
	return time.Second
}

func newAnalyzer(cmd *cobra.Command) lexical.Analyzer {
	return lexical.NewAnalyzer(flagOrConfig(cmd, "lexicon", "discovery.lexicon_path", ""), os.Stderr)
}

func historyDir(cmd *cobra.Command) string {
	return flagOrConfig(cmd, "history-dir", "history.dir", "")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
