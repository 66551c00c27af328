// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-search CLI.
// Implements: prd001-search-protocol, prd002-session-store (CLI surface).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-search/internal/entrez"
	"github.com/pdiddy/pubmed-search/internal/history"
	"github.com/pdiddy/pubmed-search/internal/ratelimit"
	"github.com/pdiddy/pubmed-search/internal/secrets"
	"github.com/pdiddy/pubmed-search/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "pubmed-search/0.1"
	defaultTool      = "pubmed-search"

	// NCBI grants ~3 requests/second without an API key and ~10 with one.
	defaultInterval = 340 * time.Millisecond
	keyedInterval   = 100 * time.Millisecond
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pubmed-search CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-search",
	Short: "Search PubMed and manage resumable search sessions",
	Long: `pubmed-search queries the NCBI E-utilities service for biomedical
literature. A search runs in two phases: the query is submitted once and
parked on the server, then result pages are fetched against the returned
continuation tokens. Sessions can be saved locally and resumed later.

Each operation is a subcommand: search, related, suggest, history, and
resume. Saved sessions are scoped to an owner id so a shared database
keeps each caller's history private.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-search.yaml or ~/.config/pubmed-search/config.yaml)")
	rootCmd.PersistentFlags().String("owner", "", "owner id for saved sessions (default: $USER)")
	rootCmd.PersistentFlags().String("api-key", "", "NCBI API key (default: .secrets/ncbi-api-key)")
	rootCmd.PersistentFlags().String("email", "", "contact email sent with requests (default: .secrets/contact-email)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the session database (default: ./data)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-search"))
		}
	}

	viper.SetEnvPrefix("PUBMED_SEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// entrezConfig assembles the client configuration from flags, the config
// file, and loaded secrets. The request interval tightens when an API key
// is present.
func entrezConfig(cmd *cobra.Command) types.EntrezConfig {
	apiKey, _ := cmd.Flags().GetString("api-key")
	apiKey = secretDefault("ncbi-api-key", apiKey)
	if apiKey == "" {
		apiKey = viper.GetString("api_key")
	}

	email, _ := cmd.Flags().GetString("email")
	email = secretDefault("contact-email", email)
	if email == "" {
		email = viper.GetString("email")
	}

	interval := defaultInterval
	if apiKey != "" {
		interval = keyedInterval
	}

	cfg := types.EntrezConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL:     entrez.DefaultBaseURL,
		Tool:        defaultTool,
		Email:       email,
		APIKey:      apiKey,
		MinInterval: interval,
	}
	if base := viper.GetString("base_url"); base != "" {
		cfg.BaseURL = base
	}
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}
	return cfg
}

// newEntrezClient builds a client with its rate governor from the resolved
// configuration.
func newEntrezClient(cmd *cobra.Command) *entrez.Client {
	cfg := entrezConfig(cmd)
	return entrez.New(cfg, ratelimit.New(cfg.MinInterval))
}

// openHistory opens the session store under the configured data directory.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("data_dir")
	}
	if dataDir == "" {
		dataDir = "data"
	}
	return history.NewStore(types.HistoryConfig{
		DataDir:       dataDir,
		SnapshotLimit: viper.GetInt("snapshot_limit"),
		SnippetLength: viper.GetInt("snippet_length"),
	})
}

// ownerID resolves the owner scope for session operations.
func ownerID(cmd *cobra.Command) string {
	owner, _ := cmd.Flags().GetString("owner")
	if owner == "" {
		owner = viper.GetString("owner")
	}
	if owner == "" {
		owner = os.Getenv("USER")
	}
	if owner == "" {
		owner = "default"
	}
	return owner
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
