// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EntrezConfig holds settings for the NCBI E-utilities client. The values
// are resolved by the caller (flags, config file, secrets) before the
// client is constructed.
type EntrezConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities endpoint root, ending in a slash
	// (default "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Tool is the application identifier sent with every request, as
	// required by the NCBI usage policy.
	Tool string `json:"tool" yaml:"tool"`

	// Email is the contact identifier sent with every request.
	Email string `json:"email" yaml:"email"`

	// APIKey is an optional NCBI API key for the elevated rate tier.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MinInterval is the minimum spacing between outbound requests:
	// 340ms without an API key, 100ms with one. Enforced by the
	// injected rate governor, not computed here.
	MinInterval time.Duration `json:"min_interval" yaml:"min_interval"`
}

// HistoryConfig holds settings for the session store.
type HistoryConfig struct {
	// DataDir is the directory holding the sessions database.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// SnapshotLimit bounds how many records a saved session retains
	// (default 5).
	SnapshotLimit int `json:"snapshot_limit" yaml:"snapshot_limit"`

	// SnippetLength bounds the stored abstract and section text length
	// in runes (default 500).
	SnippetLength int `json:"snippet_length" yaml:"snippet_length"`
}

// Config groups all component configurations.
type Config struct {
	Entrez  EntrezConfig  `json:"entrez" yaml:"entrez"`
	History HistoryConfig `json:"history" yaml:"history"`
}
