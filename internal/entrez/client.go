// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entrez is a client for the NCBI E-utilities search protocol.
// It implements the two phases of a PubMed search — identifier discovery
// via esearch and bulk record retrieval via efetch — plus related-record
// lookup via elink and spelling suggestions via espell. Every outbound
// request passes through a shared rate governor and carries the tool and
// contact identifiers the NCBI usage policy requires.
// Implements: prd001-search-protocol (R1-R5);
//
//	docs/ARCHITECTURE § Search Protocol.
package entrez

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pdiddy/pubmed-search/internal/ratelimit"
	"github.com/pdiddy/pubmed-search/pkg/types"
)

// DefaultBaseURL is the production E-utilities endpoint root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/"

const pubmedDB = "pubmed"

// Client talks to the E-utilities endpoints. Construct with New; the zero
// value is not usable. Safe for concurrent use.
type Client struct {
	http    *http.Client
	limiter *ratelimit.Governor
	cfg     types.EntrezConfig
}

// New returns a Client for the configured endpoint. The governor is shared
// across every component that performs network I/O; tests pass
// ratelimit.New(0) to disable spacing.
func New(cfg types.EntrezConfig, gov *ratelimit.Governor) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: gov,
		cfg:     cfg,
	}
}

// baseParams returns the query parameters every E-utilities request
// carries: database selection, XML response mode, and the tool, contact,
// and credential identifiers.
func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("db", pubmedDB)
	params.Set("retmode", "xml")
	params.Set("tool", c.cfg.Tool)
	params.Set("email", c.cfg.Email)
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	return params
}

// get acquires the rate governor, performs a GET against endpoint
// (e.g. "esearch.fcgi"), and returns the response body. All failures of
// the exchange itself map to *TransportError; op names the call for error
// messages. The governor claim is made before the request, so a timed-out
// request still counts toward the interval.
func (c *Client) get(ctx context.Context, op, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	reqURL := c.cfg.BaseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return body, nil
}
