// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-search/pkg/types"
)

// SubmitResult is the outcome of the discovery phase: the total match
// count, the identifiers for the requested page, and the continuation
// token pair for fetching details later without resubmitting the query.
type SubmitResult struct {
	Total  int
	IDs    []string
	Tokens types.TokenPair
}

// esearch response XML structures.
type eSearchResult struct {
	Count    string   `xml:"Count"`
	WebEnv   string   `xml:"WebEnv"`
	QueryKey string   `xml:"QueryKey"`
	IDs      []string `xml:"IdList>Id"`
}

// Submit runs the discovery phase of a search: it sends the query with
// usehistory=y so the service retains the result set server-side, and
// parses out the match count, the page of identifiers, and the token
// pair. The query string is opaque to the client beyond URL encoding.
// sortOrder may be empty for the service default. No retry happens here;
// backoff policy belongs to the caller.
func (c *Client) Submit(ctx context.Context, query string, pageSize, offset int, sortOrder string) (SubmitResult, error) {
	const op = "esearch"

	params := c.baseParams()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(pageSize))
	params.Set("retstart", strconv.Itoa(offset))
	params.Set("usehistory", "y")
	if sortOrder != "" {
		params.Set("sort", sortOrder)
	}

	body, err := c.get(ctx, op, "esearch.fcgi", params)
	if err != nil {
		return SubmitResult{}, err
	}

	var sr eSearchResult
	if err := xml.Unmarshal(body, &sr); err != nil {
		return SubmitResult{}, &StructuralError{Op: op, Err: err}
	}

	count, err := strconv.Atoi(strings.TrimSpace(sr.Count))
	if err != nil {
		return SubmitResult{}, &StructuralError{Op: op, Err: err}
	}

	return SubmitResult{
		Total:  count,
		IDs:    sr.IDs,
		Tokens: normalizeTokens(sr.WebEnv, sr.QueryKey),
	}, nil
}

// normalizeTokens enforces the both-or-neither invariant on the token
// pair: a response carrying only one half is treated as carrying none,
// which merely disables resumption for that search.
func normalizeTokens(webEnv, queryKey string) types.TokenPair {
	webEnv = strings.TrimSpace(webEnv)
	queryKey = strings.TrimSpace(queryKey)
	if webEnv == "" || queryKey == "" {
		return types.TokenPair{}
	}
	return types.TokenPair{WebEnv: webEnv, QueryKey: queryKey}
}
