// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-search/pkg/types"
)

// Fetch runs the retrieval phase against a previously submitted query:
// it requests full-detail records through the continuation token pair and
// an explicit offset/limit window, so repeated calls with increasing
// offsets page through the result set without resubmitting the query.
// The token pair is echoed in the Result so the caller can persist or
// reuse it; Total is the page-local record count, since efetch responses
// carry no match count. On failure the Result is empty and the error must
// be checked — an empty record list alone does not mean "no results".
//
// An expired token pair surfaces as a transport or structural error; the
// client cannot verify token validity locally.
func (c *Client) Fetch(ctx context.Context, tokens types.TokenPair, pageSize, offset int) (types.Result, error) {
	const op = "efetch"

	if tokens.IsZero() {
		return types.Result{}, fmt.Errorf("%s: no continuation tokens: submit the query first", op)
	}

	params := c.baseParams()
	params.Set("WebEnv", tokens.WebEnv)
	params.Set("query_key", tokens.QueryKey)
	params.Set("retmax", strconv.Itoa(pageSize))
	params.Set("retstart", strconv.Itoa(offset))
	params.Set("rettype", "abstract")

	body, err := c.get(ctx, op, "efetch.fcgi", params)
	if err != nil {
		return types.Result{}, err
	}

	records, err := decodeArticles(op, body)
	if err != nil {
		return types.Result{}, err
	}

	return types.Result{
		Total:   len(records),
		Records: records,
		Tokens:  tokens,
	}, nil
}

// FetchByIDs retrieves full-detail records for an explicit identifier
// list, for flows that hold no token pair (e.g. a related-record set).
// An empty id list is a valid empty result, not an error.
func (c *Client) FetchByIDs(ctx context.Context, ids []string) (types.Result, error) {
	const op = "efetch"

	if len(ids) == 0 {
		return types.Result{}, nil
	}

	params := c.baseParams()
	params.Set("id", strings.Join(ids, ","))
	params.Set("rettype", "abstract")

	body, err := c.get(ctx, op, "efetch.fcgi", params)
	if err != nil {
		return types.Result{}, err
	}

	records, err := decodeArticles(op, body)
	if err != nil {
		return types.Result{}, err
	}

	return types.Result{Total: len(records), Records: records}, nil
}

// Search runs both phases in sequence: Submit, then Fetch with the token
// pair the submission returned, for the same window. The Result carries
// the authoritative esearch match count. The two-phase calls remain the
// primary API; this is the convenience path for callers that want one
// page and the session state in a single call.
func (c *Client) Search(ctx context.Context, query string, pageSize, offset int, sortOrder string) (types.Result, error) {
	sub, err := c.Submit(ctx, query, pageSize, offset, sortOrder)
	if err != nil {
		return types.Result{}, err
	}

	if sub.Total == 0 || len(sub.IDs) == 0 {
		return types.Result{Total: sub.Total, Tokens: sub.Tokens}, nil
	}

	var res types.Result
	if sub.Tokens.IsZero() {
		// No history tokens issued; fall back to the explicit id list.
		res, err = c.FetchByIDs(ctx, sub.IDs)
	} else {
		res, err = c.Fetch(ctx, sub.Tokens, pageSize, offset)
	}
	if err != nil {
		return types.Result{}, err
	}

	res.Total = sub.Total
	res.Tokens = sub.Tokens
	return res, nil
}
