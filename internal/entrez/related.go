// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/xml"
	"strconv"

	"github.com/pdiddy/pubmed-search/pkg/types"
)

// elink response XML structures. Only the pubmed_pubmed link set matters
// here; the Id path is the same for every link database.
type eLinkResult struct {
	LinkSets []eLinkSet `xml:"LinkSet"`
}

type eLinkSet struct {
	LinkSetDBs []eLinkSetDB `xml:"LinkSetDb"`
}

type eLinkSetDB struct {
	LinkName string   `xml:"LinkName"`
	IDs      []string `xml:"Link>Id"`
}

// Related discovers records related to the given identifier and fetches
// their details, capped at maxResults. Zero related identifiers is a
// valid empty outcome, not a failure.
func (c *Client) Related(ctx context.Context, id string, maxResults int) (types.Result, error) {
	const op = "elink"

	params := c.baseParams()
	params.Set("dbfrom", pubmedDB)
	params.Set("id", id)
	params.Set("linkname", "pubmed_pubmed")
	params.Set("retmax", strconv.Itoa(maxResults))

	body, err := c.get(ctx, op, "elink.fcgi", params)
	if err != nil {
		return types.Result{}, err
	}

	var lr eLinkResult
	if err := xml.Unmarshal(body, &lr); err != nil {
		return types.Result{}, &StructuralError{Op: op, Err: err}
	}

	var ids []string
	for _, set := range lr.LinkSets {
		for _, db := range set.LinkSetDBs {
			ids = append(ids, db.IDs...)
		}
	}
	if maxResults > 0 && len(ids) > maxResults {
		ids = ids[:maxResults]
	}

	if len(ids) == 0 {
		return types.Result{}, nil
	}
	return c.FetchByIDs(ctx, ids)
}
