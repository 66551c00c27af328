// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/xml"
	"strings"
)

// espell response XML structures.
type eSpellResult struct {
	CorrectedQueries []string `xml:"CorrectedQuery"`
}

// Suggest asks the spelling service for corrected forms of a query.
// An empty list means the query had no suggested corrections.
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	const op = "espell"

	params := c.baseParams()
	params.Set("term", query)

	body, err := c.get(ctx, op, "espell.fcgi", params)
	if err != nil {
		return nil, err
	}

	var sr eSpellResult
	if err := xml.Unmarshal(body, &sr); err != nil {
		return nil, &StructuralError{Op: op, Err: err}
	}

	var suggestions []string
	for _, s := range sr.CorrectedQueries {
		if s = strings.TrimSpace(s); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}
