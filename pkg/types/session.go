// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SearchSession is a durable, owner-scoped record of one search: the query
// text, when it ran, the total match count, a bounded snapshot of records,
// and the continuation token pair for resuming pagination. Immutable once
// written except for deletion.
type SearchSession struct {
	// ID is the session identifier (UUID).
	ID string `json:"id" yaml:"id"`

	// Owner identifies who performed the search. Ownership is enforced
	// at the query level by the store.
	Owner string `json:"owner" yaml:"owner"`

	// Query is the original free-text query string.
	Query string `json:"query" yaml:"query"`

	// CreatedAt is the UTC timestamp of the search.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Total is the match count reported at search time. May exceed the
	// snapshot size.
	Total int `json:"total" yaml:"total"`

	// Snapshot holds at most the store's snapshot limit of records, with
	// body text shortened for storage economy.
	Snapshot []Record `json:"snapshot" yaml:"snapshot"`

	// Tokens is the stored continuation pair. Zero when the original
	// search response carried none. Validity is time-bounded server-side
	// and cannot be verified locally.
	Tokens TokenPair `json:"tokens" yaml:"tokens"`
}

// SessionSummary is the listing view of a session, without the snapshot.
type SessionSummary struct {
	ID        string    `json:"id" yaml:"id"`
	Query     string    `json:"query" yaml:"query"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Total     int       `json:"total" yaml:"total"`
}
