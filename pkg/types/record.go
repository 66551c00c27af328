// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-search client.
// Implements: prd001-search-protocol (Record, TokenPair, Result);
//
//	prd002-session-store (SearchSession, SessionSummary).
package types

// Record is one bibliographic item decoded from an efetch response.
type Record struct {
	// PMID is the PubMed identifier. Never empty for a decoded record.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by PubMed.
	Title string `json:"title" yaml:"title"`

	// Authors lists author names in document order, formatted as
	// "LastName Initials" tokens (e.g. "Vaswani A").
	Authors []string `json:"authors" yaml:"authors"`

	// Journal is the full journal title.
	Journal string `json:"journal" yaml:"journal"`

	// PubDate is the publication date as "Month Year"; the month may be
	// absent, leaving a bare year.
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// Year is the best-effort publication year, empty if unknown.
	Year string `json:"year" yaml:"year"`

	// Abstract holds the abstract body text. When Sections is non-empty
	// it carries only the unlabeled portion, if any.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Sections holds labeled abstract parts (BACKGROUND, METHODS, ...)
	// in document order. Empty when the abstract is not subdivided.
	Sections []AbstractSection `json:"sections,omitempty" yaml:"sections,omitempty"`

	// DOI is the article DOI when PubMed reports one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL is the canonical PubMed reference URL for the record.
	URL string `json:"url" yaml:"url"`
}

// AbstractSection is one labeled part of a structured abstract.
type AbstractSection struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// TokenPair is the opaque server-side continuation handle issued by an
// esearch call with usehistory=y. Both fields are present together or not
// at all; the pair is never synthesized locally.
type TokenPair struct {
	// WebEnv is the history environment token.
	WebEnv string `json:"webenv" yaml:"webenv"`

	// QueryKey identifies the query within the environment.
	QueryKey string `json:"query_key" yaml:"query_key"`
}

// IsZero reports whether no continuation handle is available.
func (t TokenPair) IsZero() bool {
	return t.WebEnv == "" && t.QueryKey == ""
}

// Result is the uniform shape returned by the fetch-family operations.
type Result struct {
	// Total is the match count. For a combined search it is the
	// authoritative esearch count; for a standalone fetch it is the
	// page-local record count, since efetch responses carry no count.
	Total int `json:"total" yaml:"total"`

	// Records holds the decoded page of records.
	Records []Record `json:"records" yaml:"records"`

	// Tokens is the continuation pair for paging the same query later.
	Tokens TokenPair `json:"tokens" yaml:"tokens"`
}
