// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/pubmed-search/pkg/types"
)

// formatResult prints a result page as a table or JSON. The table shows a
// one-line summary per record; use --json for full records.
func formatResult(res types.Result, offset int, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if len(res.Records) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-10s  %-60s  %-6s  %s\n",
		"Rank", "PMID", "Title", "Year", "Journal")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, rec := range res.Records {
		title := rec.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		journal := rec.Journal
		if len(journal) > 24 {
			journal = journal[:21] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-10s  %-60s  %-6s  %s\n",
			offset+i+1, rec.PMID, title, rec.Year, journal)
	}

	fmt.Fprintf(os.Stdout, "\n%d of %d results\n", len(res.Records), res.Total)
	if !res.Tokens.IsZero() {
		fmt.Fprintln(os.Stdout, "More pages are available; rerun with --offset or save with --save and resume later.")
	}
	return nil
}

// formatRecords prints full record details, one block per record.
func formatRecords(records []types.Record) {
	for i, rec := range records {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("PMID:    %s\n", rec.PMID)
		fmt.Printf("Title:   %s\n", rec.Title)
		if len(rec.Authors) > 0 {
			fmt.Printf("Authors: %s\n", strings.Join(rec.Authors, ", "))
		}
		if rec.Journal != "" {
			fmt.Printf("Journal: %s (%s)\n", rec.Journal, rec.PubDate)
		}
		if rec.DOI != "" {
			fmt.Printf("DOI:     %s\n", rec.DOI)
		}
		fmt.Printf("URL:     %s\n", rec.URL)
		if len(rec.Sections) > 0 {
			for _, sec := range rec.Sections {
				fmt.Printf("\n%s\n%s\n", sec.Label, sec.Text)
			}
		} else if rec.Abstract != "" {
			fmt.Printf("\n%s\n", rec.Abstract)
		}
	}
}
