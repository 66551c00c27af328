// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-search/internal/entrez"
	"github.com/pdiddy/pubmed-search/internal/retry"
	"github.com/pdiddy/pubmed-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search PubMed for articles matching a query",
	Long: `Search submits a query to PubMed, parks the result list on the server,
and fetches one page of records. Pagination is driven by --page-size and
--offset against the same submission.

Use --save to store the session (query, continuation tokens, and a record
snapshot) for later resumption with the resume command.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "search query (or pass as positional args)")
	searchCmd.Flags().Int("page-size", 10, "number of records per page")
	searchCmd.Flags().Int("offset", 0, "zero-based index of the first record to fetch")
	searchCmd.Flags().String("sort", "relevance", "result order: relevance or pub_date")
	searchCmd.Flags().Bool("json", false, "output records as JSON")
	searchCmd.Flags().Bool("save", false, "save the session for later resumption")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	if query == "" {
		return fmt.Errorf("provide a search query")
	}

	pageSize, _ := cmd.Flags().GetInt("page-size")
	offset, _ := cmd.Flags().GetInt("offset")
	sortOrder, _ := cmd.Flags().GetString("sort")

	client := newEntrezClient(cmd)
	ctx := context.Background()

	var res types.Result
	err := retry.Do(ctx, 0, entrez.IsTransport, func(ctx context.Context) error {
		var err error
		res, err = client.Search(ctx, query, pageSize, offset, sortOrder)
		return err
	})
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		id, err := store.Save(ctx, ownerID(cmd), query, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved session %s\n", id)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatResult(res, offset, jsonOutput)
}
