// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-search/internal/entrez"
	"github.com/pdiddy/pubmed-search/internal/retry"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [query...]",
	Short: "Suggest spelling corrections for a query",
	Long: `Suggest asks the service's spelling checker for corrected forms of the
query. A query the service considers well-formed yields no suggestions.`,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a query to check")
	}
	query := strings.Join(args, " ")

	client := newEntrezClient(cmd)
	ctx := context.Background()

	var suggestions []string
	err := retry.Do(ctx, 0, entrez.IsTransport, func(ctx context.Context) error {
		var err error
		suggestions, err = client.Suggest(ctx, query)
		return err
	})
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Println(s)
	}
	return nil
}
