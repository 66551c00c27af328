// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-search/internal/entrez"
	"github.com/pdiddy/pubmed-search/internal/retry"
	"github.com/pdiddy/pubmed-search/pkg/types"
)

var relatedCmd = &cobra.Command{
	Use:   "related <pmid>",
	Short: "Find articles related to a known PubMed record",
	Long: `Related asks PubMed for records linked to the given article by the
service's similarity computation and fetches their details. An article
with no computed neighbors yields an empty result.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	relatedCmd.Flags().Int("max-results", 10, "maximum number of related records to fetch")
	relatedCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		return fmt.Errorf("--max-results must be positive")
	}

	client := newEntrezClient(cmd)
	ctx := context.Background()

	var res types.Result
	err := retry.Do(ctx, 0, entrez.IsTransport, func(ctx context.Context) error {
		var err error
		res, err = client.Related(ctx, args[0], maxResults)
		return err
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatResult(res, 0, jsonOutput)
}
