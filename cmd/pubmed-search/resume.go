// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-search/internal/entrez"
	"github.com/pdiddy/pubmed-search/internal/retry"
	"github.com/pdiddy/pubmed-search/pkg/types"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <session-id>",
	Short: "Resume a saved session and fetch another result page",
	Long: `Resume loads a saved session and fetches a page of records against its
stored continuation tokens. The tokens are time-bounded on the server; when
they have expired (or the session carries none) the stored query is
resubmitted, which re-parks the result list and may shift record positions
if the literature changed since the original search.`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().Int("page-size", 10, "number of records per page")
	resumeCmd.Flags().Int("offset", 0, "zero-based index of the first record to fetch")
	resumeCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	sess, err := store.Get(ctx, ownerID(cmd), args[0])
	if err != nil {
		return err
	}

	pageSize, _ := cmd.Flags().GetInt("page-size")
	offset, _ := cmd.Flags().GetInt("offset")

	client := newEntrezClient(cmd)

	var res types.Result
	if !sess.Tokens.IsZero() {
		err = retry.Do(ctx, 0, entrez.IsTransport, func(ctx context.Context) error {
			var err error
			res, err = client.Fetch(ctx, sess.Tokens, pageSize, offset)
			return err
		})
		switch {
		case err == nil && (len(res.Records) > 0 || sess.Total == 0):
			res.Total = sess.Total
			jsonOutput, _ := cmd.Flags().GetBool("json")
			return formatResult(res, offset, jsonOutput)
		case err != nil && entrez.IsTransport(err):
			return err
		}
		// An expired token pair surfaces as a structural error or an
		// empty page where the session recorded matches; fall through to
		// a fresh submission of the stored query.
		fmt.Fprintln(os.Stderr, "Stored session tokens no longer usable; resubmitting query")
	}

	err = retry.Do(ctx, 0, entrez.IsTransport, func(ctx context.Context) error {
		var err error
		res, err = client.Search(ctx, sess.Query, pageSize, offset, "")
		return err
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatResult(res, offset, jsonOutput)
}
