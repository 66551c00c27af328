// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved search sessions (list, show, delete, clear)",
	Long: `History manages the local SQLite database of saved search sessions.
Sessions are scoped to the owner id: listing, showing, and deleting only
ever touch the current owner's rows.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	summaries, err := store.List(context.Background(), ownerID(cmd), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-8s  %s\n", "Session", "Saved", "Results", "Query")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, sum := range summaries {
		query := sum.Query
		if len(query) > 40 {
			query = query[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-8d  %s\n",
			sum.ID, sum.CreatedAt.Format("2006-01-02 15:04:05"), sum.Total, query)
	}
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a saved session and its record snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}

	sess, err := store.Get(context.Background(), ownerID(cmd), args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sess)
	}

	fmt.Printf("Session: %s\n", sess.ID)
	fmt.Printf("Query:   %s\n", sess.Query)
	fmt.Printf("Saved:   %s\n", sess.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Results: %d (%d in snapshot)\n", sess.Total, len(sess.Snapshot))
	if sess.Tokens.IsZero() {
		fmt.Println("Tokens:  none (resume will resubmit the query)")
	} else {
		fmt.Println("Tokens:  present")
	}
	if len(sess.Snapshot) > 0 {
		fmt.Println()
		formatRecords(sess.Snapshot)
	}
	return nil
}

// --- delete subcommand ---

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a saved session",
	Long: `Delete removes one saved session. Deleting a session that does not
exist, or that belongs to another owner, is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryDelete,
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	if err := store.Delete(context.Background(), ownerID(cmd), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s\n", args[0])
	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all of the owner's saved sessions",
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	n, err := store.Clear(context.Background(), ownerID(cmd))
	if err != nil {
		return err
	}
	fmt.Printf("Cleared %d session(s)\n", n)
	return nil
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum sessions to list (0 = use default)")
	historyListCmd.Flags().Bool("json", false, "output summaries as JSON")
	historyShowCmd.Flags().Bool("json", false, "output the session as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
