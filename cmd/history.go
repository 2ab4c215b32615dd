package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/inovacc/gitpace/internal/store"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List timestamps previously written by gitpace",
	Long: `Show the journal of randomized timestamps gitpace has handed to git,
newest first.

Examples:
  gitpace history
  gitpace history --limit 25`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Limit the number of entries")
}

func runHistory(_ *cobra.Command, _ []string) error {
	journal, err := store.OpenDefault()
	if err != nil {
		return err
	}
	defer func() { _ = journal.Close() }()

	entries, err := journal.List(historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No recorded timestamps yet.")
		return nil
	}

	for _, entry := range entries {
		_, _ = fmt.Fprintf(os.Stdout, "%s  %s %s\n",
			okStyle.Render(entry.Timestamp.Format(time.RFC3339)),
			entry.Mode,
			dimStyle.Render(entry.RepoPath),
		)
	}

	return nil
}
