package cmd

import (
	"github.com/spf13/cobra"
)

var amendCmd = &cobra.Command{
	Use:   "amend [git commit args...]",
	Short: "Re-stamp the most recent commit",
	Long: `Amend the most recent commit with a fresh randomized timestamp.
The commit message is preserved and authorship is reset to the current
user. Extra arguments are forwarded to git commit verbatim.

Examples:
  gitpace amend
  gitpace amend --no-verify`,
	// Everything after "amend" belongs to git.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimestampedCommit(cmd.Context(), args, true)
	},
}

func init() {
	rootCmd.AddCommand(amendCmd)
}
