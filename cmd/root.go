package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/gitpace/internal/application"
	"github.com/inovacc/gitpace/internal/git"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName + " [git commit args...]",
	Short: "Schedule git commits inside a daily time window",
	Long: `Gitpace creates git commits with a randomized timestamp drawn from a
configured daily time window, instead of the wall-clock time of invocation.
A generated timestamp is always strictly later than the most recent commit.

Any arguments that do not match a subcommand are forwarded verbatim to
git commit.

Examples:
  gitpace set 22:00 23:30          Configure the time window
  gitpace show                     Show the configured window
  gitpace -m "feat: add parser"    Commit with a randomized timestamp
  gitpace amend                    Re-stamp the most recent commit`,
	Args: cobra.ArbitraryArgs,
	// Raw args go straight to git commit, so cobra must not eat flags
	// like -m or --no-verify.
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runRootCommit,
}

func runRootCommit(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	if args[0] == "-h" || args[0] == "--help" {
		return cmd.Help()
	}

	return runTimestampedCommit(cmd.Context(), args, false)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Pass git's own exit status through when we have it.
		code := git.GetExitCode(err)
		if code <= 0 {
			code = 1
		}

		os.Exit(code)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
