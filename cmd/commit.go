package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/inovacc/gitpace/internal/config"
	"github.com/inovacc/gitpace/internal/git"
	"github.com/inovacc/gitpace/internal/schedule"
	"github.com/inovacc/gitpace/internal/store"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit [git commit args...]",
	Short: "Create a commit with a randomized timestamp",
	Long: `Create a git commit whose author and committer dates are drawn at
random from the configured time window. All arguments are forwarded to
git commit verbatim.

Examples:
  gitpace commit -m "feat: add new feature"
  gitpace commit -a -m "fix: resolve bug" --no-verify`,
	// Everything after "commit" belongs to git.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimestampedCommit(cmd.Context(), args, false)
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}

// runTimestampedCommit is the shared path behind the root pass-through,
// commit, and amend commands.
func runTimestampedCommit(ctx context.Context, extraArgs []string, amend bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	client := git.NewClient()

	if !client.IsRepository(ctx) {
		return fmt.Errorf("not a git repository")
	}

	cfgStore, err := config.DefaultStore()
	if err != nil {
		return err
	}

	window, err := cfgStore.Load()
	if err != nil {
		return err
	}

	// A missing or unreadable HEAD means a fresh repository; the
	// generator then anchors against the current time instead.
	var ref *time.Time
	if head, ok := client.HeadCommitTime(ctx); ok {
		ref = &head
	}

	generated, err := schedule.NewGenerator().Generate(window, ref)
	if err != nil {
		return err
	}

	slog.Debug("generated commit timestamp",
		"window", window.String(),
		"timestamp", generated.Format(time.RFC3339),
		"amend", amend,
	)

	action := "git commit"
	if amend {
		action = "git commit --amend"
	}

	_, _ = fmt.Fprintln(os.Stdout, dimStyle.Render(
		fmt.Sprintf("Running %s with timestamp %s...", action, generated.Format(time.RFC3339))))

	opts := git.CommitOptions{
		Amend:     amend,
		ExtraArgs: extraArgs,
	}

	// Git's own output is already on the terminal; surface the failure
	// without interpreting it.
	if err := client.Commit(ctx, generated, opts); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, okStyle.Render("Commit created successfully!"))

	recordHistory(generated, amend)

	return nil
}

// recordHistory appends the used timestamp to the local journal. The commit
// has already happened, so journal failures only warn.
func recordHistory(ts time.Time, amend bool) {
	journal, err := store.OpenDefault()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("warning: could not open history journal: %v", err)))
		return
	}
	defer func() { _ = journal.Close() }()

	mode := "commit"
	if amend {
		mode = "amend"
	}

	repoPath, _ := os.Getwd()

	if err := journal.Record(repoPath, mode, ts, time.Now()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("warning: could not record history: %v", err)))
	}
}
