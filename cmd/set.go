package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/gitpace/internal/config"
	"github.com/inovacc/gitpace/internal/schedule"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <start> <end>",
	Short: "Configure the daily commit time window",
	Long: `Set the time window commits are stamped into. Both times use
24-hour HH:MM format and the start must be strictly before the end.

Examples:
  gitpace set 00:00 02:00
  gitpace set 21:30 23:45`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	window, err := schedule.ParseWindow(args[0], args[1])
	if err != nil {
		return err
	}

	store, err := config.DefaultStore()
	if err != nil {
		return err
	}

	if err := store.Save(window); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, okStyle.Render(fmt.Sprintf("Time window set to: %s", window)))

	return nil
}
