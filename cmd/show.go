package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/gitpace/internal/config"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured commit time window",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	store, err := config.DefaultStore()
	if err != nil {
		return err
	}

	window, err := store.Load()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Current time window: %s\n", window)

	return nil
}
