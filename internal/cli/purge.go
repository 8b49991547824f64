package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var purgeDays int

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete conversations older than a retention window",
	Long: `Delete all conversations whose date is strictly older than --days days.

The lifetime message counter is intentionally left untouched; statistics
keep reporting the monotonic total.

Examples:
  hotelbot purge
  hotelbot purge --days 90`,
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().IntVar(&purgeDays, "days", 30, "delete turns older than this many days")
}

func runPurge(cmd *cobra.Command, args []string) error {
	result, err := api.Purge(context.Background(), purgeDays)
	if err != nil {
		return fmt.Errorf("purge: %w", err)
	}

	fmt.Printf("Deleted %d conversations older than %d days.\n", result.Deleted, result.Days)
	return nil
}
