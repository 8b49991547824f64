package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	Long: `Show aggregate usage: lifetime message count, per-language counts,
today's and this week's activity, and the five most frequent questions.

Note the lifetime total is a running counter; it is not reduced when old
conversations are purged.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	result, err := api.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("get statistics: %w", err)
	}
	stats := result.Statistics

	fmt.Println(headerStyle.Render("Usage Statistics"))
	fmt.Println(headerStyle.Render("═══════════════════════════════════════"))
	fmt.Printf("Total messages: %d\n", stats.TotalMessages)
	fmt.Printf("Last updated:   %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))
	fmt.Printf("Today:          %d\n", stats.Today)
	fmt.Printf("Last 7 days:    %d\n", stats.ThisWeek)

	if len(stats.ByLocale) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("By language:"))
		for locale, count := range stats.ByLocale {
			fmt.Printf("  %-4s %d\n", locale, count)
		}
	}

	if len(stats.TopMessages) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Top questions:"))
		for i, mc := range stats.TopMessages {
			fmt.Printf("  %d. %s (%d)\n", i+1, mc.Message, mc.Count)
		}
	}

	return nil
}
