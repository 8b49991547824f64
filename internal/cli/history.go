package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversations",
	Long: `Show the most recent conversation turns, newest first.

Examples:
  hotelbot history
  hotelbot history -n 10`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "max turns")
}

func runHistory(cmd *cobra.Command, args []string) error {
	result, err := api.History(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}

	if result.Count == 0 {
		fmt.Println("No conversations yet.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Last %d conversations", result.Count)))
	fmt.Println()
	printTurns(result.History)
	return nil
}

// printTurns renders turns for history and search output.
func printTurns(turns []models.Turn) {
	for _, t := range turns {
		fmt.Println(hintStyle.Render(fmt.Sprintf("%s [%s]", t.Timestamp.Format("2006-01-02 15:04:05"), t.Locale)))
		fmt.Printf("  user: %s\n", t.UserMessage)
		fmt.Printf("  bot:  %s\n", botStyle.Render(t.BotResponse))
		if verbose && t.SessionID != "" {
			fmt.Println(hintStyle.Render("  session: " + t.SessionID))
		}
		fmt.Println()
	}
}
