package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search past conversations",
	Long: `Search conversations for a keyword (case-insensitive substring over
both user messages and bot responses), newest first.

Examples:
  hotelbot search wifi
  hotelbot search chambre -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "max results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	result, err := api.Search(context.Background(), keyword, searchLimit)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if result.Count == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Found %d results for %q", result.Count, keyword)))
	fmt.Println()
	printTurns(result.Results)
	return nil
}
