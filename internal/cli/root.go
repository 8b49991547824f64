// Package cli provides the command-line interface for hotelbot.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/hotelbot-go/internal/client"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose   bool
	serverURL string

	// API client shared by all commands
	api *client.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hotelbot",
	Short: "Hotel FAQ chatbot client",
	Long: `Hotelbot answers hotel questions (rooms, prices, check-in/out, WiFi,
parking, food, taxi, tourist places) in English or French by keyword
matching against a static knowledge base.

This CLI talks to a running hotelbot-server. Start one with
hotelbot-server, then chat, browse history, inspect usage statistics,
search past conversations, or purge old ones.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = client.New(serverURL)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (default $HOTELBOT_SERVER_URL or http://localhost:5000)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(purgeCmd)
}
