package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/raphaelgruber/hotelbot-go/internal/client"
)

var (
	chatInteractive bool
	chatSessionID   string
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a message to the hotel assistant",
	Long: `Send one message, or start an interactive chat session.

In interactive mode the session keeps a single session id for its whole
lifetime, so all turns group together in history.

Examples:
  hotelbot chat "Is wifi free?"
  hotelbot chat "Bonjour, combien coûte une chambre ?"
  hotelbot chat -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVarP(&chatInteractive, "interactive", "i", false, "interactive chat session")
	chatCmd.Flags().StringVar(&chatSessionID, "session", "", "session id to group turns under")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if chatInteractive {
		return runInteractiveChat(ctx)
	}

	if len(args) == 0 {
		return fmt.Errorf("message required (or use -i for interactive mode)")
	}

	reply, err := api.Chat(ctx, args[0], chatSessionID)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	fmt.Println(botStyle.Render(reply.Reply))
	if verbose {
		fmt.Println(hintStyle.Render(fmt.Sprintf("locale=%s session=%s", reply.Language, reply.SessionID)))
	}
	return nil
}

// runInteractiveChat keeps one websocket connection and one session id for
// the whole conversation.
func runInteractiveChat(ctx context.Context) error {
	sessionID := chatSessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := api.DialChat(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	fmt.Println(hintStyle.Render("Connected. Type a question; 'exit' to quit."))
	fmt.Println(hintStyle.Render("session: " + sessionID))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := conn.WriteJSON(map[string]string{"message": line}); err != nil {
			return fmt.Errorf("send: %w", err)
		}
		var reply client.ChatReply
		if err := conn.ReadJSON(&reply); err != nil {
			return fmt.Errorf("receive: %w", err)
		}
		if reply.Error != "" {
			fmt.Println(errorStyle.Render(reply.Reply))
			continue
		}
		fmt.Println(botStyle.Render(reply.Reply))
	}
}
