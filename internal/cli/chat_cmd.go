package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const chatPrompt = "you> "

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant line by line",
		Long:  "Reads one message per line from stdin until EOF, \"exit\" or \"quit\".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.IsInteractive != nil && app.IsInteractive()
			w := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())

			if interactive {
				fmt.Fprintln(w, "Type a message, or \"exit\" to leave.")
				fmt.Fprint(w, chatPrompt)
			}
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "exit" || line == "quit" {
					break
				}
				if line != "" || interactive {
					fmt.Fprintln(w, app.Resolver.Respond(cmd.Context(), line))
				}
				if interactive {
					fmt.Fprint(w, chatPrompt)
				}
			}
			return scanner.Err()
		},
	}
}
