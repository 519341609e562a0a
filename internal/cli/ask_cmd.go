package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   `ask "<message>"`,
		Short: "Resolve one message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), app.Resolver.Respond(cmd.Context(), message))
			return nil
		},
	}
}
