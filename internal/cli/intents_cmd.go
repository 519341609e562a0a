package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gems-assistant/internal/intent"
)

func newIntentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intents",
		Short: "Inspect the dynamic intent catalog",
	}
	cmd.AddCommand(newIntentsListCmd(app))
	return cmd
}

func newIntentsListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored intents ordered by tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Intents.List(cmd.Context(), intent.ListInput{Query: query})
			if err != nil {
				return fmt.Errorf("listing intents: %w", err)
			}

			w := cmd.OutOrStdout()
			if out.Total == 0 {
				fmt.Fprintln(w, "No intents stored.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TAG\tPATTERNS\tRESPONSES\tID")
			for _, it := range out.Intents {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", it.Tag, len(it.Patterns), len(it.Responses), it.ID)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(w, "%d intent(s)\n", out.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "q", "q", "", "fuzzy filter on the tag")
	return cmd
}
