package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gems-assistant/internal/catalog"
	"gems-assistant/internal/intent"
)

func newSeedCmd(app *App) *cobra.Command {
	var (
		file           string
		updateExisting bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the intent definition file into the store",
		Long: "Adds every intent whose tag is not stored yet. With --update-existing, " +
			"stored intents sharing a tag are overwritten with the file's patterns and responses.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				path = app.IntentsPath
			}

			intents, err := catalog.LoadFile(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}

			out, err := app.Intents.Sync(cmd.Context(), intent.SyncInput{
				Intents:        intents,
				UpdateExisting: updateExisting,
			})
			if err != nil {
				return fmt.Errorf("seeding: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded from %s: added=%d updated=%d skipped=%d\n",
				path, out.Added, out.Updated, out.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "definition file (default: assistant.intents_path)")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "overwrite intents that are already stored")
	return cmd
}
