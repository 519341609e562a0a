package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gems-assistant/internal/intent"
)

// Responder answers a single chat message.
type Responder interface {
	Respond(ctx context.Context, message string) string
}

// App holds the services used by CLI commands.
type App struct {
	Intents     intent.UseCase
	Resolver    Responder
	IntentsPath string

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Close releases whatever Bootstrap opened. Optional; Execute calls it
	// once the command returns, failed or not.
	Close func() error
}

// Bootstrap wires an App from the config file at configPath, or from the
// default search path when configPath is empty.
type Bootstrap func(ctx context.Context, configPath string) (*App, error)

// AddConfigFlag registers --config on fs.
func AddConfigFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVar(target, "config", "", "path to config.yaml (default: search ./config, ., /etc/app)")
}

// Execute runs the command line in args against an App wired by boot, then
// closes the App even when the command failed.
func Execute(ctx context.Context, boot Bootstrap, args []string) error {
	var app *App
	root := NewRootCmd(func(ctx context.Context, configPath string) (*App, error) {
		loaded, err := boot(ctx, configPath)
		app = loaded
		return loaded, err
	})
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if app != nil && app.Close != nil {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// NewRootCmd creates the top-level "gemsctl" command. The App is wired by
// boot once flags are parsed, right before the selected subcommand runs.
// Closing it is left to the caller, see Execute.
func NewRootCmd(boot Bootstrap) *cobra.Command {
	var configPath string
	app := &App{}

	root := &cobra.Command{
		Use:           "gemsctl",
		Short:         "Manage and query the GEMS assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}
			loaded, err := boot(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			if loaded == nil {
				return errors.New("bootstrap returned no app")
			}
			*app = *loaded
			return nil
		},
	}
	AddConfigFlag(root.PersistentFlags(), &configPath)

	root.AddCommand(
		newSeedCmd(app),
		newAskCmd(app),
		newIntentsCmd(app),
		newChatCmd(app),
	)

	return root
}

// needsApp is false for cobra's built-in help and completion commands.
func needsApp(cmd *cobra.Command) bool {
	if cmd.Name() == "help" {
		return false
	}
	return !cmd.HasParent() || cmd.Parent().Name() != "completion"
}
