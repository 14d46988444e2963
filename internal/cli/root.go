package cli

import (
	"github.com/alexanderramin/devcontract/internal/config"
	"github.com/alexanderramin/devcontract/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by all CLI commands.
type App struct {
	// Contracts returns a contract service whose generated documents are
	// written to outputPath.
	Contracts func(outputPath string) service.ContractService

	// Config carries the environment defaults; command flags override it.
	Config config.Config

	// IsInteractive reports whether stdin and stdout are attached to a
	// terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// colorEnabled reports whether console output may carry ANSI styling.
func (a *App) colorEnabled() bool {
	return a.interactive() && !a.Config.NoColor
}

// NewRootCmd creates the top-level "devcontract" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "devcontract",
		Short:         "Freelance development contract generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newValidateCmd(app),
		newSummaryCmd(app),
		newInitCmd(app),
		newPreviewCmd(app),
	)

	return root
}
