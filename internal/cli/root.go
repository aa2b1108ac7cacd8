package cli

import (
	"log/slog"

	"github.com/alexanderramin/nafwizard/internal/config"
	"github.com/alexanderramin/nafwizard/internal/service"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need: the wizard service and the
// runtime configuration.
type App struct {
	Wizard service.WizardService
	Config config.Config
	// Logger is used by the HTTP server; nil discards.
	Logger *slog.Logger
	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "nafwizard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "nafwizard",
		Short:         "Network automation solution design wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNewCmd(app),
		newEditCmd(app),
		newBuildCmd(app),
		newRestoreCmd(app),
		newValidateCmd(app),
		newRenderCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newScheduleCmd(app),
		newCatalogCmd(app),
		newServeCmd(app),
	)

	return root
}
