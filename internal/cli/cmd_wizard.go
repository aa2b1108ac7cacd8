package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/nafwizard/internal/cli/formatter"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the wizard needs an interactive terminal")

func newNewCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new solution design in the interactive wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, app, domain.NewFormState(), out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "solution.yaml", "Where to save the form state (.yaml or .json)")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit STATE_FILE",
		Short: "Reopen a saved form state in the interactive wizard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := formstate.Load(args[0])
			if err != nil {
				return err
			}
			return runWizard(cmd, app, formstate.Decode(snap), args[0])
		},
	}
	return cmd
}

// runWizard walks the user through the form, then saves the result and
// prints the highlights of the document it builds.
func runWizard(cmd *cobra.Command, app *App, state domain.FormState, out string) error {
	if !app.interactive() {
		return errNotInteractive
	}

	answers := newWizardAnswers(app.Wizard.Catalog(), state)
	form := newWizardForm(app.Wizard.Catalog(), answers).
		WithInput(cmd.InOrStdin()).
		WithOutput(cmd.OutOrStdout())
	if err := form.RunWithContext(cmd.Context()); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted; nothing saved.")
			return nil
		}
		return err
	}

	state = answers.apply()
	if err := formstate.Save(out, formstate.Encode(state)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n\n", out)

	doc := app.Wizard.Build(cmd.Context(), state)
	highlights, err := app.Wizard.Render(cmd.Context(), doc, service.FormatHighlights)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Highlights", highlights))
	return nil
}
