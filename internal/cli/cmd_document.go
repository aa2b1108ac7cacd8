package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/nafwizard/internal/cli/formatter"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/service"
	"github.com/spf13/cobra"
)

var errInvalidDocument = errors.New("document failed validation")

func newBuildCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build STATE_FILE",
		Short: "Build a wizard document from a saved form state",
		Long:  "Build reads a flat form state (YAML or JSON, \"-\" for stdin) and prints the nested wizard document as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd, args[0])
			if err != nil {
				return err
			}
			doc := app.Wizard.BuildSnapshot(cmd.Context(), snap)
			data, err := document.Marshal(doc)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, append(data, '\n'))
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the document here instead of stdout")
	return cmd
}

func newRestoreCmd(app *App) *cobra.Command {
	var (
		out    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "restore DOCUMENT",
		Short: "Turn a wizard document back into an editable form state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, issues, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			res := app.Wizard.Restore(cmd.Context(), doc)

			stderr := cmd.ErrOrStderr()
			for _, is := range issues {
				fmt.Fprintln(stderr, formatter.StyleYellow.Render("⚠ "+is))
			}
			fmt.Fprint(stderr, formatter.FormatWarnings(res.Warnings))

			return writeSnapshot(cmd, out, res.Snapshot, !asJSON)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Save the form state here (.yaml or .json) instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of YAML on stdout")
	return cmd
}

func newValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate DOCUMENT",
		Short: "Check a wizard document against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, issues, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			errs := document.Validate(doc)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(errs, issues))
			if len(errs) > 0 {
				return errInvalidDocument
			}
			return nil
		},
	}
	return cmd
}

func newRenderCmd(app *App) *cobra.Command {
	var (
		formatStr string
		out       string
		view      bool
	)

	cmd := &cobra.Command{
		Use:   "render DOCUMENT",
		Short: "Render a wizard document as markdown, highlights, HTML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := service.ParseReportFormat(formatStr)
			if err != nil {
				return err
			}
			doc, _, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			text, err := app.Wizard.Render(cmd.Context(), doc, format)
			if err != nil {
				return err
			}

			if view {
				if !app.interactive() {
					return errNotInteractive
				}
				title := doc.Initiative.Title
				if title == "" {
					title = "Solution design"
				}
				return runPager(cmd.InOrStdin(), cmd.OutOrStdout(), title, text)
			}
			return writeOutput(cmd, out, []byte(text+"\n"))
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", "md", "Output format: md, highlights, html or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the report here instead of stdout")
	cmd.Flags().BoolVar(&view, "view", false, "Open the report in a scrollable pager")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var (
		dir       string
		fromState bool
	)

	cmd := &cobra.Command{
		Use:   "export INPUT",
		Short: "Package a document with its reports into a ZIP archive",
		Long:  "Export writes the document JSON, the solution design markdown, the timeline chart and a manifest into one archive. With --state the input is a saved form state.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc *document.Document
			if fromState {
				snap, err := loadSnapshot(cmd, args[0])
				if err != nil {
					return err
				}
				doc = app.Wizard.BuildSnapshot(cmd.Context(), snap)
			} else {
				d, _, err := loadDocument(cmd, args[0])
				if err != nil {
					return err
				}
				doc = d
			}

			arc, err := app.Wizard.Export(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = app.Config.OutputDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			path := filepath.Join(dir, arc.Name)
			if err := os.WriteFile(path, arc.Data, 0o644); err != nil {
				return fmt.Errorf("writing archive: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%s)\n", path,
				formatter.Plural(len(arc.Manifest.Files), "file", "files"))
			for _, f := range arc.Manifest.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", formatter.Dim(f))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default from NAFWIZ_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&fromState, "state", false, "Treat INPUT as a saved form state")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "import EXPORT_FILE",
		Short: "Load an exported document (.json or .zip) back into a form state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			res, err := app.Wizard.Import(cmd.Context(), args[0], data, force)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			for _, is := range res.Issues {
				fmt.Fprintln(stderr, formatter.StyleYellow.Render("⚠ "+is))
			}
			fmt.Fprint(stderr, formatter.FormatWarnings(res.Warnings))
			fmt.Fprintf(stderr, "Imported %q\n", res.Document.Initiative.Title)

			return writeSnapshot(cmd, out, res.Snapshot, true)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Save the form state here (.yaml or .json) instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "Accept a .json file that is not named like an export")
	return cmd
}
