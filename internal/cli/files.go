package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/export"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/spf13/cobra"
)

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// loadSnapshot reads a saved form state. "-" reads JSON from stdin.
func loadSnapshot(cmd *cobra.Command, path string) (formstate.Snapshot, error) {
	if path != stdio {
		return formstate.Load(path)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return formstate.Parse(data, false)
}

// loadDocument reads a wizard document from a JSON file, stdin or an
// export archive. Lenient-parse issues are returned with the document.
func loadDocument(cmd *cobra.Command, path string) (*document.Document, []string, error) {
	switch {
	case path == stdio:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		return document.Parse(data)
	case strings.EqualFold(filepath.Ext(path), ".zip"):
		return export.ReadFile(path, true)
	default:
		return document.Load(path)
	}
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == stdio {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

// writeSnapshot saves a form state to path, choosing YAML or JSON by
// extension. On stdout the asYAML flag decides.
func writeSnapshot(cmd *cobra.Command, path string, snap formstate.Snapshot, asYAML bool) error {
	if path != "" && path != stdio {
		if err := formstate.Save(path, snap); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
		return nil
	}
	data, err := formstate.Marshal(snap, asYAML)
	if err != nil {
		return err
	}
	return writeOutput(cmd, "", data)
}
