package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/calendar"
	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [GROUP_ID]",
		Short: "List the option catalogs, or the options of one checkbox group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				g, ok := catalog.GroupByID(args[0])
				if !ok {
					return fmt.Errorf("unknown group %q (see 'nafwizard catalog')", args[0])
				}
				fmt.Fprint(w, formatter.FormatGroup(g))
				return nil
			}

			fmt.Fprint(w, formatter.FormatCatalogSummary(app.Wizard.Catalog()))
			fmt.Fprint(w, formatter.KeyValue("Regions", strings.Join(calendar.Regions(), ", ")))
			return nil
		},
	}
	return cmd
}
