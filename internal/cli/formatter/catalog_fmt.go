package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/catalog"
)

// FormatCatalogSummary lists every checkbox group with its option count,
// then the dependency table.
func FormatCatalogSummary(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(Header("Checkbox groups") + "\n")
	rows := make([][]string, 0, len(catalog.Groups()))
	for _, g := range catalog.Groups() {
		custom := Dim("-")
		if g.HasCustom() {
			custom = g.CustomKey
		}
		rows = append(rows, []string{g.ID, strconv.Itoa(len(g.Options)), custom})
	}
	b.WriteString(RenderTable([]string{"GROUP", "OPTIONS", "CUSTOM KEY"}, rows))
	b.WriteString("\n")

	b.WriteString(Header("Dependencies") + "\n")
	rows = rows[:0]
	for _, d := range catalog.Dependencies {
		rows = append(rows, []string{Check(d.DefaultOn), d.Key, d.Label, d.DefaultDetails})
	}
	b.WriteString(RenderTable([]string{"ON", "KEY", "LABEL", "DEFAULT"}, rows))

	if cat != nil {
		b.WriteString("\n")
		b.WriteString(KeyValue("Categories", strconv.Itoa(len(cat.Categories))))
		b.WriteString(KeyValue("Deployment", strconv.Itoa(len(cat.DeploymentStrategies))))
		b.WriteString(KeyValue("Stakeholder", strconv.Itoa(len(cat.Stakeholders))))
	}
	return b.String()
}

// FormatGroup renders the options of one checkbox group.
func FormatGroup(g catalog.Group) string {
	var b strings.Builder
	b.WriteString(Header(g.Label) + "\n")
	for i, opt := range g.Options {
		b.WriteString(Dim(strconv.Itoa(i+1)+".") + " " + opt + "\n")
	}
	if g.HasCustom() {
		b.WriteString(Dim("custom: "+g.CustomKey) + "\n")
	}
	return b.String()
}
