package report

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/alexanderramin/nafwizard/internal/document"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"orDefault": func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	},
	// para joins narrative sentences into one paragraph.
	"para": func(vals ...string) string {
		var kept []string
		for _, v := range vals {
			if meaningful(v) {
				kept = append(kept, strings.TrimSpace(v))
			}
		}
		return orTBD(strings.Join(kept, " "))
	},
	"cell": func(v string) string {
		v = strings.ReplaceAll(v, "|", `\|`)
		return strings.Join(strings.Fields(v), " ")
	},
	"orTBD": orTBD,
}

var designTmpl = template.Must(
	template.New("solution_design.md.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/solution_design.md.tmpl"),
)

type stakeholderRow struct {
	Category string
	Choice   string
}

type designView struct {
	Doc          *document.Document
	Generated    string
	Highlights   string
	Stakeholders []stakeholderRow
	Completion   string
	Months       float64
}

// Markdown renders the full solution design document.
func Markdown(doc *document.Document, generatedAt time.Time) (string, error) {
	if doc == nil {
		doc = &document.Document{}
	}
	view := designView{
		Doc:        doc,
		Generated:  generatedAt.Format("2006-01-02 15:04:05"),
		Highlights: Highlights(doc),
		Completion: completion(doc.Timeline),
		Months:     EstimateMonths(doc.Timeline.TotalBusinessDays),
	}
	for k, v := range doc.Stakeholders.Choices {
		if meaningful(v) {
			view.Stakeholders = append(view.Stakeholders, stakeholderRow{Category: k, Choice: v})
		}
	}
	sort.Slice(view.Stakeholders, func(i, j int) bool {
		return view.Stakeholders[i].Category < view.Stakeholders[j].Category
	})

	var buf bytes.Buffer
	if err := designTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering solution design: %w", err)
	}
	return buf.String(), nil
}
