package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

var ganttTmpl = template.Must(template.ParseFS(templateFS, "templates/gantt.html.tmpl"))

// palette cycles across milestone bars.
var palette = []template.CSS{"#3e7cb1", "#81a4cd", "#f2a541", "#db5461", "#4f9d69", "#8e6c88"}

type ganttRow struct {
	Name       string
	Start      string
	End        string
	DurationBD int
	Notes      string
	Offset     template.CSS
	Width      template.CSS
	Color      template.CSS
}

type ganttView struct {
	Title             string
	Start             string
	Completion        string
	Region            string
	TotalBusinessDays int
	Rows              []ganttRow
}

// GanttHTML renders the timeline as a standalone HTML page. Bars are
// placed on a calendar-day axis spanning the whole schedule.
func GanttHTML(doc *document.Document) (string, error) {
	if doc == nil {
		doc = &document.Document{}
	}
	tl := doc.Timeline
	view := ganttView{
		Title:             orDefaultTitle(doc.Initiative.Title),
		Start:             orTBD(tl.StartDate),
		Completion:        orTBD(completion(tl)),
		TotalBusinessDays: tl.TotalBusinessDays,
	}
	if tl.HolidayRegion != "" && tl.HolidayRegion != "None" {
		view.Region = tl.HolidayRegion
	}

	first, last, ok := span(tl.Items)
	total := last.Sub(first).Hours() / 24
	for i, it := range tl.Items {
		row := ganttRow{
			Name:       it.Name,
			Start:      it.Start,
			End:        it.End,
			DurationBD: it.DurationBD,
			Notes:      it.Notes,
			Offset:     "0",
			Width:      "0",
			Color:      palette[i%len(palette)],
		}
		s, errS := scheduler.ParseDate(it.Start)
		e, errE := scheduler.ParseDate(it.End)
		if ok && total > 0 && errS == nil && errE == nil {
			row.Offset = percent(s.Sub(first).Hours() / 24 / total)
			row.Width = percent(e.Sub(s).Hours() / 24 / total)
		}
		view.Rows = append(view.Rows, row)
	}

	var buf bytes.Buffer
	if err := ganttTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering timeline chart: %w", err)
	}
	return buf.String(), nil
}

func span(items []document.TimelineItem) (first, last time.Time, ok bool) {
	for _, it := range items {
		s, err := scheduler.ParseDate(it.Start)
		if err != nil {
			continue
		}
		e, err := scheduler.ParseDate(it.End)
		if err != nil {
			continue
		}
		if !ok || s.Before(first) {
			first = s
		}
		if !ok || e.After(last) {
			last = e
		}
		ok = true
	}
	return first, last, ok
}

func percent(f float64) template.CSS {
	return template.CSS(strconv.FormatFloat(f*100, 'f', 2, 64))
}

func orDefaultTitle(t string) string {
	if t == "" {
		return "Solution"
	}
	return t
}
