package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// FormatSchedule renders a scheduled plan as a milestone table followed by
// the totals and any holidays that fell inside the plan.
func FormatSchedule(plan scheduler.Plan, holidays []scheduler.Holiday, estimateMonths float64) string {
	var b strings.Builder
	b.WriteString(Header("Schedule") + "\n")

	headers := []string{"#", "MILESTONE", "START", "END", "BD", "NOTES"}
	rows := make([][]string, 0, len(plan.Items))
	for i, it := range plan.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			it.Name,
			FormatDate(&it.Start),
			FormatDate(&it.End),
			strconv.Itoa(it.DurationBD),
			it.Notes,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	b.WriteString(KeyValue("Start", FormatDate(&plan.Start)))
	b.WriteString(KeyValue("Total", FormatBusinessDays(plan.TotalBusinessDays)))
	b.WriteString(KeyValue("Completion", FormatDate(plan.ProjectedCompletion)))
	b.WriteString(KeyValue("Estimate", fmt.Sprintf("%.1f months", estimateMonths)))

	if len(holidays) == 0 {
		b.WriteString(KeyValue("Holidays", Dim("none")))
		return b.String()
	}
	b.WriteString(KeyValue("Holidays", fmt.Sprintf("%d in range", len(holidays))))
	for _, h := range holidays {
		b.WriteString(fmt.Sprintf("  %s  %s\n", h.Date.Format(scheduler.DateLayout), StyleYellow.Render(h.Name)))
	}
	return b.String()
}
