package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenTest compares got against testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()
	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll("testdata", 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)
	assert.Equal(t, string(expected), got,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func strPtr(s string) *string { return &s }

func sampleDocument() *document.Document {
	return &document.Document{
		MyRole: document.MyRole{Who: "I’m a network engineer."},
		Initiative: document.Initiative{
			Title:       "Branch turn-up",
			Description: domain.DefaultDescription,
			Category:    "Provisioning",
			OutOfScope:  "Wireless",
		},
		Stakeholders: document.Stakeholders{Choices: map[string]string{
			"Operations": "NOC",
			"Executive":  "CIO",
		}},
		Presentation: document.Presentation{
			Users:       "This solution targets Network Engineers.",
			Interaction: "Users will interact with the solution via CLI.",
		},
		Orchestration: document.Orchestration{Summary: "No Orchestration will be used in this project."},
		Dependencies:  wizard.DefaultDependencies(),
		Timeline: document.Timeline{
			StartDate:           "2024-01-01",
			TotalBusinessDays:   15,
			ProjectedCompletion: strPtr("2024-01-22"),
			BuildBuy:            domain.DefaultBuildBuy,
			StaffCount:          2,
			StaffingPlanMD:      "Two engineers.",
			HolidayRegion:       "United States",
			Items: []document.TimelineItem{
				{Name: "Planning", DurationBD: 5, Start: "2024-01-01", End: "2024-01-08"},
				{Name: "Design", DurationBD: 10, Start: "2024-01-08", End: "2024-01-22", Notes: "HLD | LLD"},
			},
		},
	}
}

func TestHighlights_Golden(t *testing.T) {
	goldenTest(t, "highlights_full", Highlights(sampleDocument()))
}

func TestHighlights_EmptyDocument(t *testing.T) {
	assert.Empty(t, Highlights(nil))
	assert.Empty(t, Highlights(&document.Document{
		Initiative:   document.Initiative{Title: domain.DefaultTitle, Description: domain.DefaultDescription},
		Dependencies: wizard.DefaultDependencies(),
	}))
}

func TestHighlights_NonDefaultDependencies(t *testing.T) {
	doc := &document.Document{Dependencies: []document.Dependency{
		{Name: "Network Infrastructure"},
		{Name: "ITSM/Change Management System", Details: "ServiceNow"},
	}}

	got := Highlights(doc)

	assert.Equal(t, "## Dependencies & External Interfaces\n- Network Infrastructure\n- ITSM/Change Management System: ServiceNow", got)
}

func TestHighlights_CapsTimelineItems(t *testing.T) {
	doc := &document.Document{}
	for i := 0; i < 20; i++ {
		doc.Timeline.Items = append(doc.Timeline.Items, document.TimelineItem{
			Name: fmt.Sprintf("M%02d", i), DurationBD: 1, Start: "2024-01-01", End: "2024-01-02",
		})
	}

	got := Highlights(doc)

	assert.Contains(t, got, "- Staff 0 • Start TBD • Total 0 bd • Completion TBD")
	assert.Contains(t, got, "M14:")
	assert.NotContains(t, got, "M15:")
}

func TestHighlights_SkipsPlaceholders(t *testing.T) {
	doc := &document.Document{Initiative: document.Initiative{Category: domain.SentinelCategory}}
	assert.NotContains(t, Highlights(doc), "Category")
}

func TestMarkdown_RendersAllSections(t *testing.T) {
	doc := sampleDocument()
	doc.Initiative.Author = "Jo"
	doc.Initiative.NoMoveForwardReasons = []string{"We will continue to pay for 3rd party support for this task"}

	got, err := Markdown(doc, time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "# Solution Design: Branch turn-up\n"))
	assert.Contains(t, got, "_Generated 2024-01-02 09:30:00 by Jo_")
	assert.Contains(t, got, "## Highlights\n\n## My Role")
	assert.Contains(t, got, "- We will continue to pay for 3rd party support for this task")
	assert.Contains(t, got, "- **Executive:** CIO\n- **Operations:** NOC")
	assert.Contains(t, got, "This solution targets Network Engineers. Users will interact with the solution via CLI.")
	assert.Contains(t, got, "| Revision Control system | GitHub |")
	assert.Contains(t, got, "- **Total:** 15 business days (about 0.7 months)")
	assert.Contains(t, got, "| Design | 2024-01-08 | 2024-01-22 | 10 | HLD \\| LLD |")
	assert.Contains(t, got, "### Staffing Plan\n\nTwo engineers.")
}

func TestMarkdown_EmptyDocument(t *testing.T) {
	got, err := Markdown(nil, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, got, "# Solution Design: Untitled initiative")
	assert.Contains(t, got, "No stakeholders selected.")
	assert.NotContains(t, got, "## Highlights")
	assert.NotContains(t, got, "| Milestone |")
}

func TestGanttHTML_PlacesBarsOnCalendarAxis(t *testing.T) {
	got, err := GanttHTML(sampleDocument())
	require.NoError(t, err)

	assert.Contains(t, got, "<title>Branch turn-up timeline</title>")
	assert.Contains(t, got, "Holidays: United States")
	// 21 calendar days: Planning covers 7, Design starts on day 7 and covers 14.
	assert.Contains(t, got, "left: 0.00%; width: 33.33%;")
	assert.Contains(t, got, "left: 33.33%; width: 66.67%;")
	assert.Contains(t, got, `title="HLD | LLD"`)
}

func TestGanttHTML_EscapesText(t *testing.T) {
	doc := &document.Document{Initiative: document.Initiative{Title: "<script>x</script>"}}

	got, err := GanttHTML(doc)
	require.NoError(t, err)

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "No milestones scheduled.")
}

func TestEstimateMonths(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{0, 0},
		{-3, 0},
		{15, 0.7},
		{22, 1},
		{87, 4},
		{120, 5.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateMonths(tt.days), "days=%d", tt.days)
	}
}
