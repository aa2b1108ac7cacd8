package document

import (
	"testing"

	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validDocument() *Document {
	end := "2024-01-22"
	return &Document{
		Initiative:   Initiative{Title: "Backup automation", Category: "Configuration Management", NoMoveForwardReasons: []string{}},
		Dependencies: []Dependency{{Name: "Network Infrastructure"}, {Name: "Revision Control system", Details: "GitHub"}},
		Timeline: Timeline{
			StartDate:           "2024-01-01",
			TotalBusinessDays:   15,
			ProjectedCompletion: &end,
			HolidayRegion:       "None",
			Items: []TimelineItem{
				{Name: "Planning", DurationBD: 5, Start: "2024-01-01", End: "2024-01-08"},
				{Name: "Design", DurationBD: 10, Start: "2024-01-08", End: "2024-01-22"},
			},
		},
	}
}

func TestValidate_ValidDocument(t *testing.T) {
	assert.Empty(t, Validate(validDocument()))
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	doc := validDocument()
	doc.Initiative.Category = domain.SentinelCategory
	doc.Initiative.NoMoveForwardReasons = []string{domain.SentinelRisks}
	doc.MyRole.Who = domain.OtherRoleMarker
	doc.Orchestration.Selections.Choice = domain.SentinelSelectOne
	doc.Dependencies = append(doc.Dependencies, Dependency{Name: "Network Infrastructure"}, Dependency{})
	doc.Timeline.StartDate = "01/01/2024"
	doc.Timeline.StaffCount = -1
	doc.Timeline.HolidayRegion = "Atlantis"
	doc.Timeline.Items[1].End = "2024-01-02"
	doc.Timeline.TotalBusinessDays = 99

	errs := Validate(doc)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Contains(t, msgs, `initiative.category: placeholder "— Select a category —" stored as a value`)
	assert.Contains(t, msgs, `my_role.who: "Other (fill in)" stored instead of the free-text answer`)
	assert.Contains(t, msgs, `dependencies[2]: duplicate name "Network Infrastructure"`)
	assert.Contains(t, msgs, `dependencies[3].name is required`)
	assert.Contains(t, msgs, `timeline.start_date: invalid date format "01/01/2024" (expected YYYY-MM-DD)`)
	assert.Contains(t, msgs, `timeline.holiday_region: unknown region "Atlantis"`)
	assert.Contains(t, msgs, `timeline.items[1]: end 2024-01-02 is before start 2024-01-08`)
	assert.Contains(t, msgs, `timeline.total_business_days is 99 but items sum to 15`)
	assert.Contains(t, msgs, `timeline.projected_completion "2024-01-22" does not match last item end "2024-01-02"`)
	assert.Len(t, errs, 12)
}
