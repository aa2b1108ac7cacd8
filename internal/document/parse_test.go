package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RejectsNonObject(t *testing.T) {
	for _, input := range []string{`[]`, `"text"`, `42`, `null`} {
		_, _, err := Parse([]byte(input))
		assert.ErrorIs(t, err, ErrNotObject, input)
	}
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	_, _, err := Parse([]byte(`{"initiative": `))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParse_EmptyObject(t *testing.T) {
	doc, issues, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, Document{}, *doc)
}

func TestParse_NullSectionsAreEmpty(t *testing.T) {
	doc, issues, err := Parse([]byte(`{"initiative": null, "stakeholders": null, "timeline": null, "dependencies": null}`))
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "", doc.Initiative.Title)
	assert.Nil(t, doc.Dependencies)
}

func TestParse_CoercesScalars(t *testing.T) {
	input := `{
		"initiative": {"title": 2024, "no_move_forward_reasons": "single reason"},
		"observability": {"selections": {"additional_logic_enabled": "yes", "methods": ["Manual", 7]}},
		"timeline": {"staff_count": "3", "external_staff_count": "many", "items": [
			{"name": "Build", "duration_bd": 4.0},
			"garbage",
			{"name": "Test", "duration_bd": "x"}
		]}
	}`
	doc, issues, err := Parse([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, "2024", doc.Initiative.Title)
	assert.Equal(t, []string{"single reason"}, doc.Initiative.NoMoveForwardReasons)
	assert.True(t, doc.Observability.Selections.AdditionalLogicEnabled)
	assert.Equal(t, []string{"Manual", "7"}, doc.Observability.Selections.Methods)
	assert.Equal(t, 3, doc.Timeline.StaffCount)
	assert.Equal(t, 0, doc.Timeline.ExternalStaffCount)
	require.Len(t, doc.Timeline.Items, 2)
	assert.Equal(t, 4, doc.Timeline.Items[0].DurationBD)
	assert.Equal(t, 0, doc.Timeline.Items[1].DurationBD)

	assert.Len(t, issues, 3)
	assert.Contains(t, issues, "timeline.items[1]: expected object, got string; dropped")
}

func TestParse_WrongSectionTypeFallsBack(t *testing.T) {
	doc, issues, err := Parse([]byte(`{"presentation": "CLI only", "stakeholders": {"choices": ["a"], "other": "x"}}`))
	require.NoError(t, err)

	assert.Equal(t, Presentation{}, doc.Presentation)
	assert.Empty(t, doc.Stakeholders.Choices)
	assert.Equal(t, "x", doc.Stakeholders.Other)
	assert.Len(t, issues, 2)
}

func TestParse_StakeholderValuesStringified(t *testing.T) {
	doc, _, err := Parse([]byte(`{"stakeholders": {"choices": {"Technical Stakeholders": "None", "Odd": null}}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Technical Stakeholders": "None", "Odd": ""}, doc.Stakeholders.Choices)
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	doc, issues, err := Parse([]byte(`{"legacy_section": {"x": 1}, "my_role": {"who": "me", "extra": true}}`))
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "me", doc.MyRole.Who)
}

func TestParse_ProjectedCompletionNull(t *testing.T) {
	doc, _, err := Parse([]byte(`{"timeline": {"projected_completion": null}}`))
	require.NoError(t, err)
	assert.Nil(t, doc.Timeline.ProjectedCompletion)

	doc, _, err = Parse([]byte(`{"timeline": {"projected_completion": "2024-01-22"}}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Timeline.ProjectedCompletion)
	assert.Equal(t, "2024-01-22", *doc.Timeline.ProjectedCompletion)
}

func TestMarshal_RoundTrip(t *testing.T) {
	end := "2024-01-08"
	doc := &Document{
		Initiative:   Initiative{Title: "T", NoMoveForwardReasons: []string{}},
		Dependencies: []Dependency{{Name: "Network Infrastructure"}},
		Timeline: Timeline{
			StartDate:           "2024-01-01",
			ProjectedCompletion: &end,
			Items:               []TimelineItem{{Name: "Planning", DurationBD: 5, Start: "2024-01-01", End: end}},
		},
	}
	data, err := Marshal(doc)
	require.NoError(t, err)

	back, issues, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, doc.Timeline, back.Timeline)
	assert.Equal(t, doc.Dependencies, back.Dependencies)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "naf_report_x.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"initiative": {"title": "Loaded"}}`), 0o644))

	doc, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Loaded", doc.Initiative.Title)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
