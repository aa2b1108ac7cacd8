package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/nafwizard/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func day(s string) time.Time {
	d, err := scheduler.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatSchedule_Golden_TwoMilestones(t *testing.T) {
	done := day("2024-01-12")
	plan := scheduler.Plan{
		Start: day("2024-01-02"),
		Items: []scheduler.ScheduledMilestone{
			{Name: "Planning", DurationBD: 5, Notes: "kickoff", Start: day("2024-01-02"), End: day("2024-01-09")},
			{Name: "Build", DurationBD: 3, Start: day("2024-01-09"), End: day("2024-01-12")},
		},
		TotalBusinessDays:   8,
		ProjectedCompletion: &done,
	}
	holidays := []scheduler.Holiday{{Date: day("2024-01-15"), Name: "Martin Luther King Jr. Day"}}

	goldenTest(t, "schedule_two_milestones", FormatSchedule(plan, holidays, 0.4))
}

func TestFormatSchedule_Golden_Empty(t *testing.T) {
	plan := scheduler.Plan{Start: day("2024-03-04"), Items: []scheduler.ScheduledMilestone{}}

	goldenTest(t, "schedule_empty", FormatSchedule(plan, nil, 0))
}
