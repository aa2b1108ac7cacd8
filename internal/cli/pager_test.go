package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/nafwizard/internal/teatest"
	"github.com/stretchr/testify/assert"
)

func pagerContent(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestPager_LoadingUntilSized(t *testing.T) {
	d := teatest.New(t, newPagerModel("Report", pagerContent(3)))
	d.DrainInit()

	assert.Contains(t, d.View(), "loading")
}

func TestPager_ShowsTitleAndFirstPage(t *testing.T) {
	d := teatest.New(t, newPagerModel("Port turn-up", pagerContent(50)), teatest.WithSize(80, 10))
	d.DrainInit()

	view := d.View()
	assert.Contains(t, view, "Port turn-up")
	assert.Contains(t, view, "line 01")
	assert.Contains(t, view, "line 08")
	assert.NotContains(t, view, "line 09")
	assert.Contains(t, view, "[TOP]")
}

func TestPager_ScrollsAndQuits(t *testing.T) {
	d := teatest.New(t, newPagerModel("Report", pagerContent(50)), teatest.WithSize(80, 10))
	d.DrainInit()

	d.PressDown()
	view := d.View()
	assert.NotContains(t, view, "line 01")
	assert.Contains(t, view, "line 09")
	assert.NotContains(t, view, "[TOP]")

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestPager_ShortContentFits(t *testing.T) {
	d := teatest.New(t, newPagerModel("Report", pagerContent(3)), teatest.WithSize(80, 10))

	d.PressDown()
	assert.Contains(t, d.View(), "line 01")
	assert.Contains(t, d.View(), "[TOP]")
}
