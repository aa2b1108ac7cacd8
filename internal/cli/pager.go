package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pagerChrome is the number of lines used by the title and status bars.
const pagerChrome = 2

var pagerQuitKeys = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))

// pagerModel shows a rendered report in a scrollable viewport.
type pagerModel struct {
	title    string
	content  string
	vp       viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := max(msg.Height-pagerChrome, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, h)
			m.vp.MouseWheelEnabled = true
			m.vp.SetContent(m.content)
			m.ready = true
			return m, nil
		}
		m.vp.Width = msg.Width
		m.vp.Height = h
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, pagerQuitKeys) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return formatter.Dim("loading…")
	}
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(scrollIndicator(m.vp) + "  " + formatter.Dim("q to quit"))
	return b.String()
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}

// runPager blocks until the user leaves the pager.
func runPager(in io.Reader, out io.Writer, title, content string) error {
	p := tea.NewProgram(newPagerModel(title, content),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}
