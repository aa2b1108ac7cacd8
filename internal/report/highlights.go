// Package report renders a wizard document for people: the highlights
// summary, the full solution design document and the timeline chart.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/wizard"
)

// MaxHighlightItems caps the milestone rows listed in the highlights.
const MaxHighlightItems = 15

func meaningful(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !domain.IsSentinel(v)
}

// section renders "## title" followed by its non-empty lines, or "" when
// there are none.
func section(title string, lines []string) string {
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return "## " + title + "\n" + strings.Join(kept, "\n") + "\n\n"
}

func bullets(vals ...string) []string {
	var out []string
	for _, v := range vals {
		if meaningful(v) {
			out = append(out, "- "+v)
		}
	}
	return out
}

func labeled(label, v string) string {
	if !meaningful(v) {
		return ""
	}
	return "- " + label + ": " + strings.TrimSpace(v)
}

// Highlights is the concise markdown summary of a document. Values equal to
// a fresh wizard's defaults are left out.
func Highlights(doc *document.Document) string {
	if doc == nil {
		return ""
	}
	var b strings.Builder

	r := doc.MyRole
	b.WriteString(section("My Role", []string{
		labeled("Who", r.Who),
		labeled("Skills", r.Skills),
		labeled("Developer", r.Developer),
	}))

	in := doc.Initiative
	var initLines []string
	if t := strings.TrimSpace(in.Title); t != domain.DefaultTitle {
		initLines = append(initLines, labeled("Title", t))
	}
	if d := strings.TrimSpace(in.Description); d != domain.DefaultDescription {
		initLines = append(initLines, labeled("Scope", d))
	}
	initLines = append(initLines,
		labeled("Category", in.Category),
		labeled("Deployment strategy", in.DeploymentStrategy),
		labeled("Out of scope", in.OutOfScope),
	)
	b.WriteString(section("Initiative", initLines))

	b.WriteString(section("Stakeholders", stakeholderLines(doc.Stakeholders)))

	p := doc.Presentation
	b.WriteString(section("Presentation", bullets(p.Users, p.Interaction, p.Tools, p.Auth)))
	b.WriteString(section("Intent", bullets(doc.Intent.Development, doc.Intent.Provided)))
	o := doc.Observability
	b.WriteString(section("Observability", bullets(o.Methods, o.GoNoGo, o.AdditionalLogic, o.Tools)))
	b.WriteString(section("Orchestration", bullets(doc.Orchestration.Summary)))
	c := doc.Collector
	b.WriteString(section("Collector", bullets(c.Methods, c.Auth, c.Handling, c.Normalization, c.Scale, c.Tools)))
	b.WriteString(section("Executor", bullets(doc.Executor.Methods)))

	if !wizard.IsDefaultDependencies(doc.Dependencies) {
		var lines []string
		for _, d := range doc.Dependencies {
			name := strings.TrimSpace(d.Name)
			if name == "" {
				continue
			}
			if details := strings.TrimSpace(d.Details); details != "" {
				name += ": " + details
			}
			lines = append(lines, "- "+name)
		}
		b.WriteString(section("Dependencies & External Interfaces", lines))
	}

	tl := doc.Timeline
	if len(tl.Items) > 0 {
		lines := []string{fmt.Sprintf("- Staff %d • Start %s • Total %d bd • Completion %s",
			tl.StaffCount, orTBD(tl.StartDate), tl.TotalBusinessDays, orTBD(completion(tl)))}
		for i, it := range tl.Items {
			if i == MaxHighlightItems {
				break
			}
			lines = append(lines, fmt.Sprintf("  - %s: %s → %s (%d bd)", it.Name, it.Start, it.End, it.DurationBD))
		}
		b.WriteString(section("Staffing, Timeline, & Milestones", lines))
	}
	if plan := strings.TrimSpace(tl.StaffingPlanMD); plan != "" {
		b.WriteString("## Staffing Plan\n" + plan + "\n")
	}

	return strings.TrimSpace(b.String())
}

func stakeholderLines(s document.Stakeholders) []string {
	names := make([]string, 0, len(s.Choices))
	for k := range s.Choices {
		names = append(names, k)
	}
	sort.Strings(names)
	var lines []string
	for _, k := range names {
		lines = append(lines, labeled(k, s.Choices[k]))
	}
	return append(lines, labeled("Other", s.Other))
}

func orTBD(v string) string {
	if strings.TrimSpace(v) == "" {
		return "TBD"
	}
	return v
}

func completion(tl document.Timeline) string {
	if tl.ProjectedCompletion == nil {
		return ""
	}
	return *tl.ProjectedCompletion
}
