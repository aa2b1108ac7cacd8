package wizard

import (
	"testing"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHasAnyContent_FreshSessionIsEmpty(t *testing.T) {
	doc := newTestBuilder().Build(domain.NewFormState())
	assert.False(t, HasAnyContent(doc))
	assert.False(t, HasAnyContent(nil))
}

func TestHasAnyContent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.FormState)
	}{
		{"title changed", func(s *domain.FormState) { s.Initiative.Title = "Backup configs" }},
		{"problem statement", func(s *domain.FormState) { s.Initiative.ProblemStatement = "manual backups" }},
		{"users ticked", func(s *domain.FormState) { s.Presentation.Users.Selected = []string{"IT"} }},
		{"orchestration answered", func(s *domain.FormState) { s.Orchestration.Choice = domain.OrchestrationNo }},
		{"role answered", func(s *domain.FormState) { s.Role.Who = domain.Choice{Selected: "I’m a network engineer."} }},
		{"dependency added", func(s *domain.FormState) {
			s.Dependencies = append(s.Dependencies, domain.DependencySelection{Key: "itsm"})
		}},
		{"staffing plan", func(s *domain.FormState) { s.Timeline.StaffingPlan = "two engineers" }},
		{"stakeholder picked", func(s *domain.FormState) {
			s.Stakeholders.Choices["Technical Stakeholders"] = "Network Engineering team"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewFormState()
			tt.mutate(&s)
			assert.True(t, HasAnyContent(newTestBuilder().Build(s)))
		})
	}
}

func TestHasAnyContent_DefaultDependenciesReordered(t *testing.T) {
	doc := newTestBuilder().Build(domain.NewFormState())
	doc.Dependencies = []document.Dependency{doc.Dependencies[1], doc.Dependencies[0]}
	assert.False(t, HasAnyContent(doc))
}
