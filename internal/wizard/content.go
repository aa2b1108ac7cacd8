package wizard

import (
	"strings"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
)

// HasAnyContent reports whether a document says anything beyond what a
// freshly opened wizard would produce. Exports and report previews are
// gated on it.
func HasAnyContent(doc *document.Document) bool {
	if doc == nil {
		return false
	}
	narratives := []string{
		doc.Presentation.Users, doc.Presentation.Interaction, doc.Presentation.Tools, doc.Presentation.Auth,
		doc.Intent.Development, doc.Intent.Provided,
		doc.Observability.Methods, doc.Observability.GoNoGo, doc.Observability.AdditionalLogic, doc.Observability.Tools,
		doc.Orchestration.Summary,
		doc.Collector.Methods, doc.Collector.Auth, doc.Collector.Handling, doc.Collector.Normalization,
		doc.Collector.Scale, doc.Collector.Tools,
		doc.Executor.Methods,
		doc.MyRole.Who, doc.MyRole.Skills, doc.MyRole.Developer,
		doc.Stakeholders.Other,
	}
	for _, n := range narratives {
		if strings.TrimSpace(n) != "" {
			return true
		}
	}
	for _, v := range doc.Stakeholders.Choices {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	if initiativeHasContent(doc.Initiative) {
		return true
	}
	if len(doc.Dependencies) > 0 && !IsDefaultDependencies(doc.Dependencies) {
		return true
	}
	return strings.TrimSpace(doc.Timeline.StaffingPlanMD) != ""
}

func initiativeHasContent(in document.Initiative) bool {
	if t := strings.TrimSpace(in.Title); t != "" && t != domain.DefaultTitle {
		return true
	}
	if d := strings.TrimSpace(in.Description); d != "" && d != domain.DefaultDescription {
		return true
	}
	if e := strings.TrimSpace(in.ExpectedUse); e != "" && e != domain.DefaultExpectedUse {
		return true
	}
	for _, v := range []string{
		in.Category, in.ProblemStatement, in.ErrorConditions, in.Assumptions,
		in.DeploymentStrategy, in.DeploymentStrategyDescription, in.OutOfScope,
		in.NoMoveForward, in.Author,
	} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return len(in.NoMoveForwardReasons) > 0
}
