package catalog

import "github.com/alexanderramin/nafwizard/internal/domain"

// Role radio catalogs. Each radio also offers domain.OtherRoleMarker.
var (
	RoleWho = []string{
		"I’m a network engineer.",
		"I’m a security engineer.",
		"I’m a software developer.",
		"I manage technical projects or teams.",
	}
	RoleSkills = []string{
		"I have some scripting skills and basic software development experience.",
		"I am an advanced software developer.",
		"I provide techncial management on network and automation projects.",
	}
	RoleDeveloper = []string{
		"I’ll do it myself.",
		"My in-house team and I will build it.",
		"We will have outside experts build it, but I’ll provide technical oversight.",
	}
)

// OrchestrationOptions are the orchestration radio values, without the
// placeholder.
var OrchestrationOptions = []string{
	domain.OrchestrationNo,
	domain.OrchestrationInternal,
	domain.OrchestrationDetails,
}

var BuildBuyOptions = []string{
	domain.DefaultBuildBuy,
	"Build with Professional Services or other external resources (Buy)",
	"Hybrid",
}

// RiskReasons are the standard answers to "what happens if we do not move
// forward".
var RiskReasons = []string{
	"We are not improving the way our customers interact with us for service provisioning",
	"We are not improving the speed and quality of our service provisioning",
	"We are not meeting feature or service demands from our customers",
	"We will continue to pay for 3rd party support for this task",
	"This task will continue to be executed individually in an inconsistent and ad-hoc manner with varying degrees of success and documentation",
	"This task will continue to take far longer than it should resulting in poor customer satisfaction",
	"We risk continuing to add technical debt to the logical infrastructure",
}

// WithOther returns options followed by the marker, unless already present.
func WithOther(options []string, marker string) []string {
	out := append([]string(nil), options...)
	for _, o := range options {
		if o == marker {
			return out
		}
	}
	return append(out, marker)
}
