package domain

// Placeholder strings shown by single-choice widgets before the user answers.
// They mean "unset" and are never stored in a document.
const (
	SentinelSelectOne      = "— Select one —"
	SentinelCategory       = "— Select a category —"
	SentinelDeployment     = "— Select a deployment strategy —"
	SentinelRisks          = "— Select one or more risks —"
	OtherRoleMarker        = "Other (fill in)"
	OtherMarker            = "Other"
	UnnamedMilestone       = "(Unnamed)"
	DefaultTitle           = "My new network automation project"
	DefaultDescription     = "Here is a short description of my new network automation project"
	DefaultExpectedUse     = "This automation will be used whenever this task needs to be executed."
	DefaultBuildBuy        = "Build In-House"
	DefaultHolidayRegion   = "None"
	DefaultRevisionControl = "GitHub"
)

// IsSentinel reports whether v is one of the placeholder strings.
func IsSentinel(v string) bool {
	switch v {
	case SentinelSelectOne, SentinelCategory, SentinelDeployment, SentinelRisks:
		return true
	}
	return false
}

type ClassKind int

const (
	// Unset means the value is empty; nothing was chosen.
	Unset ClassKind = iota
	Known
	Custom
)

func (k ClassKind) String() string {
	switch k {
	case Known:
		return "known"
	case Custom:
		return "custom"
	default:
		return "unset"
	}
}

// AdditionalLogic values for the observability gating radio.
const (
	LogicNo  = "No"
	LogicYes = "Yes"
)

// Orchestration radio values.
const (
	OrchestrationNo       = "No"
	OrchestrationInternal = "Yes – internal via custom scripts and logic"
	OrchestrationDetails  = "Yes – provide details"
)
