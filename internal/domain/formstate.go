package domain

import "time"

// FormState is one snapshot of everything the user has entered in the
// wizard, grouped by section. It is a plain value: builders read it and
// restorers return a fresh one.
type FormState struct {
	Initiative    Initiative
	Role          Role
	Stakeholders  Stakeholders
	Presentation  Presentation
	Intent        Intent
	Observability Observability
	Orchestration Orchestration
	Collector     Collector
	Executor      Executor
	Dependencies  []DependencySelection
	Timeline      Timeline
}

type Initiative struct {
	Author                string
	Title                 string
	Description           string
	Category              Choice
	ProblemStatement      string
	ExpectedUse           string
	ErrorConditions       string
	Assumptions           string
	DeploymentStrategy    Choice
	DeploymentDescription string
	OutOfScope            string
	NoMoveForward         string
	NoMoveForwardReasons  []string
}

// Role answers "who are you" style questions; each radio offers an
// "Other (fill in)" entry.
type Role struct {
	Who       Choice
	Skills    Choice
	Developer Choice
}

// Stakeholders maps a stakeholder category to the chosen group. Category
// names are kept exactly as entered.
type Stakeholders struct {
	Choices map[string]string
	Other   string
}

type Presentation struct {
	Users        OptionGroup
	Interactions OptionGroup
	Tools        OptionGroup
	Auth         OptionGroup
}

type Intent struct {
	Development OptionGroup
	Provided    OptionGroup
}

type Observability struct {
	Methods                OptionGroup
	Tools                  OptionGroup
	GoNoGo                 string
	AdditionalLogicEnabled bool
	AdditionalLogicText    string
}

// Orchestration holds the radio value ("" when unanswered) and the free
// text used by the "provide details" answer.
type Orchestration struct {
	Choice  string
	Details string
}

type Collector struct {
	Methods       OptionGroup
	Auth          OptionGroup
	Handling      OptionGroup
	Normalization OptionGroup
	Tools         OptionGroup
	Devices       string
	Metrics       string
	Cadence       string
}

type Executor struct {
	Methods OptionGroup
}

// DependencySelection is a ticked dependency checkbox. Key is the catalog
// key (network_infra, itsm, ...); unknown keys are carried as-is.
type DependencySelection struct {
	Key     string
	Details string
}

type Timeline struct {
	// StartDate is nil when the user has not picked one.
	StartDate          *time.Time
	BuildBuy           string
	StaffCount         int
	ExternalStaffCount int
	StaffingPlan       string
	HolidayRegion      string
	Milestones         []Milestone
}

// Milestone is one row of the timeline editor. Position in the list is
// its identity.
type Milestone struct {
	Name       string `json:"name"`
	DurationBD int    `json:"duration_bd"`
	Notes      string `json:"notes"`
}
