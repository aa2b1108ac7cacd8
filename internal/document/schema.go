package document

// Document is the exported wizard JSON, one field per wizard section.
// Narrative fields hold generated sentences; Selections hold the raw values
// a restore needs.
type Document struct {
	Initiative    Initiative    `json:"initiative"`
	MyRole        MyRole        `json:"my_role"`
	Stakeholders  Stakeholders  `json:"stakeholders"`
	Presentation  Presentation  `json:"presentation"`
	Intent        Intent        `json:"intent"`
	Observability Observability `json:"observability"`
	Orchestration Orchestration `json:"orchestration"`
	Collector     Collector     `json:"collector"`
	Executor      Executor      `json:"executor"`
	Dependencies  []Dependency  `json:"dependencies"`
	Timeline      Timeline      `json:"timeline"`
}

type Initiative struct {
	Title                         string   `json:"title"`
	Description                   string   `json:"description"`
	Category                      string   `json:"category"`
	ProblemStatement              string   `json:"problem_statement"`
	ExpectedUse                   string   `json:"expected_use"`
	ErrorConditions               string   `json:"error_conditions"`
	Assumptions                   string   `json:"assumptions"`
	DeploymentStrategy            string   `json:"deployment_strategy"`
	DeploymentStrategyDescription string   `json:"deployment_strategy_description"`
	OutOfScope                    string   `json:"out_of_scope"`
	NoMoveForward                 string   `json:"no_move_forward"`
	NoMoveForwardReasons          []string `json:"no_move_forward_reasons"`
	Author                        string   `json:"author"`
}

type MyRole struct {
	Who       string `json:"who"`
	Skills    string `json:"skills"`
	Developer string `json:"developer"`
}

type Stakeholders struct {
	Choices map[string]string `json:"choices"`
	Other   string            `json:"other"`
}

type Presentation struct {
	Users       string                 `json:"users"`
	Interaction string                 `json:"interaction"`
	Tools       string                 `json:"tools"`
	Auth        string                 `json:"auth"`
	Selections  PresentationSelections `json:"selections"`
}

type PresentationSelections struct {
	Users        []string `json:"users"`
	Interactions []string `json:"interactions"`
	Tools        []string `json:"tools"`
	Auth         []string `json:"auth"`
}

type Intent struct {
	Development string           `json:"development"`
	Provided    string           `json:"provided"`
	Selections  IntentSelections `json:"selections"`
}

type IntentSelections struct {
	Development []string `json:"development"`
	Provided    []string `json:"provided"`
}

type Observability struct {
	Methods         string                  `json:"methods"`
	GoNoGo          string                  `json:"go_no_go"`
	AdditionalLogic string                  `json:"additional_logic"`
	Tools           string                  `json:"tools"`
	Selections      ObservabilitySelections `json:"selections"`
}

type ObservabilitySelections struct {
	Methods                []string `json:"methods"`
	GoNoGoText             string   `json:"go_no_go_text"`
	AdditionalLogicEnabled bool     `json:"additional_logic_enabled"`
	AdditionalLogicText    string   `json:"additional_logic_text"`
	Tools                  []string `json:"tools"`
}

type Orchestration struct {
	Summary    string                  `json:"summary"`
	Selections OrchestrationSelections `json:"selections"`
}

type OrchestrationSelections struct {
	Choice  string `json:"choice"`
	Details string `json:"details"`
}

type Collector struct {
	Methods       string              `json:"methods"`
	Auth          string              `json:"auth"`
	Handling      string              `json:"handling"`
	Normalization string              `json:"normalization"`
	Scale         string              `json:"scale"`
	Tools         string              `json:"tools"`
	Selections    CollectorSelections `json:"selections"`
}

type CollectorSelections struct {
	Methods       []string `json:"methods"`
	Auth          []string `json:"auth"`
	Handling      []string `json:"handling"`
	Normalization []string `json:"normalization"`
	Devices       string   `json:"devices"`
	MetricsPerSec string   `json:"metrics_per_sec"`
	Cadence       string   `json:"cadence"`
	Tools         []string `json:"tools"`
}

type Executor struct {
	Methods    string             `json:"methods"`
	Selections ExecutorSelections `json:"selections"`
}

type ExecutorSelections struct {
	Methods []string `json:"methods"`
}

// Dependency names an external system by its display label (or free text)
// plus optional details.
type Dependency struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

type Timeline struct {
	StartDate           string         `json:"start_date"`
	TotalBusinessDays   int            `json:"total_business_days"`
	ProjectedCompletion *string        `json:"projected_completion"`
	BuildBuy            string         `json:"build_buy"`
	StaffCount          int            `json:"staff_count"`
	ExternalStaffCount  int            `json:"external_staff_count"`
	StaffingPlanMD      string         `json:"staffing_plan_md"`
	HolidayRegion       string         `json:"holiday_region"`
	Items               []TimelineItem `json:"items"`
}

type TimelineItem struct {
	Name       string `json:"name"`
	DurationBD int    `json:"duration_bd"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Notes      string `json:"notes"`
}
