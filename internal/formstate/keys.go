// Package formstate maps the structured form state to and from the flat
// key/value snapshot used by the questionnaire UI and by snapshot files.
//
// Scalars live under {section}_{field}; each checkbox option under
// {prefix}{option}; free-text overrides under the group's custom and enable
// keys. Uncatalogued selections that cannot be flag keys are listed under
// {prefix}extras.
package formstate

import (
	"strconv"

	"github.com/alexanderramin/nafwizard/internal/catalog"
)

const (
	KeyAuthor                = "_wizard_author"
	KeyTitle                 = "_wizard_automation_title"
	KeyDescription           = "_wizard_automation_description"
	KeyCategory              = "_wizard_category"
	KeyCategoryOther         = "_wizard_category_other"
	KeyProblemStatement      = "_wizard_problem_statement"
	KeyExpectedUse           = "_wizard_expected_use"
	KeyErrorConditions       = "_wizard_error_conditions"
	KeyAssumptions           = "_wizard_assumptions"
	KeyDeployment            = "_wizard_deployment_strategy"
	KeyDeploymentOther       = "_wizard_deployment_strategy_other"
	KeyDeploymentDescription = "_wizard_deployment_strategy_description"
	KeyOutOfScope            = "_wizard_out_of_scope"
	KeyNoMoveForward         = "no_move_forward"
	KeyNoMoveForwardReasons  = "no_move_forward_reasons"

	KeyRoleWho            = "my_role_who"
	KeyRoleWhoOther       = "my_role_who_other"
	KeyRoleSkills         = "my_role_skills"
	KeyRoleSkillsOther    = "my_role_skills_other"
	KeyRoleDeveloper      = "my_role_dev"
	KeyRoleDeveloperOther = "my_role_dev_other"

	KeyStakeholderChoices = "stakeholders_choices"
	KeyStakeholderOther   = "stakeholders_other_text"

	KeyObsGoNoGo         = "obs_go_no_go"
	KeyObsAddLogicChoice = "obs_add_logic_choice"
	KeyObsAddLogicText   = "obs_add_logic_text"

	KeyOrchChoice  = "orch_choice"
	KeyOrchDetails = "orch_details_text"

	KeyCollectorDevices = "collector_devices"
	KeyCollectorMetrics = "collector_metrics"
	KeyCollectorCadence = "collector_cadence"

	DependencyPrefix  = "dep_"
	DependencyDetails = "_details"

	KeyStartDate          = "timeline_start_date"
	KeyBuildBuy           = "timeline_build_buy"
	KeyStaffCount         = "timeline_staff_count"
	KeyExternalStaffCount = "timeline_external_staff_count"
	KeyStaffingPlan       = "timeline_staffing_plan"
	KeyHolidayRegion      = "timeline_holiday_region"
	KeyMilestones         = "timeline_milestones"
)

// reservedSuffixes are never option labels even though their keys share a
// checkbox prefix.
var reservedSuffixes = map[string]bool{
	"custom":        true,
	"custom_enable": true,
	"custom_text":   true,
	"other":         true,
	"other_text":    true,
	"other_enable":  true,
	extrasSuffix:    true,
}

// extrasSuffix names the list of uncatalogued selections that cannot be
// stored as their own flag key: reserved words, and numbers in indexed
// groups.
const extrasSuffix = "extras"

func extrasKey(g catalog.Group) string {
	return g.Prefix + extrasSuffix
}

// flaggable reports whether an uncatalogued selection can be stored as
// prefix+value without colliding with a reserved or positional key.
func flaggable(g catalog.Group, v string) bool {
	if reservedSuffixes[v] {
		return false
	}
	if g.Indexed {
		if _, err := strconv.Atoi(v); err == nil {
			return false
		}
	}
	return true
}
