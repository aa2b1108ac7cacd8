package api

import (
	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/wizard"
)

type warningJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type restoreResponse struct {
	Snapshot formstate.Snapshot `json:"snapshot"`
	Warnings []warningJSON      `json:"warnings"`
	Issues   []string           `json:"issues"`
}

type scheduleItemJSON struct {
	Name       string `json:"name"`
	DurationBD int    `json:"duration_bd"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Notes      string `json:"notes"`
}

type holidayJSON struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type scheduleResponse struct {
	StartDate           string             `json:"start_date"`
	HolidayRegion       string             `json:"holiday_region"`
	TotalBusinessDays   int                `json:"total_business_days"`
	ProjectedCompletion *string            `json:"projected_completion"`
	EstimateMonths      float64            `json:"estimate_months"`
	Items               []scheduleItemJSON `json:"items"`
	Holidays            []holidayJSON      `json:"holidays"`
}

type groupJSON struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
	Custom  bool     `json:"custom"`
}

type catalogResponse struct {
	Categories           []catalog.Entry               `json:"categories"`
	DeploymentStrategies []catalog.Entry               `json:"deployment_strategies"`
	Stakeholders         []catalog.StakeholderCategory `json:"stakeholders"`
	Dependencies         []catalog.Dependency          `json:"dependencies"`
	Groups               []groupJSON                   `json:"groups"`
	HolidayRegions       []string                      `json:"holiday_regions"`
	RiskReasons          []string                      `json:"risk_reasons"`
}

type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
	Issues []string `json:"issues"`
}

func toWarnings(ws []wizard.Warning) []warningJSON {
	out := make([]warningJSON, 0, len(ws))
	for _, w := range ws {
		out = append(out, warningJSON{Field: w.Field, Message: w.Message})
	}
	return out
}

func nonNil(vals []string) []string {
	if vals == nil {
		return []string{}
	}
	return vals
}
