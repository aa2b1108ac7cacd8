package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/cli/formatter"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
	"github.com/alexanderramin/nafwizard/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// milestoneFlag collects repeated --milestone name:days[:notes] values.
type milestoneFlag struct {
	items []domain.Milestone
}

var _ pflag.Value = (*milestoneFlag)(nil)

func (f *milestoneFlag) String() string {
	parts := make([]string, 0, len(f.items))
	for _, m := range f.items {
		parts = append(parts, formatMilestone(m))
	}
	return strings.Join(parts, ",")
}

func (f *milestoneFlag) Set(v string) error {
	m, err := parseMilestone(v)
	if err != nil {
		return err
	}
	f.items = append(f.items, m)
	return nil
}

func (f *milestoneFlag) Type() string { return "name:days[:notes]" }

type scheduleJSON struct {
	Start               string             `json:"start_date"`
	Region              string             `json:"holiday_region"`
	TotalBusinessDays   int                `json:"total_business_days"`
	ProjectedCompletion *string            `json:"projected_completion"`
	EstimateMonths      float64            `json:"estimate_months"`
	Items               []scheduleItemJSON `json:"items"`
	Holidays            []scheduleHoliday  `json:"holidays"`
}

type scheduleItemJSON struct {
	Name       string `json:"name"`
	DurationBD int    `json:"duration_bd"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Notes      string `json:"notes"`
}

type scheduleHoliday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func toScheduleJSON(res *service.ScheduleResult) scheduleJSON {
	out := scheduleJSON{
		Start:             res.Plan.Start.Format(scheduler.DateLayout),
		Region:            res.Region,
		TotalBusinessDays: res.Plan.TotalBusinessDays,
		EstimateMonths:    res.EstimateMonths,
		Items:             []scheduleItemJSON{},
		Holidays:          []scheduleHoliday{},
	}
	if res.Plan.ProjectedCompletion != nil {
		s := res.Plan.ProjectedCompletion.Format(scheduler.DateLayout)
		out.ProjectedCompletion = &s
	}
	for _, it := range res.Plan.Items {
		out.Items = append(out.Items, scheduleItemJSON{
			Name:       it.Name,
			DurationBD: it.DurationBD,
			Start:      it.Start.Format(scheduler.DateLayout),
			End:        it.End.Format(scheduler.DateLayout),
			Notes:      it.Notes,
		})
	}
	for _, h := range res.Holidays {
		out.Holidays = append(out.Holidays, scheduleHoliday{Date: h.Date.Format(scheduler.DateLayout), Name: h.Name})
	}
	return out
}

func newScheduleCmd(app *App) *cobra.Command {
	var (
		start, region, from string
		milestones          milestoneFlag
		asJSON              bool
	)

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Lay milestones out on the business-day calendar",
		Long:    "Schedule places milestones end to end from the start date, skipping weekends and the holidays of the chosen region. Milestones come from --milestone flags, then from --from STATE_FILE, then from the default plan.",
		Example: `  nafwizard schedule --start 2024-07-01 --region "United States" --milestone Design:10 --milestone "Build:15:two sprints"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.ScheduleRequest{StartDate: start, HolidayRegion: region, Milestones: milestones.items}

			if from != "" {
				snap, err := loadSnapshot(cmd, from)
				if err != nil {
					return err
				}
				tl := formstate.Decode(snap).Timeline
				if req.StartDate == "" && tl.StartDate != nil {
					req.StartDate = tl.StartDate.Format(scheduler.DateLayout)
				}
				if req.HolidayRegion == "" {
					req.HolidayRegion = tl.HolidayRegion
				}
				if len(req.Milestones) == 0 {
					req.Milestones = tl.Milestones
				}
			}
			if len(req.Milestones) == 0 {
				req.Milestones = domain.DefaultMilestones()
			}

			res, err := app.Wizard.Schedule(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(toScheduleJSON(res), "", "  ")
				if err != nil {
					return err
				}
				return writeOutput(cmd, "", append(data, '\n'))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.Dim("Region: "+res.Region))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(res.Plan, res.Holidays, res.EstimateMonths))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&region, "region", "", "Holiday region (default None)")
	cmd.Flags().Var(&milestones, "milestone", "Milestone as name:days[:notes]; repeatable")
	cmd.Flags().StringVar(&from, "from", "", "Read start date, region and milestones from a saved form state")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}
