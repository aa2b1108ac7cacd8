package domain

// DefaultMilestones is the timeline a fresh session starts with.
func DefaultMilestones() []Milestone {
	return []Milestone{
		{Name: "Planning", DurationBD: 5},
		{Name: "Design", DurationBD: 10},
		{Name: "Build", DurationBD: 10},
		{Name: "Test", DurationBD: 5},
		{Name: "Pilot", DurationBD: 5},
		{Name: "Production Rollout", DurationBD: 10},
	}
}

// DefaultDependencySelections is the dependency set a fresh session starts
// with: network infrastructure plus a GitHub revision control system.
func DefaultDependencySelections() []DependencySelection {
	return []DependencySelection{
		{Key: "network_infra"},
		{Key: "revision_control", Details: DefaultRevisionControl},
	}
}

// NewFormState returns the state of a freshly opened wizard.
func NewFormState() FormState {
	return FormState{
		Initiative: Initiative{
			Title:                DefaultTitle,
			Description:          DefaultDescription,
			ExpectedUse:          DefaultExpectedUse,
			NoMoveForwardReasons: []string{},
		},
		Stakeholders: Stakeholders{Choices: map[string]string{}},
		Dependencies: DefaultDependencySelections(),
		Timeline: Timeline{
			BuildBuy:      DefaultBuildBuy,
			StaffCount:    1,
			HolidayRegion: DefaultHolidayRegion,
			Milestones:    DefaultMilestones(),
		},
	}
}

// EmptyFormState returns a state with no answers at all. Restore starts
// from this so that absent document sections come back empty rather than
// pre-filled.
func EmptyFormState() FormState {
	return FormState{
		Initiative:   Initiative{NoMoveForwardReasons: []string{}},
		Stakeholders: Stakeholders{Choices: map[string]string{}},
		Dependencies: []DependencySelection{},
		Timeline: Timeline{
			BuildBuy:      DefaultBuildBuy,
			HolidayRegion: DefaultHolidayRegion,
			Milestones:    []Milestone{},
		},
	}
}
