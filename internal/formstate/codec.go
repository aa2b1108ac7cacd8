package formstate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// Snapshot is the flat key/value form state. Absent keys read as their
// zero value; unknown keys are ignored.
type Snapshot map[string]any

type groupBinding struct {
	group catalog.Group
	field func(*domain.FormState) *domain.OptionGroup
}

var groupBindings = []groupBinding{
	{catalog.PresentationUsers, func(s *domain.FormState) *domain.OptionGroup { return &s.Presentation.Users }},
	{catalog.PresentationInteractions, func(s *domain.FormState) *domain.OptionGroup { return &s.Presentation.Interactions }},
	{catalog.PresentationTools, func(s *domain.FormState) *domain.OptionGroup { return &s.Presentation.Tools }},
	{catalog.PresentationAuth, func(s *domain.FormState) *domain.OptionGroup { return &s.Presentation.Auth }},
	{catalog.IntentDevelopment, func(s *domain.FormState) *domain.OptionGroup { return &s.Intent.Development }},
	{catalog.IntentProvided, func(s *domain.FormState) *domain.OptionGroup { return &s.Intent.Provided }},
	{catalog.ObservabilityMethods, func(s *domain.FormState) *domain.OptionGroup { return &s.Observability.Methods }},
	{catalog.ObservabilityTools, func(s *domain.FormState) *domain.OptionGroup { return &s.Observability.Tools }},
	{catalog.CollectorMethods, func(s *domain.FormState) *domain.OptionGroup { return &s.Collector.Methods }},
	{catalog.CollectorAuth, func(s *domain.FormState) *domain.OptionGroup { return &s.Collector.Auth }},
	{catalog.CollectorHandling, func(s *domain.FormState) *domain.OptionGroup { return &s.Collector.Handling }},
	{catalog.CollectorNormalization, func(s *domain.FormState) *domain.OptionGroup { return &s.Collector.Normalization }},
	{catalog.CollectorTools, func(s *domain.FormState) *domain.OptionGroup { return &s.Collector.Tools }},
	{catalog.ExecutorMethods, func(s *domain.FormState) *domain.OptionGroup { return &s.Executor.Methods }},
}

// GroupState returns the field of s that backs checkbox group g, or nil
// when g is not one of the catalog groups.
func GroupState(s *domain.FormState, g catalog.Group) *domain.OptionGroup {
	for _, b := range groupBindings {
		if b.group.ID == g.ID {
			return b.field(s)
		}
	}
	return nil
}

// Decode reads a flat snapshot into a structured form state. Placeholder
// values decode as unanswered.
func Decode(snap Snapshot) domain.FormState {
	s := domain.EmptyFormState()
	get := func(k string) string { return asString(snap[k]) }

	in := &s.Initiative
	in.Author = get(KeyAuthor)
	in.Title = get(KeyTitle)
	in.Description = get(KeyDescription)
	in.Category = decodeChoice(get(KeyCategory), get(KeyCategoryOther))
	in.ProblemStatement = get(KeyProblemStatement)
	in.ExpectedUse = get(KeyExpectedUse)
	in.ErrorConditions = get(KeyErrorConditions)
	in.Assumptions = get(KeyAssumptions)
	in.DeploymentStrategy = decodeChoice(get(KeyDeployment), get(KeyDeploymentOther))
	in.DeploymentDescription = get(KeyDeploymentDescription)
	in.OutOfScope = get(KeyOutOfScope)
	in.NoMoveForward = get(KeyNoMoveForward)
	in.NoMoveForwardReasons = domain.NonBlank(asStrings(snap[KeyNoMoveForwardReasons]))

	s.Role = domain.Role{
		Who:       decodeChoice(get(KeyRoleWho), get(KeyRoleWhoOther)),
		Skills:    decodeChoice(get(KeyRoleSkills), get(KeyRoleSkillsOther)),
		Developer: decodeChoice(get(KeyRoleDeveloper), get(KeyRoleDeveloperOther)),
	}

	s.Stakeholders.Choices = asStringMap(snap[KeyStakeholderChoices])
	s.Stakeholders.Other = get(KeyStakeholderOther)

	for _, b := range groupBindings {
		*b.field(&s) = decodeGroup(snap, b.group)
	}

	s.Observability.GoNoGo = get(KeyObsGoNoGo)
	s.Observability.AdditionalLogicEnabled = get(KeyObsAddLogicChoice) == domain.LogicYes
	s.Observability.AdditionalLogicText = get(KeyObsAddLogicText)

	if c := get(KeyOrchChoice); !domain.IsSentinel(c) {
		s.Orchestration.Choice = c
	}
	s.Orchestration.Details = get(KeyOrchDetails)

	s.Collector.Devices = get(KeyCollectorDevices)
	s.Collector.Metrics = get(KeyCollectorMetrics)
	s.Collector.Cadence = get(KeyCollectorCadence)

	s.Dependencies = decodeDependencies(snap)

	tl := &s.Timeline
	tl.StartDate = asDate(snap[KeyStartDate])
	tl.BuildBuy = domain.TrimmedOr(get(KeyBuildBuy), domain.DefaultBuildBuy)
	tl.StaffCount = domain.NonNegative(asInt(snap[KeyStaffCount]))
	tl.ExternalStaffCount = domain.NonNegative(asInt(snap[KeyExternalStaffCount]))
	tl.StaffingPlan = get(KeyStaffingPlan)
	tl.HolidayRegion = domain.TrimmedOr(get(KeyHolidayRegion), domain.DefaultHolidayRegion)
	for _, rec := range asRecords(snap[KeyMilestones]) {
		dur := rec["duration_bd"]
		if dur == nil {
			dur = rec["duration"]
		}
		tl.Milestones = append(tl.Milestones, domain.Milestone{
			Name:       asString(rec["name"]),
			DurationBD: domain.NonNegative(asInt(dur)),
			Notes:      asString(rec["notes"]),
		})
	}
	return s
}

// decodeChoice treats a value that is neither a placeholder nor empty as
// the selection; the paired free text is kept as-is.
func decodeChoice(selected, other string) domain.Choice {
	if strings.TrimSpace(selected) == "" || domain.IsSentinel(selected) {
		return domain.Choice{}
	}
	c := domain.Choice{Selected: selected}
	if selected == domain.OtherMarker || selected == domain.OtherRoleMarker {
		c.Other = other
	}
	return c
}

// decodeGroup collects ticked options. Catalog options keep catalog order;
// uncatalogued keys under the prefix become Extra, sorted by key.
func decodeGroup(snap Snapshot, g catalog.Group) domain.OptionGroup {
	og := domain.OptionGroup{Selected: []string{}, Extra: []string{}}
	known := make(map[string]bool, len(g.Options))
	for i, opt := range g.Options {
		key := optionKey(g, i, opt)
		known[key] = true
		if asBool(snap[key]) {
			og.Selected = append(og.Selected, opt)
		}
	}

	extra := map[string]bool{}
	for key, v := range snap {
		if !strings.HasPrefix(key, g.Prefix) || known[key] || key == g.CustomKey || key == g.EnableKey {
			continue
		}
		suffix := strings.TrimPrefix(key, g.Prefix)
		// Out-of-range positions of indexed groups have no label to restore.
		if suffix == "" || !flaggable(g, suffix) || !asBool(v) {
			continue
		}
		extra[suffix] = true
	}
	og.Extra = append(og.Extra, sortedKeys(extra)...)
	for _, v := range asStrings(snap[extrasKey(g)]) {
		if v = strings.TrimSpace(v); v != "" && !extra[v] {
			extra[v] = true
			og.Extra = append(og.Extra, v)
		}
	}

	if g.HasCustom() {
		og.Custom = asString(snap[g.CustomKey])
		og.CustomEnabled = asBool(snap[g.EnableKey])
	}
	return og
}

func optionKey(g catalog.Group, index int, option string) string {
	if g.Indexed {
		return g.Prefix + strconv.Itoa(index)
	}
	return g.Prefix + option
}

// decodeDependencies returns ticked dependencies: catalog keys in catalog
// order, then unknown keys sorted.
func decodeDependencies(snap Snapshot) []domain.DependencySelection {
	ticked := map[string]bool{}
	for key, v := range snap {
		if !strings.HasPrefix(key, DependencyPrefix) || strings.HasSuffix(key, DependencyDetails) {
			continue
		}
		if asBool(v) {
			ticked[strings.TrimPrefix(key, DependencyPrefix)] = true
		}
	}

	out := []domain.DependencySelection{}
	add := func(key string) {
		out = append(out, domain.DependencySelection{
			Key:     key,
			Details: asString(snap[DependencyPrefix+key+DependencyDetails]),
		})
		delete(ticked, key)
	}
	for _, key := range catalog.DependencyKeys() {
		if ticked[key] {
			add(key)
		}
	}
	for _, key := range sortedKeys(ticked) {
		add(key)
	}
	return out
}

// Encode writes a form state as a flat snapshot. Every catalog checkbox is
// written so that loading the snapshot fully overwrites the form.
// Unanswered choices are written as their placeholder.
func Encode(s domain.FormState) Snapshot {
	snap := Snapshot{}
	in := s.Initiative
	snap[KeyAuthor] = in.Author
	snap[KeyTitle] = in.Title
	snap[KeyDescription] = in.Description
	encodeChoice(snap, KeyCategory, KeyCategoryOther, in.Category, domain.SentinelCategory)
	snap[KeyProblemStatement] = in.ProblemStatement
	snap[KeyExpectedUse] = in.ExpectedUse
	snap[KeyErrorConditions] = in.ErrorConditions
	snap[KeyAssumptions] = in.Assumptions
	encodeChoice(snap, KeyDeployment, KeyDeploymentOther, in.DeploymentStrategy, domain.SentinelDeployment)
	snap[KeyDeploymentDescription] = in.DeploymentDescription
	snap[KeyOutOfScope] = in.OutOfScope
	snap[KeyNoMoveForward] = in.NoMoveForward
	reasons := domain.NonBlank(in.NoMoveForwardReasons)
	if len(reasons) == 0 {
		reasons = []string{domain.SentinelRisks}
	}
	snap[KeyNoMoveForwardReasons] = reasons

	encodeChoice(snap, KeyRoleWho, KeyRoleWhoOther, s.Role.Who, domain.SentinelSelectOne)
	encodeChoice(snap, KeyRoleSkills, KeyRoleSkillsOther, s.Role.Skills, domain.SentinelSelectOne)
	encodeChoice(snap, KeyRoleDeveloper, KeyRoleDeveloperOther, s.Role.Developer, domain.SentinelSelectOne)

	choices := make(map[string]any, len(s.Stakeholders.Choices))
	for k, v := range s.Stakeholders.Choices {
		choices[k] = v
	}
	snap[KeyStakeholderChoices] = choices
	snap[KeyStakeholderOther] = s.Stakeholders.Other

	for _, b := range groupBindings {
		encodeGroup(snap, b.group, *b.field(&s))
	}

	snap[KeyObsGoNoGo] = s.Observability.GoNoGo
	if s.Observability.AdditionalLogicEnabled {
		snap[KeyObsAddLogicChoice] = domain.LogicYes
	} else {
		snap[KeyObsAddLogicChoice] = domain.LogicNo
	}
	snap[KeyObsAddLogicText] = s.Observability.AdditionalLogicText

	snap[KeyOrchChoice] = domain.TrimmedOr(s.Orchestration.Choice, domain.SentinelSelectOne)
	snap[KeyOrchDetails] = s.Orchestration.Details

	snap[KeyCollectorDevices] = s.Collector.Devices
	snap[KeyCollectorMetrics] = s.Collector.Metrics
	snap[KeyCollectorCadence] = s.Collector.Cadence

	ticked := map[string]bool{}
	for _, d := range s.Dependencies {
		key := strings.TrimSpace(d.Key)
		if key == "" {
			continue
		}
		ticked[key] = true
		snap[DependencyPrefix+key] = true
		snap[DependencyPrefix+key+DependencyDetails] = d.Details
	}
	for _, key := range catalog.DependencyKeys() {
		if !ticked[key] {
			snap[DependencyPrefix+key] = false
		}
	}

	tl := s.Timeline
	if tl.StartDate != nil {
		snap[KeyStartDate] = tl.StartDate.Format(scheduler.DateLayout)
	}
	snap[KeyBuildBuy] = tl.BuildBuy
	snap[KeyStaffCount] = tl.StaffCount
	snap[KeyExternalStaffCount] = tl.ExternalStaffCount
	snap[KeyStaffingPlan] = tl.StaffingPlan
	snap[KeyHolidayRegion] = tl.HolidayRegion
	rows := make([]any, 0, len(tl.Milestones))
	for _, m := range tl.Milestones {
		rows = append(rows, map[string]any{
			"name":        m.Name,
			"duration_bd": m.DurationBD,
			"notes":       m.Notes,
		})
	}
	snap[KeyMilestones] = rows
	return snap
}

// encodeChoice always writes the override key so that merging the snapshot
// over older answers clears a stale override.
func encodeChoice(snap Snapshot, key, otherKey string, c domain.Choice, placeholder string) {
	snap[otherKey] = ""
	if !c.IsSet() {
		snap[key] = placeholder
		return
	}
	snap[key] = c.Selected
	if c.Selected == domain.OtherMarker || c.Selected == domain.OtherRoleMarker {
		snap[otherKey] = c.Other
	}
}

func encodeGroup(snap Snapshot, g catalog.Group, og domain.OptionGroup) {
	for i, opt := range g.Options {
		snap[optionKey(g, i, opt)] = og.Has(opt)
	}
	tail := append([]string(nil), og.Extra...)
	for _, v := range og.Selected {
		if !g.Contains(v) {
			tail = append(tail, v)
		}
	}
	var listed []string
	for _, v := range tail {
		v = strings.TrimSpace(v)
		switch {
		case v == "":
		case flaggable(g, v):
			snap[g.Prefix+v] = true
		default:
			listed = append(listed, v)
		}
	}
	if len(listed) > 0 {
		snap[extrasKey(g)] = listed
	}
	if g.HasCustom() {
		snap[g.CustomKey] = og.Custom
		snap[g.EnableKey] = og.CustomEnabled
	}
}

// Keys returns the snapshot's keys sorted, for stable listings.
func (s Snapshot) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
