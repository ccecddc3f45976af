package report

import (
	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// Line is one "Label: value" row of the report.
type Line struct {
	Label string
	Value string

	// pins marks the pin row; the block projection draws the diagram
	// after it when pins is non-empty.
	pins    []assessment.Pin
	pinsRow bool
}

// Section is the rendered content of one questionnaire section.
type Section struct {
	Key      assessment.SectionKey
	Number   int
	Title    string
	Headline string
	Lines    []Line
}

// Sections returns the report content of snap in questionnaire order.
func Sections(snap *assessment.Snapshot) []Section {
	return []Section{
		painSnapshot(snap.PainSnapshot()),
		painPatterns(snap.PainPatterns()),
		impact(snap.Impact()),
		emotional(snap.Emotional()),
		coping(snap.Coping()),
		goals(snap.PersonalGoals()),
	}
}

func painSnapshot(r assessment.PainSnapshot) Section {
	lines := []Line{
		{Label: "Current Pain Intensity", Value: Rating(r.CurrentPainIntensity)},
		{Label: "Primary Pain Location(s)", Value: List(r.PrimaryPainLocation, &labels.BodyRegions, NoneSelected)},
		{Label: "Pin Locations", Value: Pins(r.PinLocations), pins: r.PinLocations, pinsRow: true},
		{Label: "Pain Descriptors", Value: List(r.PainDescriptors, nil, NoneSelected)},
	}
	if r.OtherPainDescriptor != "" {
		lines = append(lines, Line{Label: "Other Descriptor", Value: r.OtherPainDescriptor})
	}
	return Section{
		Key:      assessment.KeyPainSnapshot,
		Number:   1,
		Title:    "Pain Snapshot",
		Headline: "Section 1: Pain Snapshot",
		Lines:    lines,
	}
}

func painPatterns(r assessment.PainPatternsTriggers) Section {
	return Section{
		Key:      assessment.KeyPainPatterns,
		Number:   2,
		Title:    "Pain Patterns & Triggers",
		Headline: "Section 2: Pain Patterns & Triggers",
		Lines: []Line{
			{Label: "Average Pain (Last 7 Days)", Value: Rating(r.AvgPainLast7Days)},
			{Label: "Worst Pain (Last 7 Days)", Value: Rating(r.WorstPainLast7Days)},
			{Label: "Least Pain (Last 7 Days)", Value: Rating(r.LeastPainLast7Days)},
			{Label: "Pain Worst Time", Value: Enum(labels.TimeOfDay, string(r.PainWorstTime))},
			{Label: "Activities Worsening Pain", Value: TriState(r.ActivitiesWorstPain, r.ActivitiesWorstPainDesc)},
			{Label: "Activities Improving Pain", Value: TriState(r.ActivitiesBetterPain, r.ActivitiesBetterPainDesc)},
		},
	}
}

func impact(r assessment.ImpactDailyLife) Section {
	lines := []Line{{Label: "General Interference", Value: Rating(r.GeneralInterference)}}
	for _, o := range labels.LifeDomains.Options() {
		v, _ := r.SpecificLifeDomains.Domain(o.Value)
		lines = append(lines, Line{Label: o.Label, Value: Rating(v)})
	}
	return Section{
		Key:      assessment.KeyImpact,
		Number:   3,
		Title:    "Impact on Daily Life",
		Headline: "Section 3: Impact on Daily Life",
		Lines:    lines,
	}
}

func emotional(r assessment.EmotionalWellbeing) Section {
	var lines []Line
	for _, o := range labels.Emotions.Options() {
		v, _ := r.EmotionalResponse.Emotion(o.Value)
		lines = append(lines, Line{Label: o.Label, Value: Enum(labels.Likert, string(v))})
	}
	lines = append(lines, Line{Label: "Positive Outlook", Value: Enum(labels.Likert, string(r.PositiveOutlook))})
	return Section{
		Key:      assessment.KeyEmotional,
		Number:   4,
		Title:    "Emotional Well-being & Pain",
		Headline: "Section 4: Emotional Well-being & Pain",
		Lines:    lines,
	}
}

func coping(r assessment.CopingManagement) Section {
	lines := []Line{{Label: "Current Strategies", Value: List(r.CurrentStrategies, nil, NoneSelected)}}
	if r.OtherStrategy != "" {
		lines = append(lines, Line{Label: "Other Strategy", Value: r.OtherStrategy})
	}
	lines = append(lines, Line{Label: "Strategies Rated for Helpfulness", Value: List(r.MainStrategiesToRate, nil, NoneRated)})
	for _, p := range r.MainStrategiesHelpfulness {
		lines = append(lines, Line{Label: `Helpfulness of "` + p.Strategy + `"`, Value: Rating(p.Helpfulness)})
	}
	lines = append(lines, Line{Label: "Confidence in Managing Pain", Value: Rating(r.ConfidenceInManagement)})
	return Section{
		Key:      assessment.KeyCoping,
		Number:   5,
		Title:    "Coping & Management Strategies",
		Headline: "Section 5: Coping & Management Strategies",
		Lines:    lines,
	}
}

func goals(r assessment.PersonalGoalsActionPlanner) Section {
	lines := []Line{
		{Label: "Most Impactful Limitation to Improve", Value: Enum(labels.Limitations, r.MostImpactfulLimitation)},
		{Label: "Small Achievable Goal", Value: FreeText(r.SmallAchievableGoal)},
		{Label: "Support Needed", Value: List(r.SupportNeeded, nil, NoneSelected)},
	}
	if r.OtherSupportNeeded != "" {
		lines = append(lines, Line{Label: "Other Support", Value: r.OtherSupportNeeded})
	}
	return Section{
		Key:      assessment.KeyPersonalGoals,
		Number:   6,
		Title:    "Personal Goals & Action Planning",
		Headline: "Section 6: Personal Pain Goals & Action Planning",
		Lines:    lines,
	}
}
