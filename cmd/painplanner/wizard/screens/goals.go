package screens

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// GoalsScreen helps plan one small step for the coming week.
type GoalsScreen struct {
	*FormScreen
	record   func() assessment.PersonalGoalsActionPlanner
	dispatch assessment.Dispatch

	limitation string
	goal       string
	support    []string
	other      string
}

// NewGoalsScreen creates the section 6 screen
func NewGoalsScreen(title string, record func() assessment.PersonalGoalsActionPlanner, dispatch assessment.Dispatch) *GoalsScreen {
	r := record()
	s := &GoalsScreen{
		record:     record,
		dispatch:   dispatch,
		limitation: r.MostImpactfulLimitation,
		goal:       r.SmallAchievableGoal,
		support:    slices.Clone(r.SupportNeeded),
		other:      r.OtherSupportNeeded,
	}

	s.FormScreen = newFormScreen(title, s.sync,
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(assessment.MostImpactfulLimitation.Key()).
				Title("PPGA1: Thinking about Section 3 (Impact on Daily Life), which one area is pain impacting the most that you'd like to see improve?").
				Options(enumOptions(labels.Limitations)...).
				Value(&s.limitation),
		),
		huh.NewGroup(
			huh.NewText().
				Key(assessment.SmallAchievableGoal.Key()).
				Title("PPGA2: What is one small, specific thing you could try to do in the next week related to managing your pain or improving an activity limited by pain?").
				Description("This is for your own reflection and planning").
				Placeholder("e.g. walk for 10 minutes after lunch on 3 days").
				Lines(3).
				Value(&s.goal),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key(assessment.SupportNeeded.Key()).
				Title("PPGA3: What kind of support, if any, would help you achieve this goal or manage your pain better?").
				Options(tableOptions(labels.SupportNeeds)...).
				Value(&s.support),
		),
		huh.NewGroup(
			huh.NewInput().
				Key(assessment.OtherSupportNeeded.Key()).
				Title("Please specify:").
				Placeholder("Other support").
				Value(&s.other),
		).WithHideFunc(func() bool {
			return !slices.Contains(s.support, labels.OtherOption)
		}),
	)
	return s
}

// Update implements tea.Model
func (s *GoalsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

func (s *GoalsScreen) sync() {
	r := s.record()
	var ms []assessment.Mutation

	if s.limitation != r.MostImpactfulLimitation {
		ms = append(ms, assessment.Set(assessment.MostImpactfulLimitation, s.limitation))
	}
	if s.goal != r.SmallAchievableGoal {
		ms = append(ms, assessment.Set(assessment.SmallAchievableGoal, s.goal))
	}
	if !slices.Equal(s.support, r.SupportNeeded) {
		ms = append(ms, assessment.Set(assessment.SupportNeeded, cloneList(s.support)))
	}
	if s.other != r.OtherSupportNeeded {
		ms = append(ms, assessment.Set(assessment.OtherSupportNeeded, s.other))
	}

	if len(ms) > 0 {
		s.dispatch(ms...)
	}
}
