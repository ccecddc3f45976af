package screens

import (
	"fmt"
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// CopingScreen asks which strategies were used and how helpful the main
// ones were. Up to three strategies can be rated; each gets its own
// helpfulness slot.
type CopingScreen struct {
	*FormScreen
	record   func() assessment.CopingManagement
	dispatch assessment.Dispatch

	current    []string
	other      string
	toRate     []string
	help       [assessment.MaxStrategiesToRate]int
	confidence int
}

// NewCopingScreen creates the section 5 screen
func NewCopingScreen(title string, record func() assessment.CopingManagement, dispatch assessment.Dispatch) *CopingScreen {
	r := record()
	s := &CopingScreen{
		record:     record,
		dispatch:   dispatch,
		current:    slices.Clone(r.CurrentStrategies),
		other:      r.OtherStrategy,
		confidence: ratingValue(r.ConfidenceInManagement),
	}
	s.loadRated(r)

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key(assessment.CurrentStrategies.Key()).
				Title("CMS1: What have you used or done to manage your pain (over past 7 days)?").
				Options(tableOptions(labels.CopingStrategies)...).
				Value(&s.current),
		),
		huh.NewGroup(
			huh.NewInput().
				Key(assessment.OtherStrategy.Key()).
				Title("Please specify:").
				Placeholder("Other strategy").
				Value(&s.other),
		).WithHideFunc(func() bool {
			return !slices.Contains(s.current, labels.OtherOption)
		}),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key(assessment.MainStrategiesToRate.Key()).
				Title("CMS2: Perceived Helpfulness of Main Strategies").
				Description("Select strategies to rate (up to 3):").
				OptionsFunc(s.rateableOptions, &s.current).
				Limit(assessment.MaxStrategiesToRate).
				Value(&s.toRate),
		).WithHideFunc(func() bool {
			return len(s.rateable()) == 0
		}),
	}
	for i := range s.help {
		slot := i
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Key(assessment.MainStrategiesHelpfulness.Key()+"."+strconv.Itoa(slot)).
				TitleFunc(func() string { return s.slotTitle(slot) }, &s.toRate).
				Description("0 (Not at all helpful) to 10 (Extremely helpful)").
				OptionsFunc(ratingOptions, &s.toRate).
				Inline(true).
				Value(&s.help[slot]),
		).WithHideFunc(func() bool {
			return slot >= len(s.toRate)
		}))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewSelect[int]().
			Key(assessment.ConfidenceInManagement.Key()).
			Title("CMS3: Overall, how confident do you feel in your ability to manage your pain effectively from day to day?").
			Description("0 (Not at all confident) to 10 (Completely confident)").
			Options(ratingOptions()...).
			Inline(true).
			Value(&s.confidence),
	))

	s.FormScreen = newFormScreen(title, s.sync, groups...)
	return s
}

// Update implements tea.Model
func (s *CopingScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// rateable lists the selected strategies that can be rated, "Other" excluded.
func (s *CopingScreen) rateable() []string {
	return assessment.Without(s.current, labels.OtherOption)
}

func (s *CopingScreen) rateableOptions() []huh.Option[string] {
	values := s.rateable()
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(v, v).Selected(slices.Contains(s.toRate, v))
	}
	return opts
}

func (s *CopingScreen) slotTitle(slot int) string {
	if slot >= len(s.toRate) {
		return ""
	}
	return fmt.Sprintf("Helpfulness of %q", s.toRate[slot])
}

// loadRated copies the rated strategies and their helpfulness into the
// form's slots.
func (s *CopingScreen) loadRated(r assessment.CopingManagement) {
	s.toRate = slices.Clone(r.MainStrategiesToRate)
	for i := range s.help {
		s.help[i] = unset
		if i < len(r.MainStrategiesHelpfulness) {
			s.help[i] = ratingValue(r.MainStrategiesHelpfulness[i].Helpfulness)
		}
	}
}

func (s *CopingScreen) sync() {
	r := s.record()

	// The strategy lists cascade: dropping a current strategy prunes the
	// rated list, so each is applied on its own and the slots reloaded.
	if !slices.Equal(s.current, r.CurrentStrategies) {
		s.dispatch(assessment.SetCurrentStrategies(cloneList(s.current)))
		r = s.record()
		s.loadRated(r)
	}
	if !slices.Equal(s.toRate, r.MainStrategiesToRate) {
		s.dispatch(assessment.SetStrategiesToRate(cloneList(s.toRate)))
		r = s.record()
		s.loadRated(r)
	}

	var ms []assessment.Mutation
	for i, pair := range r.MainStrategiesHelpfulness {
		if i >= len(s.help) {
			break
		}
		if v := toRating(s.help[i]); v != pair.Helpfulness {
			ms = append(ms, assessment.SetHelpfulness(pair.Strategy, v))
		}
	}
	if s.other != r.OtherStrategy {
		ms = append(ms, assessment.Set(assessment.OtherStrategy, s.other))
	}
	if v := toRating(s.confidence); v != r.ConfidenceInManagement {
		ms = append(ms, assessment.Set(assessment.ConfidenceInManagement, v))
	}

	if len(ms) > 0 {
		s.dispatch(ms...)
	}
}
