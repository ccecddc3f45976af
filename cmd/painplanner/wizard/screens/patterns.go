package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// PainPatternsScreen asks how pain varied over the past week.
type PainPatternsScreen struct {
	*FormScreen
	record   func() assessment.PainPatternsTriggers
	dispatch assessment.Dispatch

	avg, worst, least int
	worstTime         string
	worse, better     assessment.TriState
	worseDesc         string
	betterDesc        string
}

// NewPainPatternsScreen creates the section 2 screen
func NewPainPatternsScreen(title string, record func() assessment.PainPatternsTriggers, dispatch assessment.Dispatch) *PainPatternsScreen {
	r := record()
	s := &PainPatternsScreen{
		record:     record,
		dispatch:   dispatch,
		avg:        ratingValue(r.AvgPainLast7Days),
		worst:      ratingValue(r.WorstPainLast7Days),
		least:      ratingValue(r.LeastPainLast7Days),
		worstTime:  string(r.PainWorstTime),
		worse:      r.ActivitiesWorstPain,
		better:     r.ActivitiesBetterPain,
		worseDesc:  r.ActivitiesWorstPainDesc,
		betterDesc: r.ActivitiesBetterPainDesc,
	}

	s.FormScreen = newFormScreen(title, s.sync,
		huh.NewGroup(
			huh.NewNote().
				Title("PPT1: Pain Intensity - Over Past 7 Days"),
			huh.NewSelect[int]().
				Key(assessment.AvgPainLast7Days.Key()).
				Title("What was your average pain level?").
				Options(ratingOptions()...).
				Inline(true).
				Value(&s.avg),
			huh.NewSelect[int]().
				Key(assessment.WorstPainLast7Days.Key()).
				Title("What was your worst pain level?").
				Options(ratingOptions()...).
				Inline(true).
				Value(&s.worst),
			huh.NewSelect[int]().
				Key(assessment.LeastPainLast7Days.Key()).
				Title("What was your least pain level (when pain was present)?").
				Options(ratingOptions()...).
				Inline(true).
				Value(&s.least),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(assessment.PainWorstTime.Key()).
				Title("PPT2: Pain Fluctuation").
				Description("My pain tended to be worst:").
				Options(enumOptions(labels.TimeOfDay)...).
				Value(&s.worstTime),
			huh.NewSelect[assessment.TriState]().
				Key(assessment.ActivitiesWorstPain.Key()).
				Title("Did specific activities consistently make your pain worse?").
				Options(triStateOptions()...).
				Inline(true).
				Value(&s.worse),
			huh.NewSelect[assessment.TriState]().
				Key(assessment.ActivitiesBetterPain.Key()).
				Title("Did specific activities or situations consistently make your pain better?").
				Options(triStateOptions()...).
				Inline(true).
				Value(&s.better),
		),
		huh.NewGroup(
			huh.NewText().
				Key(assessment.ActivitiesWorstPainDesc.Key()).
				Title("Activities that made your pain worse").
				Description("Briefly describe 1-2 activities:").
				Lines(3).
				Value(&s.worseDesc),
		).WithHideFunc(func() bool { return s.worse != assessment.Yes }),
		huh.NewGroup(
			huh.NewText().
				Key(assessment.ActivitiesBetterPainDesc.Key()).
				Title("Activities or situations that made your pain better").
				Description("Briefly describe 1-2:").
				Lines(3).
				Value(&s.betterDesc),
		).WithHideFunc(func() bool { return s.better != assessment.Yes }),
	)
	return s
}

// Update implements tea.Model
func (s *PainPatternsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

func (s *PainPatternsScreen) sync() {
	r := s.record()
	var ms []assessment.Mutation

	ratings := []struct {
		field assessment.Field[assessment.PainPatternsTriggers, assessment.Rating]
		local int
		cur   assessment.Rating
	}{
		{assessment.AvgPainLast7Days, s.avg, r.AvgPainLast7Days},
		{assessment.WorstPainLast7Days, s.worst, r.WorstPainLast7Days},
		{assessment.LeastPainLast7Days, s.least, r.LeastPainLast7Days},
	}
	for _, rt := range ratings {
		if v := toRating(rt.local); v != rt.cur {
			ms = append(ms, assessment.Set(rt.field, v))
		}
	}

	if t := assessment.TimeOfDay(s.worstTime); t != r.PainWorstTime {
		ms = append(ms, assessment.Set(assessment.PainWorstTime, t))
	}
	if s.worse != r.ActivitiesWorstPain {
		ms = append(ms, assessment.Set(assessment.ActivitiesWorstPain, s.worse))
	}
	if s.worseDesc != r.ActivitiesWorstPainDesc {
		ms = append(ms, assessment.Set(assessment.ActivitiesWorstPainDesc, s.worseDesc))
	}
	if s.better != r.ActivitiesBetterPain {
		ms = append(ms, assessment.Set(assessment.ActivitiesBetterPain, s.better))
	}
	if s.betterDesc != r.ActivitiesBetterPainDesc {
		ms = append(ms, assessment.Set(assessment.ActivitiesBetterPainDesc, s.betterDesc))
	}

	if len(ms) > 0 {
		s.dispatch(ms...)
	}
}
