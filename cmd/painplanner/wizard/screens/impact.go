package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// ImpactScreen rates how much pain interfered with daily life.
type ImpactScreen struct {
	*FormScreen
	record   func() assessment.ImpactDailyLife
	dispatch assessment.Dispatch

	general int
	// domains holds one rating per labels.LifeDomains entry, in table order.
	domainKeys []string
	domains    []int
}

// NewImpactScreen creates the section 3 screen
func NewImpactScreen(title string, record func() assessment.ImpactDailyLife, dispatch assessment.Dispatch) *ImpactScreen {
	r := record()
	s := &ImpactScreen{
		record:     record,
		dispatch:   dispatch,
		general:    ratingValue(r.GeneralInterference),
		domainKeys: labels.LifeDomains.Values(),
	}
	s.domains = make([]int, len(s.domainKeys))

	fields := []huh.Field{
		huh.NewNote().
			Title("IDL2: Specific Life Domains Affected (over past 7 days)").
			Description("To what extent has pain interfered with your:"),
	}
	for i, key := range s.domainKeys {
		v, _ := r.SpecificLifeDomains.Domain(key)
		s.domains[i] = ratingValue(v)
		label, _ := labels.LifeDomains.Label(key)
		fields = append(fields, huh.NewSelect[int]().
			Key(assessment.SpecificLifeDomains.Key()+"."+key).
			Title(label).
			Options(ratingOptions()...).
			Inline(true).
			Value(&s.domains[i]))
	}

	s.FormScreen = newFormScreen(title, s.sync,
		huh.NewGroup(
			huh.NewSelect[int]().
				Key(assessment.GeneralInterference.Key()).
				Title("IDL1: Overall, how much has pain interfered with your daily life (over past 7 days)?").
				Description("0 (No interference) to 10 (Complete interference)").
				Options(ratingOptions()...).
				Inline(true).
				Value(&s.general),
		),
		huh.NewGroup(fields...),
	)
	return s
}

// Update implements tea.Model
func (s *ImpactScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

func (s *ImpactScreen) sync() {
	r := s.record()
	var ms []assessment.Mutation

	if v := toRating(s.general); v != r.GeneralInterference {
		ms = append(ms, assessment.Set(assessment.GeneralInterference, v))
	}
	for i, key := range s.domainKeys {
		cur, _ := r.SpecificLifeDomains.Domain(key)
		if v := toRating(s.domains[i]); v != cur {
			f, ok := assessment.DomainField(key)
			if !ok {
				continue
			}
			ms = append(ms, assessment.SetNested(f, v))
		}
	}

	if len(ms) > 0 {
		s.dispatch(ms...)
	}
}
