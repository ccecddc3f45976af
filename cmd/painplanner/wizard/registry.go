package wizard

import (
	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/screens"
	"github.com/mrsinham/painplanner/internal/assessment"
)

// ReportID identifies the summary report pseudo-section.
const ReportID = "summaryReport"

// env is what a descriptor needs to build its screen.
type env struct {
	store    *assessment.Store
	edit     func(id string)
	services screens.Services
}

// Descriptor is one page of the questionnaire.
type Descriptor struct {
	ID     string
	Title  string
	Form   bool
	render func(env) screens.Screen
}

// formSection builds a form descriptor whose renderer only ever sees its own
// section record and the dispatch function.
func formSection[S assessment.Record](sec assessment.Section[S], title string,
	render func(title string, record func() S, dispatch assessment.Dispatch) screens.Screen) Descriptor {
	return Descriptor{
		ID:    string(sec.Key()),
		Title: title,
		Form:  true,
		render: func(e env) screens.Screen {
			record := func() S { return sec.Get(e.store.Snapshot()) }
			return render(title, record, e.store.Dispatch)
		},
	}
}

func reportSection(title string) Descriptor {
	return Descriptor{
		ID:    ReportID,
		Title: title,
		render: func(e env) screens.Screen {
			return screens.NewSummaryScreen(title, e.store.Snapshot(), e.edit, e.services)
		},
	}
}

// Registry returns the seven pages in order: six form sections then the
// summary report.
func Registry() []Descriptor {
	return []Descriptor{
		formSection(assessment.PainSnapshotSection, "Section 1: Your Pain Snapshot",
			func(t string, r func() assessment.PainSnapshot, d assessment.Dispatch) screens.Screen {
				return screens.NewPainSnapshotScreen(t, r, d)
			}),
		formSection(assessment.PainPatternsSection, "Section 2: Pain Patterns & Triggers",
			func(t string, r func() assessment.PainPatternsTriggers, d assessment.Dispatch) screens.Screen {
				return screens.NewPainPatternsScreen(t, r, d)
			}),
		formSection(assessment.ImpactSection, "Section 3: Impact on Daily Life",
			func(t string, r func() assessment.ImpactDailyLife, d assessment.Dispatch) screens.Screen {
				return screens.NewImpactScreen(t, r, d)
			}),
		formSection(assessment.EmotionalSection, "Section 4: Emotional Well-being & Pain",
			func(t string, r func() assessment.EmotionalWellbeing, d assessment.Dispatch) screens.Screen {
				return screens.NewEmotionalScreen(t, r, d)
			}),
		formSection(assessment.CopingSection, "Section 5: Coping & Management Strategies",
			func(t string, r func() assessment.CopingManagement, d assessment.Dispatch) screens.Screen {
				return screens.NewCopingScreen(t, r, d)
			}),
		formSection(assessment.GoalsSection, "Section 6: Personal Goals & Action Planning",
			func(t string, r func() assessment.PersonalGoalsActionPlanner, d assessment.Dispatch) screens.Screen {
				return screens.NewGoalsScreen(t, r, d)
			}),
		reportSection("Summary Report"),
	}
}

// FormCount returns how many descriptors are form sections.
func FormCount(reg []Descriptor) int {
	n := 0
	for _, d := range reg {
		if d.Form {
			n++
		}
	}
	return n
}
