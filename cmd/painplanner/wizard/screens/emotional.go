package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// EmotionalScreen asks how often pain brought up difficult feelings.
type EmotionalScreen struct {
	*FormScreen
	record   func() assessment.EmotionalWellbeing
	dispatch assessment.Dispatch

	emotionKeys []string
	emotions    []string
	outlook     string
}

// NewEmotionalScreen creates the section 4 screen
func NewEmotionalScreen(title string, record func() assessment.EmotionalWellbeing, dispatch assessment.Dispatch) *EmotionalScreen {
	r := record()
	s := &EmotionalScreen{
		record:      record,
		dispatch:    dispatch,
		emotionKeys: labels.Emotions.Values(),
		outlook:     string(r.PositiveOutlook),
	}
	s.emotions = make([]string, len(s.emotionKeys))

	fields := []huh.Field{
		huh.NewNote().
			Title("EWP1: Emotional Response to Pain (over past 7 days)").
			Description("When your pain has been bad, how often have you felt:"),
	}
	for i, key := range s.emotionKeys {
		v, _ := r.EmotionalResponse.Emotion(key)
		s.emotions[i] = string(v)
		label, _ := labels.Emotions.Label(key)
		fields = append(fields, huh.NewSelect[string]().
			Key(assessment.EmotionalResponseField.Key()+"."+key).
			Title(label).
			Options(enumOptions(labels.Likert)...).
			Inline(true).
			Value(&s.emotions[i]))
	}

	s.FormScreen = newFormScreen(title, s.sync,
		huh.NewGroup(fields...),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(assessment.PositiveOutlook.Key()).
				Title("EWP2: Positive Outlook (over past 7 days)").
				Description("Despite the pain, how often have you been able to find moments of enjoyment or maintain a sense of hope?").
				Options(enumOptions(labels.Likert)...).
				Value(&s.outlook),
		),
	)
	return s
}

// Update implements tea.Model
func (s *EmotionalScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

func (s *EmotionalScreen) sync() {
	r := s.record()
	var ms []assessment.Mutation

	for i, key := range s.emotionKeys {
		cur, _ := r.EmotionalResponse.Emotion(key)
		if v := assessment.Likert(s.emotions[i]); v != cur {
			f, ok := assessment.EmotionField(key)
			if !ok {
				continue
			}
			ms = append(ms, assessment.SetNested(f, v))
		}
	}
	if v := assessment.Likert(s.outlook); v != r.PositiveOutlook {
		ms = append(ms, assessment.Set(assessment.PositiveOutlook, v))
	}

	if len(ms) > 0 {
		s.dispatch(ms...)
	}
}
