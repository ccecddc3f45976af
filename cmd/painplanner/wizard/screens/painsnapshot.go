package screens

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/components"
	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// PainSnapshotScreen asks about current pain. Pins are placed on the board
// below the form; Ctrl+B moves the keyboard to the board and Esc back.
type PainSnapshotScreen struct {
	*FormScreen
	record   func() assessment.PainSnapshot
	dispatch assessment.Dispatch
	board    *components.PinBoard

	intensity   int
	locations   []string
	descriptors []string
	other       string
}

// NewPainSnapshotScreen creates the section 1 screen
func NewPainSnapshotScreen(title string, record func() assessment.PainSnapshot, dispatch assessment.Dispatch) *PainSnapshotScreen {
	r := record()
	s := &PainSnapshotScreen{
		record:      record,
		dispatch:    dispatch,
		intensity:   ratingValue(r.CurrentPainIntensity),
		locations:   slices.Clone(r.PrimaryPainLocation),
		descriptors: slices.Clone(r.PainDescriptors),
		other:       r.OtherPainDescriptor,
	}
	s.board = components.NewPinBoard(func() []assessment.Pin { return s.record().PinLocations }, dispatch)

	s.FormScreen = newFormScreen(title, s.sync,
		huh.NewGroup(
			huh.NewSelect[int]().
				Key(assessment.CurrentPainIntensity.Key()).
				Title("PS1: Right now, how would you rate your pain?").
				Description("0 (No pain) to 10 (Pain as bad as you can imagine)").
				Options(ratingOptions()...).
				Inline(true).
				Value(&s.intensity),

			huh.NewMultiSelect[string]().
				Key(assessment.PrimaryPainLocation.Key()).
				Title("PS2: Where is your pain? (Select all that apply)").
				Options(tableOptions(labels.BodyRegions)...).
				Height(8).
				Value(&s.locations),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key(assessment.PainDescriptors.Key()).
				Title("PS3: Which of the following words best describe your main pain? (Select all that apply)").
				Options(tableOptions(labels.PainDescriptors)...).
				Value(&s.descriptors),
		),
		huh.NewGroup(
			huh.NewInput().
				Key(assessment.OtherPainDescriptor.Key()).
				Title("Please specify:").
				Placeholder("Other word for your pain").
				Value(&s.other),
		).WithHideFunc(func() bool {
			return !slices.Contains(s.descriptors, labels.OtherOption)
		}),
	)
	return s
}

// Update implements tea.Model
func (s *PainSnapshotScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if s.board.Active() {
			var cmd tea.Cmd
			s.board, cmd = s.board.Update(km)
			return s, cmd
		}
		if km.String() == "ctrl+b" {
			s.board.Focus()
			s.helpPanel.SetField(assessment.PinLocations.Key())
			return s, nil
		}
		return s, s.update(msg)
	}

	var boardCmd tea.Cmd
	if s.board.Editing() {
		s.board, boardCmd = s.board.Update(msg)
	}
	return s, tea.Batch(boardCmd, s.update(msg))
}

// View implements tea.Model
func (s *PainSnapshotScreen) View() string {
	return s.view("", s.board.View())
}

// Board returns the pin board.
func (s *PainSnapshotScreen) Board() *components.PinBoard {
	return s.board
}

func (s *PainSnapshotScreen) sync() {
	r := s.record()
	var ms []assessment.Mutation

	if v := toRating(s.intensity); v != r.CurrentPainIntensity {
		ms = append(ms, assessment.Set(assessment.CurrentPainIntensity, v))
	}
	if !slices.Equal(s.locations, r.PrimaryPainLocation) {
		ms = append(ms, assessment.Set(assessment.PrimaryPainLocation, cloneList(s.locations)))
	}
	if !slices.Equal(s.descriptors, r.PainDescriptors) {
		ms = append(ms, assessment.Set(assessment.PainDescriptors, cloneList(s.descriptors)))
	}
	if s.other != r.OtherPainDescriptor {
		ms = append(ms, assessment.Set(assessment.OtherPainDescriptor, s.other))
	}

	if len(ms) > 0 {
		s.dispatch(ms...)
	}
}
