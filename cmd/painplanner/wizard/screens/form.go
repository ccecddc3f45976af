package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/components"
)

// FormScreen is a questionnaire section rendered as a huh form. Answers are
// bound to local values; sync pushes whatever changed to the store after
// every update so the summary is always current.
type FormScreen struct {
	title     string
	form      *huh.Form
	helpPanel *components.HelpPanel
	sync      func()
	done      bool
	width     int
	height    int
}

func newFormScreen(title string, sync func(), groups ...*huh.Group) *FormScreen {
	return &FormScreen{
		title:     title,
		form:      huh.NewForm(groups...).WithShowHelp(false).WithShowErrors(true),
		helpPanel: components.NewHelpPanel(title),
		sync:      sync,
	}
}

// Init implements tea.Model
func (s *FormScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *FormScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

func (s *FormScreen) update(msg tea.Msg) tea.Cmd {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = wsm.Width
		s.height = wsm.Height
		s.helpPanel.SetWidth(wsm.Width / 2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.sync != nil {
		s.sync()
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}
	return cmd
}

// View implements tea.Model
func (s *FormScreen) View() string {
	return s.view()
}

func (s *FormScreen) view(extra ...string) string {
	parts := []string{
		components.TitleStyle.Render(s.title),
		s.form.View(),
	}
	parts = append(parts, extra...)
	parts = append(parts,
		"",
		s.helpPanel.View(),
		"",
		components.HintStyle.Render("Tab: Next question | Shift+Tab: Back | Enter: Continue"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Title returns the section heading.
func (s *FormScreen) Title() string {
	return s.title
}

// Done returns true once the last question was submitted
func (s *FormScreen) Done() bool {
	return s.done
}
