package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/components"
)

// ResourcesURL is where people can find more help.
const ResourcesURL = "https://development.painbc.ca/find-help"

// Disclaimer is shown on the completion page.
const Disclaimer = "This tool is intended for self-monitoring and to facilitate informed discussions with healthcare providers. It is not a substitute for professional medical advice."

// CompletionAction is what the user picked on the completion page.
type CompletionAction int

const (
	// CompletionExit leaves the application
	CompletionExit CompletionAction = iota
	// CompletionStartOver clears every answer and starts again
	CompletionStartOver
)

const (
	actionStartOver = "start_over"
	actionExit      = "exit"
)

var disclaimerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("244")).
	Italic(true).
	Width(72)

// CompletionScreen is shown once the user is done with the summary.
type CompletionScreen struct {
	form   *huh.Form
	action string
	done   bool
}

// NewCompletionScreen creates the completion page
func NewCompletionScreen() *CompletionScreen {
	s := &CompletionScreen{action: actionStartOver}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("What next?").
				Options(
					huh.NewOption("Start Over", actionStartOver),
					huh.NewOption("Exit", actionExit),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)
	return s
}

// Init implements tea.Model
func (s *CompletionScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}
	return s, cmd
}

// View implements tea.Model
func (s *CompletionScreen) View() string {
	title := components.TitleStyle.Render("Next Steps & Resources")

	resources := lipgloss.JoinHorizontal(lipgloss.Top,
		"Visit Pain BC's Get Help webpage (",
		components.LinkStyle.Render(ResourcesURL),
		") for resources to help manage your pain.",
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		resources,
		"",
		disclaimerStyle.Render(Disclaimer),
		"",
		s.form.View(),
		"",
		components.HintStyle.Render("Enter: Select | Ctrl+C: Quit"),
	)
}

// Done returns true once an action was picked
func (s *CompletionScreen) Done() bool {
	return s.done
}

// Action returns the selected action
func (s *CompletionScreen) Action() CompletionAction {
	if s.action == actionStartOver {
		return CompletionStartOver
	}
	return CompletionExit
}
