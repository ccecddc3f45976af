package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/components"
	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/screens"
	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/report"
)

// Options configures a wizard run.
type Options struct {
	// Store holds the answers; a fresh one is used when nil.
	Store    *assessment.Store
	Services screens.Services
	Logger   zerolog.Logger
}

// Wizard is the bubbletea root model. It shows the screen for the
// controller's current page and rebuilds it after every transition.
type Wizard struct {
	ctrl     *Controller
	env      env
	screen   screens.Screen
	rev      int
	progress components.StepProgress
	logger   zerolog.Logger

	width    int
	height   int
	quitting bool
}

// New creates a wizard on the first section.
func New(opts Options) *Wizard {
	store := opts.Store
	if store == nil {
		store = assessment.NewStore()
	}
	reg := Registry()

	w := &Wizard{
		progress: components.NewStepProgress(),
		logger:   opts.Logger,
	}
	w.ctrl = NewController(store, reg, w, opts.Logger)
	w.env = env{
		store:    store,
		edit:     w.ctrl.EditSection,
		services: opts.Services,
	}
	w.build()
	return w
}

// Controller returns the page controller.
func (w *Wizard) Controller() *Controller {
	return w.ctrl
}

// Screen returns the screen being shown.
func (w *Wizard) Screen() screens.Screen {
	return w.screen
}

// ScrollToTop implements Scroller for the current screen.
func (w *Wizard) ScrollToTop() {
	if s, ok := w.screen.(Scroller); ok {
		s.ScrollToTop()
	}
}

func (w *Wizard) build() {
	w.rev = w.ctrl.Rev()
	if w.ctrl.Completed() {
		w.screen = screens.NewCompletionScreen()
	} else {
		w.screen = w.ctrl.Current().render(w.env)
	}
	if w.width > 0 {
		w.screen.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
	}
}

// rebuild replaces the screen if the controller moved.
func (w *Wizard) rebuild() tea.Cmd {
	if w.ctrl.Rev() == w.rev {
		return nil
	}
	w.build()
	return w.screen.Init()
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.screen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.progress.SetWidth(msg.Width)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			w.quitting = true
			return w, tea.Quit
		case "ctrl+n":
			if !w.ctrl.Completed() {
				w.ctrl.Next()
			}
			return w, w.rebuild()
		case "ctrl+p":
			w.ctrl.Previous()
			return w, w.rebuild()
		case "pgdown", "pgup":
			// The summary scrolls its report with these.
			if w.onForm() {
				if msg.String() == "pgdown" {
					w.ctrl.Next()
				} else {
					w.ctrl.Previous()
				}
				return w, w.rebuild()
			}
		}

	case screens.ExportDoneMsg:
		w.logger.Info().
			Str("format", string(msg.Result.Format)).
			Str("path", msg.Result.Path).
			Int64("size", msg.Result.Size).
			Int("pages", msg.Result.Pages).
			Dur("elapsed", msg.Result.Elapsed).
			Msg("Export written")

	case screens.ExportFailedMsg:
		w.logger.Error().Err(msg.Err).Str("format", string(msg.Format)).Msg("Export failed")
	}

	model, cmd := w.screen.Update(msg)
	if s, ok := model.(screens.Screen); ok {
		w.screen = s
	}

	if w.screen.Done() {
		if cs, ok := w.screen.(*screens.CompletionScreen); ok {
			if cs.Action() == screens.CompletionExit {
				w.quitting = true
				return w, tea.Quit
			}
			w.ctrl.StartOver()
		} else {
			w.ctrl.Next()
		}
	}

	return w, tea.Batch(cmd, w.rebuild())
}

func (w *Wizard) onForm() bool {
	return !w.ctrl.Completed() && w.ctrl.Current().Form
}

// View implements tea.Model.
func (w *Wizard) View() string {
	if w.quitting {
		return ""
	}

	header := components.SubtitleStyle.Render(report.Title)
	step, total, visible := w.ctrl.Progress()
	if w.ctrl.Completed() {
		visible = false
	}

	parts := []string{header}
	if bar := w.progress.View(step, total, visible); bar != "" {
		parts = append(parts, bar, "")
	}
	parts = append(parts, w.screen.View(), "", components.HintStyle.Render(w.footer()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (w *Wizard) footer() string {
	if w.ctrl.Completed() {
		return "Ctrl+C: Quit"
	}
	keys := []string{fmt.Sprintf("Ctrl+N: %s", w.ctrl.NextLabel())}
	if !w.ctrl.PreviousDisabled() {
		keys = append(keys, "Ctrl+P: Previous")
	}
	if w.ctrl.Current().Form {
		keys = append(keys, "PgDn/PgUp: Next/Previous")
	}
	keys = append(keys, "Ctrl+C: Quit")
	return strings.Join(keys, " | ")
}

// Run starts the interactive questionnaire.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}
