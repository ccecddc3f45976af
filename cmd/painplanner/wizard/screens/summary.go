package screens

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/components"
	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/clipboard"
	"github.com/mrsinham/painplanner/internal/export"
	"github.com/mrsinham/painplanner/internal/report"
)

const (
	actionPDF   = "pdf"
	actionEmail = "email"
	actionCopy  = "copy"
	actionDICOM = "dicom"
	actionEdit  = "edit"
	actionDone  = "done"
)

var (
	reportPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1)

	reportStampStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Italic(true)
)

// Exporter writes the report to disk.
type Exporter interface {
	WritePDF(ctx context.Context, snap *assessment.Snapshot, path string) (export.Result, error)
	WriteDICOM(ctx context.Context, snap *assessment.Snapshot, path string) (export.Result, error)
}

// Services are the capabilities the summary screen acts through.
type Services struct {
	Exporter  Exporter
	Clipboard clipboard.Writer
	Task      *export.Task
	PDFPath   string
	DICOMPath string
	Now       func() time.Time
	Logger    zerolog.Logger
}

func (s Services) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// SummaryScreen shows the report for the current answers and the actions
// that can be taken on it.
type SummaryScreen struct {
	title    string
	snap     *assessment.Snapshot
	targets  []report.EditTarget
	edit     func(id string)
	services Services

	viewport viewport.Model
	form     *huh.Form
	action   string
	target   string
	picking  bool

	notice    string
	errNotice string
	done      bool
	width     int
	height    int
}

// NewSummaryScreen creates the summary screen for snap. The section picker
// offers the editable headings of the report; edit is called with the
// chosen section key.
func NewSummaryScreen(title string, snap *assessment.Snapshot, edit func(id string), services Services) *SummaryScreen {
	if services.Task == nil {
		services.Task = &export.Task{}
	}
	s := &SummaryScreen{
		title:    title,
		snap:     snap,
		edit:     edit,
		services: services,
		viewport: viewport.New(80, 16),
	}
	s.targets = report.EditTargets(report.Blocks(snap, report.Timestamp(services.now())))
	s.viewport.SetContent(s.renderReport(80))
	s.form = s.actionForm()
	return s
}

func (s *SummaryScreen) actionForm() *huh.Form {
	s.action = actionPDF
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Download PDF", actionPDF),
					huh.NewOption("Copy for email", actionEmail),
					huh.NewOption("Copy summary text", actionCopy),
					huh.NewOption("Export DICOM (Encapsulated PDF)", actionDICOM),
					huh.NewOption("Edit a section", actionEdit),
					huh.NewOption("Done", actionDone),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)
}

func (s *SummaryScreen) editForm() *huh.Form {
	opts := make([]huh.Option[string], len(s.targets))
	for i, t := range s.targets {
		opts[i] = huh.NewOption(t.Heading, string(t.Section))
	}
	if len(s.targets) > 0 {
		s.target = string(s.targets[0].Section)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("section").
				Title("Which section do you want to change?").
				Options(opts...).
				Value(&s.target),
		),
	).WithShowHelp(false)
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if s.services.Task.Cancel() {
				return s, nil
			}
			if s.picking {
				s.picking = false
				s.form = s.actionForm()
				return s, s.form.Init()
			}
			return s, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return s, cmd
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.viewport.Width = max(40, msg.Width-4)
		s.viewport.Height = max(6, msg.Height-18)
		s.viewport.SetContent(s.renderReport(s.viewport.Width - 4))
	case ExportDoneMsg:
		s.notice = msg.Result.Notice()
		s.errNotice = ""
		return s, nil
	case ExportFailedMsg:
		s.notice = ""
		s.errNotice = export.NoticeFor(msg.Err)
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		return s, tea.Batch(cmd, s.complete())
	}
	return s, cmd
}

// complete runs the chosen action and puts a fresh menu up.
func (s *SummaryScreen) complete() tea.Cmd {
	if s.picking {
		s.picking = false
		s.form = s.actionForm()
		if s.edit != nil {
			s.edit(s.target)
		}
		return s.form.Init()
	}

	var cmd tea.Cmd
	switch s.action {
	case actionPDF:
		cmd = s.startExport(export.FormatPDF)
	case actionDICOM:
		cmd = s.startExport(export.FormatDICOM)
	case actionEmail:
		s.copyText(export.CopyEmail)
	case actionCopy:
		s.copyText(export.CopySummary)
	case actionEdit:
		s.picking = true
		s.form = s.editForm()
		return s.form.Init()
	case actionDone:
		s.done = true
	}

	s.form = s.actionForm()
	return tea.Batch(cmd, s.form.Init())
}

func (s *SummaryScreen) copyText(copyFn func(clipboard.Writer, *assessment.Snapshot, string) (string, error)) {
	if s.services.Clipboard == nil {
		s.notice, s.errNotice = "", export.NoticeClipboardFailed
		return
	}
	msg, err := copyFn(s.services.Clipboard, s.snap, report.Timestamp(s.services.now()))
	if err != nil {
		s.services.Logger.Error().Err(err).Msg("Clipboard copy failed")
		s.notice, s.errNotice = "", msg
		return
	}
	s.notice, s.errNotice = msg, ""
}

// startExport launches an export in the background. Only one export runs
// at a time; Esc cancels it.
func (s *SummaryScreen) startExport(format export.Format) tea.Cmd {
	if s.services.Exporter == nil {
		s.notice, s.errNotice = "", export.NoticeRasterUnavailable
		return nil
	}
	ctx, finish, err := s.services.Task.Start(context.Background())
	if err != nil {
		s.notice, s.errNotice = "", export.NoticeFor(err)
		return nil
	}

	s.notice, s.errNotice = "Exporting... (Esc to cancel)", ""
	snap, exp := s.snap, s.services.Exporter
	path := s.services.PDFPath
	if format == export.FormatDICOM {
		path = s.services.DICOMPath
	}
	return func() tea.Msg {
		defer finish()
		var (
			res export.Result
			err error
		)
		if format == export.FormatDICOM {
			res, err = exp.WriteDICOM(ctx, snap, path)
		} else {
			res, err = exp.WritePDF(ctx, snap, path)
		}
		if err != nil {
			return ExportFailedMsg{Format: format, Err: err}
		}
		return ExportDoneMsg{Result: res}
	}
}

// renderReport lays the report out for the terminal.
func (s *SummaryScreen) renderReport(width int) string {
	var sb strings.Builder
	sb.WriteString(components.HeadingStyle.Render(report.Title + " Summary"))
	sb.WriteString("\n")
	sb.WriteString(reportStampStyle.Render("Report Generated: " + report.Timestamp(s.services.now())))
	sb.WriteString("\n")

	value := components.ValueStyle.Width(max(20, width))
	for _, sec := range report.Sections(s.snap) {
		sb.WriteString("\n")
		sb.WriteString(components.HeadingStyle.Render(sec.Headline))
		sb.WriteString("\n")
		for _, l := range sec.Lines {
			sb.WriteString(components.LabelStyle.Render(l.Label + ":"))
			sb.WriteString("\n")
			sb.WriteString(value.Render("  " + l.Value))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	title := components.TitleStyle.Render(s.title)

	var status string
	switch {
	case s.errNotice != "":
		status = components.ErrorStyle.Render(s.errNotice)
	case s.notice != "":
		status = components.NoticeStyle.Render(s.notice)
	}

	hint := "PgUp/PgDn: Scroll | Enter: Select action"
	if s.services.Task.Pending() {
		hint += " | Esc: Cancel export"
	} else if s.picking {
		hint += " | Esc: Back"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		reportPanelStyle.Render(s.viewport.View()),
		status,
		s.form.View(),
		components.HintStyle.Render(hint),
	)
}

// ScrollToTop moves the report back to its first line.
func (s *SummaryScreen) ScrollToTop() {
	s.viewport.GotoTop()
}

// Notice returns the last message shown to the user and whether it was an
// error.
func (s *SummaryScreen) Notice() (string, bool) {
	if s.errNotice != "" {
		return s.errNotice, true
	}
	return s.notice, false
}

// Report returns the rendered report.
func (s *SummaryScreen) Report() string {
	return s.viewport.View()
}

// EditTargets returns the sections the picker offers.
func (s *SummaryScreen) EditTargets() []report.EditTarget {
	return s.targets
}

// Done returns true when the user chose Done
func (s *SummaryScreen) Done() bool {
	return s.done
}
