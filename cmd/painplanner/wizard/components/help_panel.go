package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/help"
)

var (
	helpPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("63")).
			PaddingLeft(2)

	helpBadgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("63")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Padding(0, 1)

	helpTipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// HelpPanel explains the focused question under a badge naming the section
// it belongs to.
type HelpPanel struct {
	number  string
	section string
	field   string
	width   int
}

// NewHelpPanel returns the panel for the section titled title. Titles of the
// form "Section N: Name" put N in the badge.
func NewHelpPanel(title string) *HelpPanel {
	h := &HelpPanel{section: title, width: 60}
	if rest, ok := strings.CutPrefix(title, "Section "); ok {
		if num, name, ok := strings.Cut(rest, ": "); ok {
			h.number, h.section = num, name
		}
	}
	return h
}

// SetField selects the question to explain.
func (h *HelpPanel) SetField(key string) {
	h.field = key
}

// Field returns the question currently shown.
func (h *HelpPanel) Field() string {
	return h.field
}

// SetWidth fits the panel into width columns.
func (h *HelpPanel) SetWidth(width int) {
	h.width = max(width, 24)
}

// Badge is the section marker shown above the question.
func (h *HelpPanel) Badge() string {
	if h.number == "" {
		return h.section
	}
	return "Section " + h.number + " · " + h.section
}

// View renders the panel
func (h *HelpPanel) View() string {
	lines := []string{helpBadgeStyle.Render(h.Badge()), ""}

	text, ok := help.Lookup(h.field)
	if !ok {
		lines = append(lines, helpTipStyle.Render("Move to a question to see why it is asked"))
	} else {
		lines = append(lines, HeadingStyle.Render(text.Title), ValueStyle.Render(text.Description))
		if text.Details != "" {
			lines = append(lines, "", helpTipStyle.Render(text.Details))
		}
	}

	return helpPanelStyle.Width(h.width - 3).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
