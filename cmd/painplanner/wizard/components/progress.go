package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var stepLabelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("244"))

// StepProgress shows how far through the questionnaire the user is.
type StepProgress struct {
	bar progress.Model
}

// NewStepProgress creates a step progress bar.
func NewStepProgress() StepProgress {
	bar := progress.New(
		progress.WithSolidFill("63"),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
	return StepProgress{bar: bar}
}

// SetWidth sizes the bar, leaving room for the step label.
func (p *StepProgress) SetWidth(width int) {
	w := width - 20
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	p.bar.Width = w
}

// View renders "Step n of total" with the bar. It renders nothing when
// visible is false.
func (p StepProgress) View(step, total int, visible bool) string {
	if !visible || total <= 0 {
		return ""
	}
	percent := float64(step) / float64(total)
	label := stepLabelStyle.Render(fmt.Sprintf("Step %d of %d", step, total))
	return lipgloss.JoinHorizontal(lipgloss.Center, p.bar.ViewAs(percent), "  ", label)
}
