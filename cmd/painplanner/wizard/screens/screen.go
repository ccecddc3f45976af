package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/painplanner/internal/export"
)

// Screen is one page of the wizard. Done reports that the user finished
// the page and the wizard should move on.
type Screen interface {
	tea.Model
	Done() bool
}

// ExportDoneMsg is sent when a file export completes successfully
type ExportDoneMsg struct {
	Result export.Result
}

// ExportFailedMsg is sent when a file export fails or is cancelled
type ExportFailedMsg struct {
	Format export.Format
	Err    error
}
