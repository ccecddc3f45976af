package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/bodymap"
	"github.com/mrsinham/painplanner/internal/report"
)

// Board size in terminal cells.
const (
	BoardCols = 66
	BoardRows = 26
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	boardActiveStyle = boardStyle.
				BorderForeground(lipgloss.Color("63"))

	bodyCellStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	pinCellStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	selectedPinStyle  = pinCellStyle.Reverse(true)
	cursorCellStyle   = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("255"))
	pinListStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pinListMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var (
	gridOnce sync.Once
	gridData [][]rune
	gridErr  error
)

func boardGrid() ([][]rune, error) {
	gridOnce.Do(func() {
		gridData, gridErr = bodymap.Grid(BoardCols, BoardRows)
	})
	return gridData, gridErr
}

type pinBoardKeys struct {
	Up, Down, Left, Right key.Binding
	Add, Prev, Next       key.Binding
	Drag, Drop, Label     key.Binding
	Remove, Leave         key.Binding
}

var defaultPinBoardKeys = pinBoardKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Left:   key.NewBinding(key.WithKeys("left", "h")),
	Right:  key.NewBinding(key.WithKeys("right", "l")),
	Add:    key.NewBinding(key.WithKeys("a")),
	Prev:   key.NewBinding(key.WithKeys("[")),
	Next:   key.NewBinding(key.WithKeys("]")),
	Drag:   key.NewBinding(key.WithKeys("d")),
	Drop:   key.NewBinding(key.WithKeys("enter", " ")),
	Label:  key.NewBinding(key.WithKeys("e")),
	Remove: key.NewBinding(key.WithKeys("x", "delete")),
	Leave:  key.NewBinding(key.WithKeys("esc", "tab")),
}

// PinBoard lets the user place, drag, label and remove pins on a terminal
// rendering of the body diagram. Pins are read through the pins func and
// every change goes through dispatch.
type PinBoard struct {
	pins     func() []assessment.Pin
	dispatch assessment.Dispatch
	keys     pinBoardKeys

	cx, cy   int
	selected int
	// dragging is the id of the one pin being moved, if any.
	dragging string
	editing  bool
	active   bool
	input    textinput.Model
}

// NewPinBoard creates a board with the cursor in the middle.
func NewPinBoard(pins func() []assessment.Pin, dispatch assessment.Dispatch) *PinBoard {
	ti := textinput.New()
	ti.Placeholder = "e.g. sharp when sitting"
	ti.CharLimit = 80
	ti.Width = 40

	b := &PinBoard{
		pins:     pins,
		dispatch: dispatch,
		keys:     defaultPinBoardKeys,
		cx:       BoardCols / 2,
		cy:       BoardRows / 2,
		selected: -1,
		input:    ti,
	}
	if n := len(pins()); n > 0 {
		b.selected = n - 1
	}
	return b
}

// Focus hands keyboard input to the board.
func (b *PinBoard) Focus() {
	b.active = true
}

// Active reports whether the board has keyboard focus.
func (b *PinBoard) Active() bool {
	return b.active
}

// Dragging returns the id of the pin being moved, or "".
func (b *PinBoard) Dragging() string {
	return b.dragging
}

// Editing reports whether a label is being typed.
func (b *PinBoard) Editing() bool {
	return b.editing
}

// Cursor returns the cursor cell.
func (b *PinBoard) Cursor() (int, int) {
	return b.cx, b.cy
}

// Selected returns the selected pin.
func (b *PinBoard) Selected() (assessment.Pin, bool) {
	pins := b.pins()
	if b.selected < 0 || b.selected >= len(pins) {
		return assessment.Pin{}, false
	}
	return pins[b.selected], true
}

// CellPct converts a cell to diagram percentages, using the cell centre.
func CellPct(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / BoardCols * 100, (float64(cy) + 0.5) / BoardRows * 100
}

// PctCell converts diagram percentages to the cell that contains them.
func PctCell(xPct, yPct float64) (int, int) {
	cx := int(assessment.ClampPct(xPct) / 100 * BoardCols)
	cy := int(assessment.ClampPct(yPct) / 100 * BoardRows)
	return min(cx, BoardCols-1), min(cy, BoardRows-1)
}

// Update handles a key while the board is active.
func (b *PinBoard) Update(msg tea.Msg) (*PinBoard, tea.Cmd) {
	if !b.active {
		return b, nil
	}
	if b.editing {
		return b.updateLabel(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case key.Matches(km, b.keys.Leave):
		b.leave()
	case key.Matches(km, b.keys.Up):
		b.moveCursor(0, -1)
	case key.Matches(km, b.keys.Down):
		b.moveCursor(0, 1)
	case key.Matches(km, b.keys.Left):
		b.moveCursor(-1, 0)
	case key.Matches(km, b.keys.Right):
		b.moveCursor(1, 0)
	case key.Matches(km, b.keys.Drop):
		b.dragging = ""
	case b.dragging != "":
		// Only movement and drop apply mid-drag.
	case key.Matches(km, b.keys.Add):
		x, y := CellPct(b.cx, b.cy)
		b.dispatch(assessment.AddPin(assessment.NewPin(x, y)))
		b.selected = len(b.pins()) - 1
	case key.Matches(km, b.keys.Prev):
		b.cycle(-1)
	case key.Matches(km, b.keys.Next):
		b.cycle(1)
	case key.Matches(km, b.keys.Drag):
		if p, ok := b.Selected(); ok {
			b.dragging = p.ID
			b.cx, b.cy = PctCell(p.XPct, p.YPct)
		}
	case key.Matches(km, b.keys.Label):
		if p, ok := b.Selected(); ok {
			b.editing = true
			b.input.SetValue(p.Label)
			b.input.CursorEnd()
			return b, b.input.Focus()
		}
	case key.Matches(km, b.keys.Remove):
		if p, ok := b.Selected(); ok {
			b.dispatch(assessment.RemovePin(p.ID))
			if n := len(b.pins()); b.selected >= n {
				b.selected = n - 1
			}
		}
	}
	return b, nil
}

func (b *PinBoard) updateLabel(msg tea.Msg) (*PinBoard, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			if p, ok := b.Selected(); ok {
				b.dispatch(assessment.LabelPin(p.ID, strings.TrimSpace(b.input.Value())))
			}
			b.stopEditing()
			return b, nil
		case "esc":
			b.stopEditing()
			return b, nil
		}
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *PinBoard) stopEditing() {
	b.editing = false
	b.input.Blur()
	b.input.Reset()
}

// leave returns focus to the form. Any drag in progress ends.
func (b *PinBoard) leave() {
	b.dragging = ""
	b.active = false
}

func (b *PinBoard) moveCursor(dx, dy int) {
	b.cx = max(0, min(BoardCols-1, b.cx+dx))
	b.cy = max(0, min(BoardRows-1, b.cy+dy))
	if b.dragging != "" {
		x, y := CellPct(b.cx, b.cy)
		b.dispatch(assessment.MovePin(b.dragging, x, y))
	}
}

func (b *PinBoard) cycle(step int) {
	n := len(b.pins())
	if n == 0 {
		b.selected = -1
		return
	}
	b.selected = ((b.selected+step)%n + n) % n
	p := b.pins()[b.selected]
	b.cx, b.cy = PctCell(p.XPct, p.YPct)
}

// View renders the diagram, the pins and the pin list.
func (b *PinBoard) View() string {
	grid, err := boardGrid()
	if err != nil {
		return ErrorStyle.Render("Body map unavailable: " + err.Error())
	}

	pins := b.pins()
	marks := make(map[[2]int]int, len(pins))
	for i, p := range pins {
		cx, cy := PctCell(p.XPct, p.YPct)
		marks[[2]int{cx, cy}] = i
	}

	var sb strings.Builder
	for y, row := range grid {
		for x, r := range row {
			cell := string(r)
			style := bodyCellStyle
			if i, ok := marks[[2]int{x, y}]; ok {
				cell = pinGlyph(i)
				style = pinCellStyle
				if i == b.selected {
					style = selectedPinStyle
				}
			}
			if b.active && x == b.cx && y == b.cy {
				if cell == " " {
					cell = "+"
				}
				style = cursorCellStyle
			}
			sb.WriteString(style.Render(cell))
		}
		if y < len(grid)-1 {
			sb.WriteString("\n")
		}
	}

	frame := boardStyle
	if b.active {
		frame = boardActiveStyle
	}

	parts := []string{frame.Render(sb.String()), b.pinList(pins)}
	switch {
	case b.editing:
		parts = append(parts, "Label: "+b.input.View())
	case b.dragging != "":
		parts = append(parts, HintStyle.Render("Dragging: move with the arrows, Enter to drop"))
	case b.active:
		parts = append(parts, HintStyle.Render("a: add | [ ]: select | d: drag | e: label | x: remove | Esc: back"))
	default:
		parts = append(parts, HintStyle.Render("Ctrl+B: mark spots on the body map"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (b *PinBoard) pinList(pins []assessment.Pin) string {
	if len(pins) == 0 {
		return pinListMutedStyle.Render("No pins placed")
	}
	lines := make([]string, len(pins))
	for i, p := range pins {
		label := p.Label
		if label == "" {
			label = report.Unlabeled
		}
		prefix := "  "
		if i == b.selected {
			prefix = "> "
		}
		lines[i] = pinListStyle.Render(fmt.Sprintf("%s#%d: %s", prefix, i+1, label))
	}
	return strings.Join(lines, "\n")
}

func pinGlyph(i int) string {
	if i < 9 {
		return string(rune('1' + i))
	}
	return "*"
}
