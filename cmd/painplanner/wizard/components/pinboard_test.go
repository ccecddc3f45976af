package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/painplanner/internal/assessment"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBoard() (*PinBoard, *assessment.Store) {
	store := assessment.NewStore()
	pins := func() []assessment.Pin { return store.Snapshot().PainSnapshot().PinLocations }
	b := NewPinBoard(pins, store.Dispatch)
	b.Focus()
	return b, store
}

func TestPinBoard_AddAtCursor(t *testing.T) {
	b, store := newTestBoard()

	b.Update(tea.KeyMsg{Type: tea.KeyRight})
	b.Update(runes("a"))

	pins := store.Snapshot().PainSnapshot().PinLocations
	if len(pins) != 1 {
		t.Fatalf("Expected 1 pin, got %d", len(pins))
	}
	wantX, wantY := CellPct(BoardCols/2+1, BoardRows/2)
	if pins[0].XPct != wantX || pins[0].YPct != wantY {
		t.Errorf("Expected pin at (%v,%v), got (%v,%v)", wantX, wantY, pins[0].XPct, pins[0].YPct)
	}
	if pins[0].View != assessment.ViewAnterior {
		t.Errorf("Expected anterior view, got %s", pins[0].View)
	}
	if p, ok := b.Selected(); !ok || p.ID != pins[0].ID {
		t.Errorf("Expected new pin to be selected")
	}
}

func TestPinBoard_Drag(t *testing.T) {
	b, store := newTestBoard()
	b.Update(runes("a"))
	id := store.Snapshot().PainSnapshot().PinLocations[0].ID

	b.Update(runes("d"))
	if b.Dragging() != id {
		t.Fatalf("Expected dragging %s, got %q", id, b.Dragging())
	}

	b.Update(tea.KeyMsg{Type: tea.KeyDown})
	b.Update(tea.KeyMsg{Type: tea.KeyDown})

	cx, cy := b.Cursor()
	wantX, wantY := CellPct(cx, cy)
	got := store.Snapshot().PainSnapshot().PinLocations[0]
	if got.XPct != wantX || got.YPct != wantY {
		t.Errorf("Expected pin moved to (%v,%v), got (%v,%v)", wantX, wantY, got.XPct, got.YPct)
	}

	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if b.Dragging() != "" {
		t.Errorf("Expected drop to clear dragging")
	}

	b.Update(tea.KeyMsg{Type: tea.KeyUp})
	after := store.Snapshot().PainSnapshot().PinLocations[0]
	if after != got {
		t.Errorf("Expected pin to stay put after drop")
	}
}

func TestPinBoard_LeaveClearsDrag(t *testing.T) {
	for _, leave := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyTab}} {
		b, _ := newTestBoard()
		b.Update(runes("a"))
		b.Update(runes("d"))

		b.Update(leave)
		if b.Dragging() != "" {
			t.Errorf("%s: expected dragging cleared", leave)
		}
		if b.Active() {
			t.Errorf("%s: expected board to lose focus", leave)
		}
	}
}

func TestPinBoard_NoAddWhileDragging(t *testing.T) {
	b, store := newTestBoard()
	b.Update(runes("a"))
	b.Update(runes("d"))
	b.Update(runes("a"))

	if n := len(store.Snapshot().PainSnapshot().PinLocations); n != 1 {
		t.Errorf("Expected 1 pin while dragging, got %d", n)
	}
}

func TestPinBoard_Label(t *testing.T) {
	b, store := newTestBoard()
	b.Update(runes("a"))

	b.Update(runes("e"))
	if !b.Editing() {
		t.Fatalf("Expected label editing")
	}
	b.Update(runes("knee"))
	b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if b.Editing() {
		t.Errorf("Expected editing to end")
	}
	if got := store.Snapshot().PainSnapshot().PinLocations[0].Label; got != "knee" {
		t.Errorf("Expected label 'knee', got '%s'", got)
	}
}

func TestPinBoard_LabelCancel(t *testing.T) {
	b, store := newTestBoard()
	b.Update(runes("a"))
	b.Update(runes("e"))
	b.Update(runes("oops"))
	b.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if got := store.Snapshot().PainSnapshot().PinLocations[0].Label; got != "" {
		t.Errorf("Expected label unchanged, got '%s'", got)
	}
	if !b.Active() {
		t.Errorf("Expected esc during editing to keep the board active")
	}
}

func TestPinBoard_RemoveAndSelect(t *testing.T) {
	b, store := newTestBoard()
	b.Update(runes("a"))
	b.Update(tea.KeyMsg{Type: tea.KeyRight})
	b.Update(runes("a"))
	b.Update(tea.KeyMsg{Type: tea.KeyRight})
	b.Update(runes("a"))

	first := store.Snapshot().PainSnapshot().PinLocations[0].ID
	b.Update(runes("]"))
	if p, _ := b.Selected(); p.ID != first {
		t.Fatalf("Expected selection to wrap to the first pin")
	}

	b.Update(runes("x"))
	pins := store.Snapshot().PainSnapshot().PinLocations
	if len(pins) != 2 {
		t.Fatalf("Expected 2 pins, got %d", len(pins))
	}
	for _, p := range pins {
		if p.ID == first {
			t.Errorf("Expected first pin removed")
		}
	}
}

func TestPinBoard_InactiveIgnoresKeys(t *testing.T) {
	b, store := newTestBoard()
	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	b.Update(runes("a"))

	if n := len(store.Snapshot().PainSnapshot().PinLocations); n != 0 {
		t.Errorf("Expected no pins from an inactive board, got %d", n)
	}
}

func TestPinBoard_View(t *testing.T) {
	b, _ := newTestBoard()
	if !strings.Contains(b.View(), "No pins placed") {
		t.Errorf("Expected empty pin list")
	}

	b.Update(runes("a"))
	view := b.View()
	if !strings.Contains(view, "#1: Unlabeled") {
		t.Errorf("Expected unlabeled pin in list, got:\n%s", view)
	}
}

func TestPctCell(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {10, 5}, {BoardCols - 1, BoardRows - 1}} {
		x, y := CellPct(c[0], c[1])
		cx, cy := PctCell(x, y)
		if cx != c[0] || cy != c[1] {
			t.Errorf("Expected round trip to %v, got (%d,%d)", c, cx, cy)
		}
	}
	if cx, cy := PctCell(100, 100); cx != BoardCols-1 || cy != BoardRows-1 {
		t.Errorf("Expected 100%% to clamp to the last cell, got (%d,%d)", cx, cy)
	}
}
