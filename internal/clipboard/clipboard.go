// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard: unsupported on this system")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard through xclip, xsel, wl-copy, pbcopy or
// the Windows API, whichever is present.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard, used by tests and headless runs.
type Memory struct {
	mu   sync.Mutex
	text string
	Err  error
}

// WriteAll implements Writer. It fails with Err when set.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
