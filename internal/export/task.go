package export

import (
	"context"
	"errors"
	"sync"
)

// ErrBusy is returned when an export is already pending.
var ErrBusy = errors.New("export already in progress")

// Task admits at most one export at a time. The zero value is ready to use.
type Task struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

// Start claims the task and derives a cancellable context from parent. The
// returned finish func releases the task; it is safe to call more than once.
func (t *Task) Start(parent context.Context) (context.Context, func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return nil, nil, ErrBusy
	}

	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel

	var once sync.Once
	finish := func() {
		once.Do(func() {
			cancel()
			t.mu.Lock()
			t.cancel = nil
			t.mu.Unlock()
		})
	}
	return ctx, finish, nil
}

// Pending reports whether an export is running.
func (t *Task) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Cancel asks the running export to stop. The task stays pending until the
// export calls its finish func.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel == nil {
		return false
	}
	t.cancel()
	return true
}
