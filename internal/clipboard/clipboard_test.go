package clipboard

import (
	"errors"
	"testing"
)

func TestMemory_WriteAll(t *testing.T) {
	var m Memory
	if err := m.WriteAll("hello"); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if got := m.Text(); got != "hello" {
		t.Errorf("Expected 'hello', got '%s'", got)
	}
}

func TestMemory_Error(t *testing.T) {
	boom := errors.New("boom")
	m := Memory{Err: boom}
	m.text = "before"

	if err := m.WriteAll("after"); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if got := m.Text(); got != "before" {
		t.Errorf("Expected text unchanged on error, got '%s'", got)
	}
}

var (
	_ Writer = System{}
	_ Writer = (*Memory)(nil)
)
