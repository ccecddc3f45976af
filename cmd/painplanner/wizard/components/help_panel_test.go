package components

import (
	"strings"
	"testing"
)

func TestHelpPanel_Badge(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Section 3: Impact on Daily Life", "Section 3 · Impact on Daily Life"},
		{"Section 5: Coping & Management Strategies", "Section 5 · Coping & Management Strategies"},
		{"Summary Report", "Summary Report"},
		{"Section 2", "Section 2"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := NewHelpPanel(tt.title).Badge(); got != tt.want {
				t.Errorf("Expected badge '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestHelpPanel_ViewShowsSectionAndQuestion(t *testing.T) {
	h := NewHelpPanel("Section 1: Your Pain Snapshot")
	h.SetWidth(100)
	h.SetField("currentPainIntensity")

	view := h.View()
	for _, want := range []string{"Section 1 · Your Pain Snapshot", "CURRENT PAIN INTENSITY", "How strong your pain is right now."} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain '%s', got:\n%s", want, view)
		}
	}
	if strings.Index(view, "Section 1") > strings.Index(view, "CURRENT PAIN INTENSITY") {
		t.Errorf("Expected the section badge above the question, got:\n%s", view)
	}
}

func TestHelpPanel_NestedQuestionUsesParentHelp(t *testing.T) {
	h := NewHelpPanel("Section 3: Impact on Daily Life")
	h.SetWidth(100)
	h.SetField("specificLifeDomains.sleep")

	if view := h.View(); !strings.Contains(view, "LIFE AREAS") {
		t.Errorf("Expected the life areas help, got:\n%s", view)
	}
}

func TestHelpPanel_NoFocusedQuestion(t *testing.T) {
	h := NewHelpPanel("Section 6: Personal Goals & Action Planning")
	h.SetWidth(100)

	view := h.View()
	if !strings.Contains(view, "Move to a question") {
		t.Errorf("Expected the placeholder, got:\n%s", view)
	}
	if !strings.Contains(view, "Section 6") {
		t.Errorf("Expected the badge even without a question, got:\n%s", view)
	}
}

func TestHelpPanel_MinimumWidth(t *testing.T) {
	h := NewHelpPanel("Section 1: Your Pain Snapshot")
	h.SetWidth(5)
	if h.width != 24 {
		t.Errorf("Expected width 24, got %d", h.width)
	}
}
