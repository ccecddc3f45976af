// Package report projects an answer snapshot into the email text summary
// and into the block document used for the on-screen report and the PDF.
// Both projections read the same section content so they never drift.
package report

import (
	"fmt"
	"strings"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// Placeholders for unanswered questions.
const (
	NotSpecified       = "Not specified"
	NoneSelected       = "None selected"
	NoneRated          = "None rated"
	NoPins             = "None"
	Unlabeled          = "Unlabeled"
	DetailsNotProvided = "Details not provided"
)

// Rating renders "n / 10" or the placeholder.
func Rating(r assessment.Rating) string {
	v, ok := r.Value()
	if !ok {
		return NotSpecified
	}
	return fmt.Sprintf("%d / %d", v, assessment.MaxRating)
}

// List joins values with ", " after resolving each through table (raw value
// when unknown), or returns empty when the list is empty.
func List(values []string, table *labels.Table, empty string) string {
	if len(values) == 0 {
		return empty
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v
		if table != nil {
			out[i] = table.Resolve(v, v)
		}
	}
	return strings.Join(out, ", ")
}

// TriState renders a yes/no answer with its optional description.
func TriState(t assessment.TriState, desc string) string {
	switch t {
	case assessment.Yes:
		if desc == "" {
			desc = DetailsNotProvided
		}
		return "Yes: " + desc
	case assessment.No:
		return "No"
	default:
		return NotSpecified
	}
}

// Enum resolves a stored choice through its label table.
func Enum(table labels.Table, value string) string {
	return table.Resolve(value, NotSpecified)
}

// FreeText returns free text or the placeholder.
func FreeText(s string) string {
	if s == "" {
		return NotSpecified
	}
	return s
}

// Pins renders "#1: label; #2: Unlabeled" in display order.
func Pins(pins []assessment.Pin) string {
	if len(pins) == 0 {
		return NoPins
	}
	out := make([]string, len(pins))
	for i, p := range pins {
		label := p.Label
		if label == "" {
			label = Unlabeled
		}
		out[i] = fmt.Sprintf("#%d: %s", i+1, label)
	}
	return strings.Join(out, "; ")
}
