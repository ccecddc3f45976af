package assessment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxRating is the top of every 0-10 scale.
const MaxRating = 10

// Rating is a 0-10 answer. The zero value means the question was skipped,
// which is distinct from an explicit 0.
type Rating struct {
	value uint8
	set   bool
}

// Unrated is the skipped rating.
var Unrated = Rating{}

// Rate returns a set rating, clamping n into 0..10.
func Rate(n int) Rating {
	switch {
	case n < 0:
		n = 0
	case n > MaxRating:
		n = MaxRating
	}
	return Rating{value: uint8(n), set: true}
}

// Value returns the rating and whether it was answered.
func (r Rating) Value() (int, bool) {
	return int(r.value), r.set
}

// IsSet reports whether the rating was answered.
func (r Rating) IsSet() bool {
	return r.set
}

// UnmarshalYAML accepts an integer; null leaves the rating unset.
func (r *Rating) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" || node.Value == "" {
		*r = Unrated
		return nil
	}
	n, err := strconv.Atoi(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: rating %q is not an integer", node.Line, node.Value)
	}
	*r = Rate(n)
	return nil
}

// Likert is a five-point frequency answer. The empty string is unset.
type Likert string

const (
	LikertNever     Likert = "Never"
	LikertRarely    Likert = "Rarely"
	LikertSometimes Likert = "Sometimes"
	LikertOften     Likert = "Often"
	LikertVeryOften Likert = "Very Often"
)

// TimeOfDay is when pain tends to be worst. The empty string is unset.
type TimeOfDay string

const (
	Morning           TimeOfDay = "Morning"
	Afternoon         TimeOfDay = "Afternoon"
	Evening           TimeOfDay = "Evening"
	Night             TimeOfDay = "Night"
	NoSpecificPattern TimeOfDay = "No specific pattern"
	VariesGreatly     TimeOfDay = "Varies greatly"
)

// TriState is a yes/no answer that may not have been given yet.
type TriState int

const (
	Unanswered TriState = iota
	Yes
	No
)

func (t TriState) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return ""
	}
}

// ParseTriState maps "yes"/"no" (any case) to a TriState; anything else is
// Unanswered.
func ParseTriState(s string) TriState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true":
		return Yes
	case "no", "false":
		return No
	default:
		return Unanswered
	}
}

// UnmarshalYAML accepts yes/no (or booleans); null is Unanswered.
func (t *TriState) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected yes or no", node.Line)
	}
	*t = ParseTriState(node.Value)
	return nil
}

// View is the body diagram orientation a pin was placed on.
type View string

const (
	ViewAnterior  View = "anterior"
	ViewPosterior View = "posterior"
	ViewLateral   View = "lateral"
)

// Pin is a labelled marker on the body diagram. Coordinates are percentages
// of the diagram's width and height.
type Pin struct {
	ID    string  `yaml:"id"`
	View  View    `yaml:"view"`
	XPct  float64 `yaml:"xPct"`
	YPct  float64 `yaml:"yPct"`
	Label string  `yaml:"label"`
}

// ClampPct bounds v to [0, 100]. NaN becomes 0.
func ClampPct(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

// StrategyHelpfulness pairs a coping strategy with how helpful it is.
type StrategyHelpfulness struct {
	Strategy    string `yaml:"strategy"`
	Helpfulness Rating `yaml:"helpfulness"`
}
