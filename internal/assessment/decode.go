package assessment

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// answers is the YAML layout of a filled-in questionnaire. Missing sections
// keep their defaults.
type answers struct {
	PainSnapshot  *PainSnapshot               `yaml:"painSnapshot"`
	PainPatterns  *PainPatternsTriggers       `yaml:"painPatternsTriggers"`
	Impact        *ImpactDailyLife            `yaml:"impactDailyLife"`
	Emotional     *EmotionalWellbeing         `yaml:"emotionalWellbeing"`
	Coping        *CopingManagement           `yaml:"copingManagement"`
	PersonalGoals *PersonalGoalsActionPlanner `yaml:"personalGoalsActionPlanner"`
}

// Decode reads answers from YAML. Unknown keys are rejected. Pin positions
// are clamped, pins without an id get one, and the coping rating invariants
// are restored.
func Decode(r io.Reader) (*Snapshot, error) {
	var doc answers
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}

	var ms []Mutation
	if doc.PainSnapshot != nil {
		p := *doc.PainSnapshot
		ms = append(ms, Update(PainSnapshotSection, func(PainSnapshot) PainSnapshot {
			return normalizePainSnapshot(p)
		}))
	}
	if doc.PainPatterns != nil {
		ms = append(ms, Update(PainPatternsSection, replace(*doc.PainPatterns)))
	}
	if doc.Impact != nil {
		ms = append(ms, Update(ImpactSection, replace(*doc.Impact)))
	}
	if doc.Emotional != nil {
		ms = append(ms, Update(EmotionalSection, replace(*doc.Emotional)))
	}
	if doc.Coping != nil {
		c := *doc.Coping
		ms = append(ms, Update(CopingSection, func(CopingManagement) CopingManagement {
			return normalizeCoping(c)
		}))
	}
	if doc.PersonalGoals != nil {
		g := *doc.PersonalGoals
		if g.SupportNeeded == nil {
			g.SupportNeeded = []string{}
		}
		ms = append(ms, Update(GoalsSection, replace(g)))
	}

	return Default().Apply(ms...), nil
}

// LoadFile decodes an answers file.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answers: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func replace[S Record](v S) func(S) S {
	return func(S) S { return v }
}

func normalizePainSnapshot(p PainSnapshot) PainSnapshot {
	if p.PrimaryPainLocation == nil {
		p.PrimaryPainLocation = []string{}
	}
	if p.PainDescriptors == nil {
		p.PainDescriptors = []string{}
	}
	pins := make([]Pin, 0, len(p.PinLocations))
	seen := make(map[string]bool, len(p.PinLocations))
	for _, pin := range p.PinLocations {
		// Pin ids address mutations, so a repeated id gets a fresh one.
		if pin.ID == "" || seen[pin.ID] {
			pin.ID = uuid.NewString()
		}
		seen[pin.ID] = true
		if pin.View == "" {
			pin.View = ViewAnterior
		}
		pin.XPct = ClampPct(pin.XPct)
		pin.YPct = ClampPct(pin.YPct)
		pins = append(pins, pin)
	}
	p.PinLocations = pins
	return p
}
