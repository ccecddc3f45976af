// Package assessment holds the questionnaire answers and the update protocol
// that produces new answer snapshots from typed field descriptors.
package assessment

// Snapshot is an immutable set of answers for all six sections. Updates
// produce a new Snapshot that shares every untouched section with the old one.
type Snapshot struct {
	painSnapshot  *PainSnapshot
	painPatterns  *PainPatternsTriggers
	impact        *ImpactDailyLife
	emotional     *EmotionalWellbeing
	coping        *CopingManagement
	personalGoals *PersonalGoalsActionPlanner
}

// Default returns the canonical empty snapshot: every rating unset, every
// choice empty, every list empty.
func Default() *Snapshot {
	return &Snapshot{
		painSnapshot: &PainSnapshot{
			PrimaryPainLocation: []string{},
			PinLocations:        []Pin{},
			PainDescriptors:     []string{},
		},
		painPatterns: &PainPatternsTriggers{},
		impact:       &ImpactDailyLife{},
		emotional:    &EmotionalWellbeing{},
		coping: &CopingManagement{
			CurrentStrategies:         []string{},
			MainStrategiesToRate:      []string{},
			MainStrategiesHelpfulness: []StrategyHelpfulness{},
		},
		personalGoals: &PersonalGoalsActionPlanner{
			SupportNeeded: []string{},
		},
	}
}

func (s *Snapshot) PainSnapshot() PainSnapshot                { return *s.painSnapshot }
func (s *Snapshot) PainPatterns() PainPatternsTriggers        { return *s.painPatterns }
func (s *Snapshot) Impact() ImpactDailyLife                   { return *s.impact }
func (s *Snapshot) Emotional() EmotionalWellbeing             { return *s.emotional }
func (s *Snapshot) Coping() CopingManagement                  { return *s.coping }
func (s *Snapshot) PersonalGoals() PersonalGoalsActionPlanner { return *s.personalGoals }

// Record returns the answers of one section.
func (s *Snapshot) Record(key SectionKey) (Record, bool) {
	switch key {
	case KeyPainSnapshot:
		return s.PainSnapshot(), true
	case KeyPainPatterns:
		return s.PainPatterns(), true
	case KeyImpact:
		return s.Impact(), true
	case KeyEmotional:
		return s.Emotional(), true
	case KeyCoping:
		return s.Coping(), true
	case KeyPersonalGoals:
		return s.PersonalGoals(), true
	}
	return nil, false
}

// Records returns every section in questionnaire order.
func (s *Snapshot) Records() []Record {
	out := make([]Record, 0, 6)
	for _, k := range SectionKeys() {
		r, _ := s.Record(k)
		out = append(out, r)
	}
	return out
}

// Shares reports whether both snapshots hold the very same record for key.
// Used to observe structural sharing.
func (s *Snapshot) Shares(other *Snapshot, key SectionKey) bool {
	switch key {
	case KeyPainSnapshot:
		return s.painSnapshot == other.painSnapshot
	case KeyPainPatterns:
		return s.painPatterns == other.painPatterns
	case KeyImpact:
		return s.impact == other.impact
	case KeyEmotional:
		return s.emotional == other.emotional
	case KeyCoping:
		return s.coping == other.coping
	case KeyPersonalGoals:
		return s.personalGoals == other.personalGoals
	}
	return false
}

// Apply returns a new snapshot with every mutation applied in order. The
// receiver is not modified.
func (s *Snapshot) Apply(ms ...Mutation) *Snapshot {
	if len(ms) == 0 {
		return s
	}
	next := *s
	for _, m := range ms {
		if m.apply != nil {
			m.apply(&next)
		}
	}
	return &next
}
