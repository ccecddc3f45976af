package assessment

// Section names one section of a Snapshot and knows how to read and replace
// its record.
type Section[S Record] struct {
	key SectionKey
	get func(*Snapshot) *S
	put func(*Snapshot, *S)
}

// Key returns the section identifier.
func (sec Section[S]) Key() SectionKey { return sec.key }

// Get returns a copy of the section record held by snap.
func (sec Section[S]) Get(snap *Snapshot) S { return *sec.get(snap) }

var (
	PainSnapshotSection = Section[PainSnapshot]{
		key: KeyPainSnapshot,
		get: func(s *Snapshot) *PainSnapshot { return s.painSnapshot },
		put: func(s *Snapshot, r *PainSnapshot) { s.painSnapshot = r },
	}
	PainPatternsSection = Section[PainPatternsTriggers]{
		key: KeyPainPatterns,
		get: func(s *Snapshot) *PainPatternsTriggers { return s.painPatterns },
		put: func(s *Snapshot, r *PainPatternsTriggers) { s.painPatterns = r },
	}
	ImpactSection = Section[ImpactDailyLife]{
		key: KeyImpact,
		get: func(s *Snapshot) *ImpactDailyLife { return s.impact },
		put: func(s *Snapshot, r *ImpactDailyLife) { s.impact = r },
	}
	EmotionalSection = Section[EmotionalWellbeing]{
		key: KeyEmotional,
		get: func(s *Snapshot) *EmotionalWellbeing { return s.emotional },
		put: func(s *Snapshot, r *EmotionalWellbeing) { s.emotional = r },
	}
	CopingSection = Section[CopingManagement]{
		key: KeyCoping,
		get: func(s *Snapshot) *CopingManagement { return s.coping },
		put: func(s *Snapshot, r *CopingManagement) { s.coping = r },
	}
	GoalsSection = Section[PersonalGoalsActionPlanner]{
		key: KeyPersonalGoals,
		get: func(s *Snapshot) *PersonalGoalsActionPlanner { return s.personalGoals },
		put: func(s *Snapshot, r *PersonalGoalsActionPlanner) { s.personalGoals = r },
	}
)

// Field addresses one field of type V inside section record S.
type Field[S Record, V any] struct {
	section Section[S]
	key     string
	ptr     func(*S) *V
}

// Key returns the field's stable name within its section.
func (f Field[S, V]) Key() string { return f.key }

// Section returns the key of the section holding the field.
func (f Field[S, V]) Section() SectionKey { return f.section.key }

// NestedField addresses child field V of record-valued field P in section S.
type NestedField[S Record, P any, V any] struct {
	parent Field[S, P]
	key    string
	ptr    func(*P) *V
}

// Key returns the child's stable name within its parent.
func (n NestedField[S, P, V]) Key() string { return n.key }

// Parent returns the record-valued field holding the child.
func (n NestedField[S, P, V]) Parent() Field[S, P] { return n.parent }

func newField[S Record, V any](sec Section[S], key string, ptr func(*S) *V) Field[S, V] {
	return Field[S, V]{section: sec, key: key, ptr: ptr}
}

func newNested[S Record, P any, V any](parent Field[S, P], key string, ptr func(*P) *V) NestedField[S, P, V] {
	return NestedField[S, P, V]{parent: parent, key: key, ptr: ptr}
}

// Section 1.
var (
	CurrentPainIntensity = newField(PainSnapshotSection, "currentPainIntensity", func(r *PainSnapshot) *Rating { return &r.CurrentPainIntensity })
	PrimaryPainLocation  = newField(PainSnapshotSection, "primaryPainLocation", func(r *PainSnapshot) *[]string { return &r.PrimaryPainLocation })
	PinLocations         = newField(PainSnapshotSection, "pinLocations", func(r *PainSnapshot) *[]Pin { return &r.PinLocations })
	PainDescriptors      = newField(PainSnapshotSection, "painDescriptors", func(r *PainSnapshot) *[]string { return &r.PainDescriptors })
	OtherPainDescriptor  = newField(PainSnapshotSection, "otherPainDescriptor", func(r *PainSnapshot) *string { return &r.OtherPainDescriptor })
)

// Section 2.
var (
	AvgPainLast7Days         = newField(PainPatternsSection, "avgPainLast7Days", func(r *PainPatternsTriggers) *Rating { return &r.AvgPainLast7Days })
	WorstPainLast7Days       = newField(PainPatternsSection, "worstPainLast7Days", func(r *PainPatternsTriggers) *Rating { return &r.WorstPainLast7Days })
	LeastPainLast7Days       = newField(PainPatternsSection, "leastPainLast7Days", func(r *PainPatternsTriggers) *Rating { return &r.LeastPainLast7Days })
	PainWorstTime            = newField(PainPatternsSection, "painWorstTime", func(r *PainPatternsTriggers) *TimeOfDay { return &r.PainWorstTime })
	ActivitiesWorstPain      = newField(PainPatternsSection, "activitiesWorstPain", func(r *PainPatternsTriggers) *TriState { return &r.ActivitiesWorstPain })
	ActivitiesWorstPainDesc  = newField(PainPatternsSection, "activitiesWorstPainDesc", func(r *PainPatternsTriggers) *string { return &r.ActivitiesWorstPainDesc })
	ActivitiesBetterPain     = newField(PainPatternsSection, "activitiesBetterPain", func(r *PainPatternsTriggers) *TriState { return &r.ActivitiesBetterPain })
	ActivitiesBetterPainDesc = newField(PainPatternsSection, "activitiesBetterPainDesc", func(r *PainPatternsTriggers) *string { return &r.ActivitiesBetterPainDesc })
)

// Section 3.
var (
	GeneralInterference = newField(ImpactSection, "generalInterference", func(r *ImpactDailyLife) *Rating { return &r.GeneralInterference })
	SpecificLifeDomains = newField(ImpactSection, "specificLifeDomains", func(r *ImpactDailyLife) *DomainRatings { return &r.SpecificLifeDomains })

	PhysicalTasksImpact        = newNested(SpecificLifeDomains, "physicalTasks", func(d *DomainRatings) *Rating { return &d.PhysicalTasks })
	SleepImpact                = newNested(SpecificLifeDomains, "sleep", func(d *DomainRatings) *Rating { return &d.Sleep })
	MoodImpact                 = newNested(SpecificLifeDomains, "mood", func(d *DomainRatings) *Rating { return &d.Mood })
	ConcentrationImpact        = newNested(SpecificLifeDomains, "concentration", func(d *DomainRatings) *Rating { return &d.Concentration })
	SocialActivitiesImpact     = newNested(SpecificLifeDomains, "socialActivities", func(d *DomainRatings) *Rating { return &d.SocialActivities })
	HobbiesImpact              = newNested(SpecificLifeDomains, "hobbies", func(d *DomainRatings) *Rating { return &d.Hobbies })
	WorkResponsibilitiesImpact = newNested(SpecificLifeDomains, "workResponsibilities", func(d *DomainRatings) *Rating { return &d.WorkResponsibilities })
)

// Section 4.
var (
	EmotionalResponseField = newField(EmotionalSection, "emotionalResponse", func(r *EmotionalWellbeing) *EmotionalResponse { return &r.EmotionalResponse })
	PositiveOutlook        = newField(EmotionalSection, "positiveOutlook", func(r *EmotionalWellbeing) *Likert { return &r.PositiveOutlook })

	FeltFrustrated = newNested(EmotionalResponseField, "frustrated", func(e *EmotionalResponse) *Likert { return &e.Frustrated })
	FeltAnxious    = newNested(EmotionalResponseField, "anxious", func(e *EmotionalResponse) *Likert { return &e.Anxious })
	FeltHopeless   = newNested(EmotionalResponseField, "hopeless", func(e *EmotionalResponse) *Likert { return &e.Hopeless })
	FeltAngry      = newNested(EmotionalResponseField, "angry", func(e *EmotionalResponse) *Likert { return &e.Angry })
)

// Section 5.
var (
	CurrentStrategies         = newField(CopingSection, "currentStrategies", func(r *CopingManagement) *[]string { return &r.CurrentStrategies })
	OtherStrategy             = newField(CopingSection, "otherStrategy", func(r *CopingManagement) *string { return &r.OtherStrategy })
	MainStrategiesToRate      = newField(CopingSection, "mainStrategiesToRate", func(r *CopingManagement) *[]string { return &r.MainStrategiesToRate })
	MainStrategiesHelpfulness = newField(CopingSection, "mainStrategiesHelpfulness", func(r *CopingManagement) *[]StrategyHelpfulness { return &r.MainStrategiesHelpfulness })
	ConfidenceInManagement    = newField(CopingSection, "confidenceInManagement", func(r *CopingManagement) *Rating { return &r.ConfidenceInManagement })
)

// Section 6.
var (
	MostImpactfulLimitation = newField(GoalsSection, "mostImpactfulLimitation", func(r *PersonalGoalsActionPlanner) *string { return &r.MostImpactfulLimitation })
	SmallAchievableGoal     = newField(GoalsSection, "smallAchievableGoal", func(r *PersonalGoalsActionPlanner) *string { return &r.SmallAchievableGoal })
	SupportNeeded           = newField(GoalsSection, "supportNeeded", func(r *PersonalGoalsActionPlanner) *[]string { return &r.SupportNeeded })
	OtherSupportNeeded      = newField(GoalsSection, "otherSupportNeeded", func(r *PersonalGoalsActionPlanner) *string { return &r.OtherSupportNeeded })
)

// DomainField returns the nested rating field for a life-domain key.
func DomainField(key string) (NestedField[ImpactDailyLife, DomainRatings, Rating], bool) {
	f, ok := domainFields[key]
	return f, ok
}

// EmotionField returns the nested Likert field for an emotion key.
func EmotionField(key string) (NestedField[EmotionalWellbeing, EmotionalResponse, Likert], bool) {
	f, ok := emotionFields[key]
	return f, ok
}

var domainFields = map[string]NestedField[ImpactDailyLife, DomainRatings, Rating]{
	PhysicalTasksImpact.key:        PhysicalTasksImpact,
	SleepImpact.key:                SleepImpact,
	MoodImpact.key:                 MoodImpact,
	ConcentrationImpact.key:        ConcentrationImpact,
	SocialActivitiesImpact.key:     SocialActivitiesImpact,
	HobbiesImpact.key:              HobbiesImpact,
	WorkResponsibilitiesImpact.key: WorkResponsibilitiesImpact,
}

var emotionFields = map[string]NestedField[EmotionalWellbeing, EmotionalResponse, Likert]{
	FeltFrustrated.key: FeltFrustrated,
	FeltAnxious.key:    FeltAnxious,
	FeltHopeless.key:   FeltHopeless,
	FeltAngry.key:      FeltAngry,
}
