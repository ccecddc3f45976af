package assessment

// SectionKey identifies one of the six questionnaire sections.
type SectionKey string

const (
	KeyPainSnapshot  SectionKey = "painSnapshot"
	KeyPainPatterns  SectionKey = "painPatternsTriggers"
	KeyImpact        SectionKey = "impactDailyLife"
	KeyEmotional     SectionKey = "emotionalWellbeing"
	KeyCoping        SectionKey = "copingManagement"
	KeyPersonalGoals SectionKey = "personalGoalsActionPlanner"
)

// SectionKeys lists every section in questionnaire order.
func SectionKeys() []SectionKey {
	return []SectionKey{
		KeyPainSnapshot,
		KeyPainPatterns,
		KeyImpact,
		KeyEmotional,
		KeyCoping,
		KeyPersonalGoals,
	}
}

// Record is one section's answers. The set of implementations is closed.
type Record interface {
	Key() SectionKey
	isRecord()
}

// PainSnapshot holds section 1: current pain and where it is.
type PainSnapshot struct {
	CurrentPainIntensity Rating   `yaml:"currentPainIntensity"`
	PrimaryPainLocation  []string `yaml:"primaryPainLocation"`
	PinLocations         []Pin    `yaml:"pinLocations"`
	PainDescriptors      []string `yaml:"painDescriptors"`
	OtherPainDescriptor  string   `yaml:"otherPainDescriptor"`
}

// PainPatternsTriggers holds section 2: how pain varied over the last week.
type PainPatternsTriggers struct {
	AvgPainLast7Days         Rating    `yaml:"avgPainLast7Days"`
	WorstPainLast7Days       Rating    `yaml:"worstPainLast7Days"`
	LeastPainLast7Days       Rating    `yaml:"leastPainLast7Days"`
	PainWorstTime            TimeOfDay `yaml:"painWorstTime"`
	ActivitiesWorstPain      TriState  `yaml:"activitiesWorstPain"`
	ActivitiesWorstPainDesc  string    `yaml:"activitiesWorstPainDesc"`
	ActivitiesBetterPain     TriState  `yaml:"activitiesBetterPain"`
	ActivitiesBetterPainDesc string    `yaml:"activitiesBetterPainDesc"`
}

// DomainRatings rates interference per life domain.
type DomainRatings struct {
	PhysicalTasks        Rating `yaml:"physicalTasks"`
	Sleep                Rating `yaml:"sleep"`
	Mood                 Rating `yaml:"mood"`
	Concentration        Rating `yaml:"concentration"`
	SocialActivities     Rating `yaml:"socialActivities"`
	Hobbies              Rating `yaml:"hobbies"`
	WorkResponsibilities Rating `yaml:"workResponsibilities"`
}

// ImpactDailyLife holds section 3.
type ImpactDailyLife struct {
	GeneralInterference Rating        `yaml:"generalInterference"`
	SpecificLifeDomains DomainRatings `yaml:"specificLifeDomains"`
}

// EmotionalResponse records how often each feeling came up.
type EmotionalResponse struct {
	Frustrated Likert `yaml:"frustrated"`
	Anxious    Likert `yaml:"anxious"`
	Hopeless   Likert `yaml:"hopeless"`
	Angry      Likert `yaml:"angry"`
}

// EmotionalWellbeing holds section 4.
type EmotionalWellbeing struct {
	EmotionalResponse EmotionalResponse `yaml:"emotionalResponse"`
	PositiveOutlook   Likert            `yaml:"positiveOutlook"`
}

// CopingManagement holds section 5. MainStrategiesToRate is a subset of
// CurrentStrategies with at most three entries, and
// MainStrategiesHelpfulness has exactly one pair per strategy to rate.
type CopingManagement struct {
	CurrentStrategies         []string              `yaml:"currentStrategies"`
	OtherStrategy             string                `yaml:"otherStrategy"`
	MainStrategiesToRate      []string              `yaml:"mainStrategiesToRate"`
	MainStrategiesHelpfulness []StrategyHelpfulness `yaml:"mainStrategiesHelpfulness"`
	ConfidenceInManagement    Rating                `yaml:"confidenceInManagement"`
}

// PersonalGoalsActionPlanner holds section 6.
type PersonalGoalsActionPlanner struct {
	MostImpactfulLimitation string   `yaml:"mostImpactfulLimitation"`
	SmallAchievableGoal     string   `yaml:"smallAchievableGoal"`
	SupportNeeded           []string `yaml:"supportNeeded"`
	OtherSupportNeeded      string   `yaml:"otherSupportNeeded"`
}

func (PainSnapshot) Key() SectionKey               { return KeyPainSnapshot }
func (PainPatternsTriggers) Key() SectionKey       { return KeyPainPatterns }
func (ImpactDailyLife) Key() SectionKey            { return KeyImpact }
func (EmotionalWellbeing) Key() SectionKey         { return KeyEmotional }
func (CopingManagement) Key() SectionKey           { return KeyCoping }
func (PersonalGoalsActionPlanner) Key() SectionKey { return KeyPersonalGoals }

func (PainSnapshot) isRecord()               {}
func (PainPatternsTriggers) isRecord()       {}
func (ImpactDailyLife) isRecord()            {}
func (EmotionalWellbeing) isRecord()         {}
func (CopingManagement) isRecord()           {}
func (PersonalGoalsActionPlanner) isRecord() {}

// Domain returns the rating for a life-domain key.
func (d DomainRatings) Domain(key string) (Rating, bool) {
	f, ok := domainFields[key]
	if !ok {
		return Unrated, false
	}
	return *f.ptr(&d), true
}

// Emotion returns the answer for an emotion key.
func (e EmotionalResponse) Emotion(key string) (Likert, bool) {
	f, ok := emotionFields[key]
	if !ok {
		return "", false
	}
	return *f.ptr(&e), true
}
