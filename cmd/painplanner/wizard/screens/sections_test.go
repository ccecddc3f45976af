package screens

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
)

// countingStore wraps a store and counts dispatch calls.
type countingStore struct {
	*assessment.Store
	calls int
}

func newCountingStore() *countingStore {
	return &countingStore{Store: assessment.NewStore()}
}

func (c *countingStore) dispatch(ms ...assessment.Mutation) {
	c.calls++
	c.Store.Dispatch(ms...)
}

func TestRatingOptions(t *testing.T) {
	opts := ratingOptions()
	if len(opts) != assessment.MaxRating+2 {
		t.Fatalf("Expected %d options, got %d", assessment.MaxRating+2, len(opts))
	}
	if opts[0].Value != unset {
		t.Errorf("Expected first option to be unset, got %d", opts[0].Value)
	}
	if opts[1].Value != 0 || opts[len(opts)-1].Value != assessment.MaxRating {
		t.Errorf("Expected options 0..10 after unset, got %d..%d", opts[1].Value, opts[len(opts)-1].Value)
	}
}

func TestRatingConversion(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  assessment.Rating
	}{
		{"unset", unset, assessment.Unrated},
		{"zero", 0, assessment.Rate(0)},
		{"ten", 10, assessment.Rate(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toRating(tt.value)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if back := ratingValue(got); back != tt.value {
				t.Errorf("Expected round trip to %d, got %d", tt.value, back)
			}
		})
	}
}

func TestEnumOptions_StartWithNotSpecified(t *testing.T) {
	opts := enumOptions(labels.TimeOfDay)
	if opts[0].Value != "" {
		t.Errorf("Expected empty first value, got %q", opts[0].Value)
	}
	if len(opts) != len(labels.TimeOfDay.Values())+1 {
		t.Errorf("Expected %d options, got %d", len(labels.TimeOfDay.Values())+1, len(opts))
	}
}

func TestCloneList_NilBecomesEmpty(t *testing.T) {
	got := cloneList(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil list, got %#v", got)
	}
}

func TestSync_NoChangesNoDispatch(t *testing.T) {
	st := newCountingStore()
	snap := func() *assessment.Snapshot { return st.Snapshot() }

	syncs := map[string]func(){
		"pain snapshot": NewPainSnapshotScreen("s1", func() assessment.PainSnapshot { return snap().PainSnapshot() }, st.dispatch).sync,
		"patterns":      NewPainPatternsScreen("s2", func() assessment.PainPatternsTriggers { return snap().PainPatterns() }, st.dispatch).sync,
		"impact":        NewImpactScreen("s3", func() assessment.ImpactDailyLife { return snap().Impact() }, st.dispatch).sync,
		"emotional":     NewEmotionalScreen("s4", func() assessment.EmotionalWellbeing { return snap().Emotional() }, st.dispatch).sync,
		"coping":        NewCopingScreen("s5", func() assessment.CopingManagement { return snap().Coping() }, st.dispatch).sync,
		"goals":         NewGoalsScreen("s6", func() assessment.PersonalGoalsActionPlanner { return snap().PersonalGoals() }, st.dispatch).sync,
	}

	for name, sync := range syncs {
		sync()
		if st.calls != 0 {
			t.Errorf("%s: expected no dispatch for untouched form, got %d", name, st.calls)
		}
	}
}

func TestPainPatternsScreen_Sync(t *testing.T) {
	st := newCountingStore()
	s := NewPainPatternsScreen("Section 2", func() assessment.PainPatternsTriggers {
		return st.Snapshot().PainPatterns()
	}, st.dispatch)

	s.avg = 7
	s.worstTime = string(assessment.Evening)
	s.worse = assessment.Yes
	s.worseDesc = "stairs"
	s.sync()

	got := st.Snapshot().PainPatterns()
	if got.AvgPainLast7Days != assessment.Rate(7) {
		t.Errorf("Expected average 7, got %v", got.AvgPainLast7Days)
	}
	if got.WorstPainLast7Days.IsSet() {
		t.Errorf("Expected worst pain to stay unset")
	}
	if got.PainWorstTime != assessment.Evening {
		t.Errorf("Expected Evening, got %q", got.PainWorstTime)
	}
	if got.ActivitiesWorstPain != assessment.Yes || got.ActivitiesWorstPainDesc != "stairs" {
		t.Errorf("Expected yes/stairs, got %v/%q", got.ActivitiesWorstPain, got.ActivitiesWorstPainDesc)
	}
	if st.calls != 1 {
		t.Errorf("Expected changes batched into one dispatch, got %d", st.calls)
	}
}

func TestImpactScreen_SyncDomain(t *testing.T) {
	st := newCountingStore()
	s := NewImpactScreen("Section 3", func() assessment.ImpactDailyLife {
		return st.Snapshot().Impact()
	}, st.dispatch)

	idx := slices.Index(s.domainKeys, "sleep")
	if idx < 0 {
		t.Fatalf("Expected a sleep domain")
	}
	s.domains[idx] = 4
	s.sync()

	got := st.Snapshot().Impact().SpecificLifeDomains
	if got.Sleep != assessment.Rate(4) {
		t.Errorf("Expected sleep 4, got %v", got.Sleep)
	}
	if got.Mood.IsSet() {
		t.Errorf("Expected sibling domains untouched")
	}
}

func TestEmotionalScreen_Sync(t *testing.T) {
	st := newCountingStore()
	s := NewEmotionalScreen("Section 4", func() assessment.EmotionalWellbeing {
		return st.Snapshot().Emotional()
	}, st.dispatch)

	idx := slices.Index(s.emotionKeys, "anxious")
	s.emotions[idx] = string(assessment.LikertOften)
	s.outlook = string(assessment.LikertRarely)
	s.sync()

	got := st.Snapshot().Emotional()
	if got.EmotionalResponse.Anxious != assessment.LikertOften {
		t.Errorf("Expected Often, got %q", got.EmotionalResponse.Anxious)
	}
	if got.EmotionalResponse.Angry != "" {
		t.Errorf("Expected angry unset, got %q", got.EmotionalResponse.Angry)
	}
	if got.PositiveOutlook != assessment.LikertRarely {
		t.Errorf("Expected Rarely, got %q", got.PositiveOutlook)
	}
}

func TestCopingScreen_Cascade(t *testing.T) {
	st := newCountingStore()
	s := NewCopingScreen("Section 5", func() assessment.CopingManagement {
		return st.Snapshot().Coping()
	}, st.dispatch)

	rest, heat := "Rest", "Heat/cold application"

	s.current = []string{rest, heat, labels.OtherOption}
	s.sync()
	if got := s.rateable(); !slices.Equal(got, []string{rest, heat}) {
		t.Errorf("Expected Other to be excluded from rating, got %v", got)
	}

	s.toRate = []string{rest, heat}
	s.sync()
	s.help[1] = 8
	s.sync()

	c := st.Snapshot().Coping()
	if h, _ := c.Helpfulness(heat); h != assessment.Rate(8) {
		t.Errorf("Expected heat rated 8, got %v", h)
	}

	// Dropping a current strategy prunes it from the rated list.
	s.current = []string{heat}
	s.sync()

	c = st.Snapshot().Coping()
	if !slices.Equal(c.MainStrategiesToRate, []string{heat}) {
		t.Errorf("Expected only heat left to rate, got %v", c.MainStrategiesToRate)
	}
	if !slices.Equal(s.toRate, []string{heat}) {
		t.Errorf("Expected form slots reloaded, got %v", s.toRate)
	}
	if s.help[0] != 8 || s.help[1] != unset {
		t.Errorf("Expected slots [8 unset], got %v", s.help)
	}
	if got := s.slotTitle(0); got != `Helpfulness of "Heat/cold application"` {
		t.Errorf("Unexpected slot title %q", got)
	}
	if got := s.slotTitle(2); got != "" {
		t.Errorf("Expected empty title for hidden slot, got %q", got)
	}
}

func TestCopingScreen_CapsRatedAtThree(t *testing.T) {
	st := newCountingStore()
	s := NewCopingScreen("Section 5", func() assessment.CopingManagement {
		return st.Snapshot().Coping()
	}, st.dispatch)

	all := labels.CopingStrategies.Values()[:4]
	s.current = slices.Clone(all)
	s.sync()
	s.toRate = slices.Clone(all)
	s.sync()

	c := st.Snapshot().Coping()
	if len(c.MainStrategiesToRate) != assessment.MaxStrategiesToRate {
		t.Errorf("Expected %d rated, got %d", assessment.MaxStrategiesToRate, len(c.MainStrategiesToRate))
	}
	if len(c.MainStrategiesHelpfulness) != len(c.MainStrategiesToRate) {
		t.Errorf("Expected one helpfulness pair per rated strategy")
	}
}

func TestGoalsScreen_Sync(t *testing.T) {
	st := newCountingStore()
	st.Dispatch(assessment.Set(assessment.SupportNeeded, []string{"Medical advice"}))

	s := NewGoalsScreen("Section 6", func() assessment.PersonalGoalsActionPlanner {
		return st.Snapshot().PersonalGoals()
	}, st.dispatch)
	if !slices.Equal(s.support, []string{"Medical advice"}) {
		t.Fatalf("Expected form to start from stored answers, got %v", s.support)
	}

	s.limitation = labels.GeneralInterference
	s.goal = "walk 10 minutes"
	s.support = nil
	s.sync()

	got := st.Snapshot().PersonalGoals()
	if got.MostImpactfulLimitation != labels.GeneralInterference {
		t.Errorf("Expected general interference, got %q", got.MostImpactfulLimitation)
	}
	if got.SmallAchievableGoal != "walk 10 minutes" {
		t.Errorf("Unexpected goal %q", got.SmallAchievableGoal)
	}
	if got.SupportNeeded == nil || len(got.SupportNeeded) != 0 {
		t.Errorf("Expected cleared support to be an empty list, got %#v", got.SupportNeeded)
	}
}

func TestPainSnapshotScreen_Board(t *testing.T) {
	st := newCountingStore()
	s := NewPainSnapshotScreen("Section 1", func() assessment.PainSnapshot {
		return st.Snapshot().PainSnapshot()
	}, st.dispatch)

	s.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if !s.Board().Active() {
		t.Fatalf("Expected Ctrl+B to focus the board")
	}
	if s.helpPanel.Field() != assessment.PinLocations.Key() {
		t.Errorf("Expected pin help, got %q", s.helpPanel.Field())
	}

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if n := len(st.Snapshot().PainSnapshot().PinLocations); n != 1 {
		t.Fatalf("Expected 1 pin, got %d", n)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.Board().Active() {
		t.Errorf("Expected Esc to return to the form")
	}
}

func TestPainSnapshotScreen_Sync(t *testing.T) {
	st := newCountingStore()
	s := NewPainSnapshotScreen("Section 1", func() assessment.PainSnapshot {
		return st.Snapshot().PainSnapshot()
	}, st.dispatch)

	s.intensity = 0
	s.descriptors = []string{"Sharp", labels.OtherOption}
	s.other = "electric"
	s.sync()

	got := st.Snapshot().PainSnapshot()
	if got.CurrentPainIntensity != assessment.Rate(0) {
		t.Errorf("Expected explicit 0, got %v", got.CurrentPainIntensity)
	}
	if !slices.Equal(got.PainDescriptors, []string{"Sharp", labels.OtherOption}) {
		t.Errorf("Unexpected descriptors %v", got.PainDescriptors)
	}
	if got.OtherPainDescriptor != "electric" {
		t.Errorf("Expected other descriptor, got %q", got.OtherPainDescriptor)
	}
}
