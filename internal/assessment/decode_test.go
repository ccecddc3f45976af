package assessment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAnswers = `
painSnapshot:
  currentPainIntensity: 7
  primaryPainLocation: [head, neck]
  pinLocations:
    - xPct: 120
      yPct: 40
      label: Temple
  painDescriptors: [Aching]
painPatternsTriggers:
  avgPainLast7Days: 0
  worstPainLast7Days: 14
  leastPainLast7Days: null
  painWorstTime: Evening
  activitiesWorstPain: yes
  activitiesBetterPain: no
copingManagement:
  currentStrategies: [Rest]
  mainStrategiesToRate: [Rest, Social support]
  mainStrategiesHelpfulness:
    - strategy: Rest
      helpfulness: 6
`

func TestDecodeAnswers(t *testing.T) {
	snap, err := Decode(strings.NewReader(sampleAnswers))
	require.NoError(t, err)

	ps := snap.PainSnapshot()
	assert.Equal(t, Rate(7), ps.CurrentPainIntensity)
	assert.Equal(t, []string{"head", "neck"}, ps.PrimaryPainLocation)
	require.Len(t, ps.PinLocations, 1)
	assert.NotEmpty(t, ps.PinLocations[0].ID)
	assert.Equal(t, 100.0, ps.PinLocations[0].XPct)
	assert.Equal(t, ViewAnterior, ps.PinLocations[0].View)

	pp := snap.PainPatterns()
	v, ok := pp.AvgPainLast7Days.Value()
	assert.True(t, ok, "explicit 0 is an answer")
	assert.Equal(t, 0, v)
	assert.Equal(t, Rate(10), pp.WorstPainLast7Days)
	assert.False(t, pp.LeastPainLast7Days.IsSet())
	assert.Equal(t, Yes, pp.ActivitiesWorstPain)
	assert.Equal(t, No, pp.ActivitiesBetterPain)

	c := snap.Coping()
	assert.Equal(t, []string{"Rest"}, c.MainStrategiesToRate)
	h, _ := c.Helpfulness("Rest")
	assert.Equal(t, Rate(6), h)

	assert.Equal(t, Default().Impact(), snap.Impact())
	assert.Equal(t, Default().PersonalGoals(), snap.PersonalGoals())
}

func TestDecodeEmptyDocument(t *testing.T) {
	snap, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), snap)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("painSnapshot:\n  mood: 3\n"))
	assert.Error(t, err)
}

func TestDecodeRejectsBadRating(t *testing.T) {
	_, err := Decode(strings.NewReader("impactDailyLife:\n  generalInterference: lots\n"))
	assert.ErrorContains(t, err, "not an integer")
}

func TestDecodeRenamesRepeatedPinIDs(t *testing.T) {
	doc := `
painSnapshot:
  pinLocations:
    - id: a
      xPct: 10
      yPct: 10
    - id: a
      xPct: 20
      yPct: 20
    - xPct: 30
      yPct: 30
`
	snap, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	pins := snap.PainSnapshot().PinLocations
	require.Len(t, pins, 3)
	assert.Equal(t, "a", pins[0].ID, "first occurrence keeps its id")
	assert.NotEqual(t, "a", pins[1].ID)
	assert.NotEqual(t, pins[1].ID, pins[2].ID)

	left := snap.Apply(RemovePin("a")).PainSnapshot().PinLocations
	require.Len(t, left, 2)
	assert.Equal(t, 20.0, left[0].XPct)
}
