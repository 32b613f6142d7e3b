package uniformmatroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
	"github.com/lvlath-labs/matroid/uniformmatroid"
)

func TestNew_RejectsNegativeDimensions(t *testing.T) {
	_, err := uniformmatroid.New(-1, 0, nil)
	assert.ErrorIs(t, err, matroid.ErrInvalidShape)

	_, err = uniformmatroid.New(0, -1, nil)
	assert.ErrorIs(t, err, matroid.ErrInvalidShape)
}

func TestNew_AllowsRankExceedingSize(t *testing.T) {
	m, err := uniformmatroid.New(0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rank())
	assert.Empty(t, m.GroundSet())
}

// scenarioB is spec Scenario B: size=3, rank=3, weights {0:1, 1:1, 2:-2}.
func scenarioB(t *testing.T) *uniformmatroid.IntUniformMatroid {
	t.Helper()
	m, err := uniformmatroid.New(3, 3, map[int]float64{0: 1, 1: 1, 2: -2})
	require.NoError(t, err)
	return m
}

func TestGroundSetAndWeight_ScenarioB(t *testing.T) {
	m := scenarioB(t)
	assert.Equal(t, []int{0, 1, 2}, m.GroundSet())
	assert.Equal(t, 1.0, m.Weight(0))
	assert.Equal(t, -2.0, m.Weight(2))
}

func TestWeight_DefaultsToOneForUnlistedElement(t *testing.T) {
	m, err := uniformmatroid.New(2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Weight(0))
	assert.Equal(t, 1.0, m.Weight(1))
}

func TestIsIndependent_RespectsRank(t *testing.T) {
	m := scenarioB(t)
	assert.True(t, m.IsIndependent(randset.New(0, 1, 2)))

	m2, err := uniformmatroid.New(3, 2, nil)
	require.NoError(t, err)
	assert.True(t, m2.IsIndependent(randset.New(0, 1)))
	assert.False(t, m2.IsIndependent(randset.New(0, 1, 2)))
}

func TestAddElement_InsertsAndUpdatesWeight(t *testing.T) {
	m, err := uniformmatroid.New(0, 3, nil)
	require.NoError(t, err)

	require.NoError(t, m.AddElement(1, 5))
	assert.Equal(t, []int{1}, m.GroundSet())
	assert.Equal(t, 5.0, m.Weight(1))

	require.NoError(t, m.AddElement(1, 9))
	assert.Equal(t, 9.0, m.Weight(1))
	assert.Len(t, m.GroundSet(), 1)
}

func TestRemoveElement_ErrorsWhenAbsentAndShrinksOtherwise(t *testing.T) {
	m := scenarioB(t)
	err := m.RemoveElement(99)
	assert.ErrorIs(t, err, matroid.ErrNotInGroundSet)

	require.NoError(t, m.RemoveElement(2))
	assert.ElementsMatch(t, []int{0, 1}, m.GroundSet())
	assert.Equal(t, 1.0, m.Weight(2), "weight defaults back to 1.0 once the override is removed")
}

func TestRank_PreservedAcrossMutation(t *testing.T) {
	m := scenarioB(t)
	require.NoError(t, m.RemoveElement(2))
	require.NoError(t, m.AddElement(7, 3))
	assert.Equal(t, 3, m.Rank())
}
