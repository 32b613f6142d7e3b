package graphbuilder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/matroid/graphbuilder"
)

func TestComplete(t *testing.T) {
	g, err := graphbuilder.Complete(4, graphbuilder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount()) // K_4 has 6 edges
}

func TestCycle_RejectsTooFewVertices(t *testing.T) {
	_, err := graphbuilder.Cycle(2, graphbuilder.WithSeed(1))
	assert.ErrorIs(t, err, graphbuilder.ErrTooFewVertices)
}

func TestPath_RequiresRand(t *testing.T) {
	_, err := graphbuilder.Path(3)
	assert.ErrorIs(t, err, graphbuilder.ErrRandRequired)
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	g1, err := graphbuilder.RandomSparse(50, 0.2, graphbuilder.WithSeed(42))
	require.NoError(t, err)
	g2, err := graphbuilder.RandomSparse(50, 0.2, graphbuilder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
}

func TestRandomSparse_RejectsBadProbability(t *testing.T) {
	_, err := graphbuilder.RandomSparse(5, 1.5, graphbuilder.WithRand(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, graphbuilder.ErrInvalidProbability)
}
