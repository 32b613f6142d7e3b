package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/matroid/core"
	"github.com/lvlath-labs/matroid/graphmatroid"
	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// capMatroid is a minimal U_{k,n}-style test double: independent iff |S| <= k.
// Used to exercise DefaultChecker through the Matroid interface alone; the
// axiom test below uses graphmatroid instead.
type capMatroid struct {
	ground []int
	k      int
}

func (m *capMatroid) GroundSet() []int { return m.ground }
func (m *capMatroid) IsEmpty() bool    { return len(m.ground) == 0 }
func (m *capMatroid) IsIndependent(s *randset.Set[int]) bool {
	return s.Len() <= m.k
}
func (m *capMatroid) Weight(e int) float64 { return 1.0 }
func (m *capMatroid) TotalWeight(s *randset.Set[int]) float64 {
	return float64(s.Len())
}
func (m *capMatroid) StatefulChecker(seed *randset.Set[int]) matroid.StatefulIndependenceChecker[int] {
	return matroid.NewDefaultChecker[int](m, seed)
}

func TestDefaultChecker_RespectsCapacity(t *testing.T) {
	m := &capMatroid{ground: []int{0, 1, 2, 3}, k: 2}
	checker := m.StatefulChecker(randset.New[int]())

	assert.True(t, checker.AddIfIndependent(0))
	assert.True(t, checker.AddIfIndependent(1))
	assert.False(t, checker.AddIfIndependent(2), "adding a 3rd element exceeds k=2")
	assert.Equal(t, 2, checker.Current().Len())
}

func TestDefaultChecker_AddElement_PreconditionViolation(t *testing.T) {
	m := &capMatroid{ground: []int{0, 1, 2}, k: 1}
	checker := m.StatefulChecker(randset.New(0))

	err := checker.AddElement(1)
	assert.ErrorIs(t, err, matroid.ErrPreconditionViolation)
}

func TestDefaultChecker_AddElement_SucceedsWhenIndependent(t *testing.T) {
	m := &capMatroid{ground: []int{0, 1}, k: 2}
	checker := m.StatefulChecker(randset.New[int]())

	require.NoError(t, checker.AddElement(0))
	assert.True(t, checker.Current().Contains(0))
}

// powerset enumerates every subset of elems.
func powerset[T any](elems []T) [][]T {
	n := len(elems)
	out := make([][]T, 0, 1<<n)
	for mask := 0; mask < (1 << n); mask++ {
		var subset []T
		for i, e := range elems {
			if mask&(1<<i) != 0 {
				subset = append(subset, e)
			}
		}
		out = append(out, subset)
	}

	return out
}

// TestAxioms_DownwardClosedAndAugmentation brute-force checks the two
// matroid axioms (spec section 2) on a small graphical matroid: a triangle
// plus a pendant edge, small enough (4 elements, 16 subsets) to enumerate
// exhaustively.
func TestAxioms_DownwardClosedAndAugmentation(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"0", "2"}, {"2", "3"}} {
		_, err := g.AddEdge(pair[0], pair[1], 1)
		require.NoError(t, err)
	}
	m := graphmatroid.New(g)
	ground := m.GroundSet()

	var independent [][]graphmatroid.Edge
	for _, s := range powerset(ground) {
		if m.IsIndependent(randset.New(s...)) {
			independent = append(independent, s)
		}
	}
	require.NotEmpty(t, independent)

	// Downward-closed (spec section 2, axiom I2): every subset of an
	// independent set is independent.
	for _, s := range independent {
		for _, sub := range powerset(s) {
			assert.True(t, m.IsIndependent(randset.New(sub...)),
				"subset %v of independent set %v must be independent", sub, s)
		}
	}

	// Augmentation (spec section 2, axiom I3): for independent A, B with
	// |A| < |B|, some x in B\A exists with A ∪ {x} independent.
	for _, a := range independent {
		for _, b := range independent {
			if len(a) >= len(b) {
				continue
			}
			aSet := randset.New(a...)
			bSet := randset.New(b...)
			found := false
			for _, x := range bSet.Values() {
				if aSet.Contains(x) {
					continue
				}
				trial := aSet.Clone()
				trial.Insert(x)
				if m.IsIndependent(trial) {
					found = true

					break
				}
			}
			assert.True(t, found, "augmentation must hold for A=%v B=%v", a, b)
		}
	}
}
