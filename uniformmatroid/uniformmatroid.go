// SPDX-License-Identifier: MIT
//
// Package uniformmatroid implements IntUniformMatroid U_{k,n}: ground set
// {0, ..., size-1}, independent iff |S| <= rank (spec section 4.4). Mutation
// keeps an explicit ground set while preserving rank across add/remove.
package uniformmatroid

import (
	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// IntUniformMatroid is U_{k,n}: a subset of the ground set is independent
// iff it has at most Rank elements.
type IntUniformMatroid struct {
	ground  *randset.Set[int]
	weights map[int]float64
	rank    int
}

// New builds an IntUniformMatroid with the given size, rank, and optional
// weight overrides (elements not present in weights default to weight 1.0,
// per spec section 4.3). Returns ErrInvalidShape if size or rank is
// negative. rank may exceed size (spec section 8 Scenario D starts an
// empty, size-0 matroid with rank 3 and grows the ground set via
// AddElement): the cardinality bound only starts binding once the ground
// set is large enough.
func New(size, rank int, weights map[int]float64) (*IntUniformMatroid, error) {
	if size < 0 || rank < 0 {
		return nil, matroid.ErrInvalidShape
	}

	elems := make([]int, size)
	for i := range elems {
		elems[i] = i
	}

	w := make(map[int]float64, len(weights))
	for k, v := range weights {
		w[k] = v
	}

	return &IntUniformMatroid{
		ground:  randset.New(elems...),
		weights: w,
		rank:    rank,
	}, nil
}

// GroundSet returns the current ground set's elements.
func (m *IntUniformMatroid) GroundSet() []int { return m.ground.Values() }

// IsEmpty reports whether the ground set has no elements.
func (m *IntUniformMatroid) IsEmpty() bool { return m.ground.Len() == 0 }

// IsIndependent reports whether s has at most Rank elements.
func (m *IntUniformMatroid) IsIndependent(s *randset.Set[int]) bool {
	return s.Len() <= m.rank
}

// Weight returns the weight assigned to e, defaulting to 1.0 if e has no
// explicit entry (spec section 4.3's default weight).
func (m *IntUniformMatroid) Weight(e int) float64 {
	if w, ok := m.weights[e]; ok {
		return w
	}

	return 1.0
}

// TotalWeight sums Weight over every element of s.
func (m *IntUniformMatroid) TotalWeight(s *randset.Set[int]) float64 {
	var total float64
	for _, e := range s.Values() {
		total += m.Weight(e)
	}

	return total
}

// StatefulChecker returns the default bulk-test-backed checker: a cardinality
// constraint has no cheaper incremental structure than counting.
func (m *IntUniformMatroid) StatefulChecker(seed *randset.Set[int]) matroid.StatefulIndependenceChecker[int] {
	return matroid.NewDefaultChecker[int](m, seed)
}

// AddElement inserts e into the ground set with weight w, or updates e's
// weight if already present. Rank is unchanged.
func (m *IntUniformMatroid) AddElement(e int, w float64) error {
	m.ground.Insert(e)
	m.weights[e] = w

	return nil
}

// RemoveElement deletes e from the ground set. Returns ErrNotInGroundSet if
// e is absent.
func (m *IntUniformMatroid) RemoveElement(e int) error {
	if !m.ground.Contains(e) {
		return matroid.ErrNotInGroundSet
	}
	m.ground.Remove(e)
	delete(m.weights, e)

	return nil
}

// Rank returns the matroid's cardinality bound k.
func (m *IntUniformMatroid) Rank() int { return m.rank }
