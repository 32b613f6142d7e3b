// SPDX-License-Identifier: MIT
//
// Package greedy implements the static maximum-weight independent set
// algorithm (spec section 4.5): discard negative-weight elements, sort the
// rest by descending weight, and greedily extend an empty independent set
// using the matroid's stateful checker. This is exact for weighted
// matroids by the matroid greedy theorem.
package greedy

import (
	"sort"

	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// MWIS computes a maximum-weight independent set of m from scratch.
//
// Complexity: O(n log n) for the sort plus the cost of n checker queries.
func MWIS[T comparable](m matroid.Matroid[T]) *randset.Set[T] {
	ground := m.GroundSet()

	candidates := make([]T, 0, len(ground))
	for _, e := range ground {
		if m.Weight(e) >= 0 {
			candidates = append(candidates, e)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return m.Weight(candidates[i]) > m.Weight(candidates[j])
	})

	checker := m.StatefulChecker(randset.New[T]())
	for _, e := range candidates {
		checker.AddIfIndependent(e)
	}

	return checker.Current()
}

// UniformWeightMWIS computes a maximum-weight independent set of m under
// the assumption that every non-negative-weight element has equal weight,
// skipping the sort (spec section 4.5's uniform-weight variant). Ground-set
// iteration order is used as the fixed tie-break order.
//
// Complexity: O(n) checker queries, no sort.
func UniformWeightMWIS[T comparable](m matroid.Matroid[T]) *randset.Set[T] {
	checker := m.StatefulChecker(randset.New[T]())
	for _, e := range m.GroundSet() {
		if m.Weight(e) < 0 {
			continue
		}
		checker.AddIfIndependent(e)
	}

	return checker.Current()
}
