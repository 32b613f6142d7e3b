// SPDX-License-Identifier: MIT
package dynamic

import (
	"github.com/lvlath-labs/matroid/greedy"
	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// RestartGreedy is the baseline dynamic algorithm (spec section 4.6): every
// mutation reruns the static greedy algorithm from scratch. Always correct;
// no amortisation benefit over the static algorithm.
type RestartGreedy[T comparable] struct {
	m       matroid.MutableMatroid[T]
	current *randset.Set[T]
}

// NewRestartGreedy computes the initial MWIS of m via static greedy and
// wraps it as a RestartGreedy dynamic solver.
func NewRestartGreedy[T comparable](m matroid.MutableMatroid[T]) *RestartGreedy[T] {
	return &RestartGreedy[T]{m: m, current: greedy.MWIS[T](m)}
}

// Current returns the current MWIS.
func (d *RestartGreedy[T]) Current() *randset.Set[T] { return d.current }

// AddElement mutates the matroid to include e, then reruns static greedy.
//
// Complexity: O(n log n), same as the static algorithm.
func (d *RestartGreedy[T]) AddElement(e T, weight ...float64) (*randset.Set[T], error) {
	w := resolveAddWeight[T](d.m, e, weight)
	if err := d.m.AddElement(e, w); err != nil {
		return d.current, err
	}
	d.current = greedy.MWIS[T](d.m)

	return d.current, nil
}

// RemoveElement mutates the matroid to exclude e, then reruns static greedy.
//
// Complexity: O(n log n), same as the static algorithm.
func (d *RestartGreedy[T]) RemoveElement(e T) (*randset.Set[T], error) {
	if err := d.m.RemoveElement(e); err != nil {
		return d.current, err
	}
	d.current = greedy.MWIS[T](d.m)

	return d.current, nil
}
