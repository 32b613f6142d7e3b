// SPDX-License-Identifier: MIT
package dynamic

import (
	"fmt"
	"math/rand"

	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// UniformRemovalDynamic is the removal-only partial algorithm of spec
// section 4.6: under uniform positive weights, the solution is maintained
// as an ordered list of pivots plus, for each step, a witness set of
// elements still eligible to be chosen. Removing a non-pivot element is
// free; removing a pivot truncates the bookkeeping to the step at which it
// was chosen and resumes the random-pivot greedy loop from there, so only
// the suffix after the removed pivot is ever recomputed. AddElement is
// unsupported — use UniformAdditionDynamic for that direction.
//
// Pivot selection uses r, which the caller must seed for reproducibility
// (spec section 5: a deterministic seed must be injectable).
type UniformRemovalDynamic[T comparable] struct {
	m           matroid.MutableMatroid[T]
	r           *rand.Rand
	pivots      []T
	witnessSets []*randset.Set[T]
	current     *randset.Set[T]
}

// NewUniformRemovalDynamic computes the initial witness set (every
// independent singleton) and runs the random-pivot greedy loop to
// exhaustion, seeding the initial pivot sequence. Requires WithRand or
// WithSeed among opts (spec section 5: pivot choice must be seedable, never
// sourced from process-global state); returns a wrapped ErrInvalidShape
// otherwise.
func NewUniformRemovalDynamic[T comparable](m matroid.MutableMatroid[T], opts ...Option) (*UniformRemovalDynamic[T], error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("dynamic: %w: UniformRemovalDynamic requires WithRand or WithSeed", matroid.ErrInvalidShape)
	}

	d := &UniformRemovalDynamic[T]{
		m:           m,
		r:           cfg.rng,
		witnessSets: []*randset.Set[T]{initialWitnessSet(m)},
	}
	d.runFrom(0)

	return d, nil
}

// initialWitnessSet returns every ground-set element that is independent
// on its own, i.e. witness_sets[0] per spec section 4.6.
func initialWitnessSet[T comparable](m matroid.Matroid[T]) *randset.Set[T] {
	s := randset.New[T]()
	for _, e := range m.GroundSet() {
		if m.IsIndependent(randset.New(e)) {
			s.Insert(e)
		}
	}

	return s
}

// Current returns the current MWIS.
func (d *UniformRemovalDynamic[T]) Current() *randset.Set[T] { return d.current }

// AddElement always fails: this algorithm only handles removals.
func (d *UniformRemovalDynamic[T]) AddElement(_ T, _ ...float64) (*randset.Set[T], error) {
	return d.current, ErrUnsupportedOperation
}

// RemoveElement implements spec section 4.6's uniform-weight removal
// algorithm: discard e from every witness set; if e was a pivot, truncate
// to its step and resume the pivot loop, otherwise the solution is
// unchanged.
func (d *UniformRemovalDynamic[T]) RemoveElement(e T) (*randset.Set[T], error) {
	present := false
	for _, g := range d.m.GroundSet() {
		if g == e {
			present = true
			break
		}
	}
	if !present {
		return d.current, matroid.ErrNotInGroundSet
	}
	if err := d.m.RemoveElement(e); err != nil {
		return d.current, err
	}

	for _, ws := range d.witnessSets {
		ws.Remove(e)
	}

	if !d.current.Contains(e) {
		return d.current, nil
	}

	step := -1
	for i, p := range d.pivots {
		if p == e {
			step = i
			break
		}
	}

	d.pivots = d.pivots[:step]
	d.witnessSets = d.witnessSets[:step+1]
	d.runFrom(step)

	return d.current, nil
}

// runFrom resumes the random-pivot greedy loop at the given step, assuming
// d.pivots and d.witnessSets have already been truncated to reflect that
// step (d.witnessSets[step] is the step's eligible set, d.pivots holds the
// first step pivots). It appends new pivots/witness sets as the loop picks
// elements, stopping when the current witness set is exhausted, and stores
// the resulting solution in d.current.
func (d *UniformRemovalDynamic[T]) runFrom(step int) {
	available := d.witnessSets[step]
	current := randset.New(d.pivots...)
	checker := d.m.StatefulChecker(current)

	for available.Len() > 0 {
		pivot := available.Choice(d.r)
		available.Remove(pivot)
		_ = checker.AddElement(pivot)
		d.pivots = append(d.pivots, pivot)

		next := randset.New[T]()
		for _, x := range available.Values() {
			if checker.WouldBeIndependentAfterAdding(x) {
				next.Insert(x)
			}
		}
		d.witnessSets = append(d.witnessSets, next)
		available = next
	}

	d.current = checker.Current()
}
