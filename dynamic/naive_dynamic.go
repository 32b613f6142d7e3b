// SPDX-License-Identifier: MIT
package dynamic

import (
	"sort"

	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
	"github.com/lvlath-labs/matroid/ulist"
)

// NaiveDynamic is the full (general-weight) incremental greedy algorithm of
// spec section 4.6. It keeps every ground-set element in a
// descending-weight OrderedUniqueList (negative-weight elements sort to the
// tail, per Open Question 1's decision (a) in DESIGN.md), with a parallel
// indicator per element recording whether the greedy pass selected it.
// Since elements are already unique (the list's own invariant), the
// indicator is kept as a map[T]bool keyed by element rather than a second
// linked list aligned by position — an equivalent representation that
// avoids a list structure built for unique values holding deliberately
// duplicate boolean entries.
//
// An update walks the list from the head, replaying indicator-true
// elements into a fresh checker until reaching the mutated element's
// position, then continues the greedy pass from there. The untouched
// prefix never needs replaying twice in separate passes.
type NaiveDynamic[T comparable] struct {
	m           matroid.MutableMatroid[T]
	elements    *ulist.List[T] // every ground-set element, descending weight order
	indicators  map[T]bool
	inGroundSet map[T]struct{}
	current     *randset.Set[T]
}

// NewNaiveDynamic builds the initial sorted element list and indicator map
// from m's ground set, then runs the greedy pass once to seed current.
func NewNaiveDynamic[T comparable](m matroid.MutableMatroid[T]) *NaiveDynamic[T] {
	ground := m.GroundSet()

	inGroundSet := make(map[T]struct{}, len(ground))
	candidates := make([]T, len(ground))
	copy(candidates, ground)
	for _, e := range ground {
		inGroundSet[e] = struct{}{}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return m.Weight(candidates[i]) > m.Weight(candidates[j])
	})

	elements := ulist.New[T]()
	indicators := make(map[T]bool, len(candidates))
	for _, e := range candidates {
		elements.PushBack(e)
		indicators[e] = false
	}

	d := &NaiveDynamic[T]{
		m:           m,
		elements:    elements,
		indicators:  indicators,
		inGroundSet: inGroundSet,
	}
	checker := m.StatefulChecker(randset.New[T]())
	d.current = d.continueGreedy(checker, elements.First())

	return d
}

// Current returns the current MWIS.
func (d *NaiveDynamic[T]) Current() *randset.Set[T] { return d.current }

// AddElement implements spec section 4.6's NaiveDynamic.add_element.
func (d *NaiveDynamic[T]) AddElement(e T, weight ...float64) (*randset.Set[T], error) {
	if _, present := d.inGroundSet[e]; present {
		if len(weight) == 0 || d.m.Weight(e) == weight[0] {
			return d.current, nil
		}
		// weight changes: remove then re-add is the simplest correct path.
		if _, err := d.RemoveElement(e); err != nil {
			return d.current, err
		}

		return d.AddElement(e, weight[0])
	}

	w := defaultElementWeight
	if len(weight) > 0 {
		w = weight[0]
	}
	if err := d.m.AddElement(e, w); err != nil {
		return d.current, err
	}
	d.inGroundSet[e] = struct{}{}
	w = d.m.Weight(e) // actual weight after adding

	// e is always inserted into the ordered list at its sorted position,
	// regardless of sign (spec section 9, Open Question 1, decision (a)):
	// this keeps one invariant — every ground-set element the solver knows
	// about has exactly one list position — instead of tracking
	// negative-weight elements out-of-band until they turn non-negative.
	checker, stopNode := d.reconstructGreedy(func(x T) bool {
		return d.m.Weight(x) < w
	})
	node := d.elements.InsertBefore(stopNode, e)
	d.indicators[e] = false

	if w < 0 {
		// negative-weight elements are excluded from the greedy candidate
		// pool by construction (spec section 4.5 step 1) and can never
		// flip this indicator true.
		return d.current, nil
	}

	if !checker.WouldBeIndependentAfterAdding(e) {
		return d.current, nil
	}

	if err := checker.AddElement(e); err != nil {
		return d.current, err
	}
	d.indicators[e] = true

	d.current = d.continueGreedy(checker, node.Next())

	return d.current, nil
}

// RemoveElement implements spec section 4.6's NaiveDynamic.remove_element.
func (d *NaiveDynamic[T]) RemoveElement(e T) (*randset.Set[T], error) {
	if _, present := d.inGroundSet[e]; !present {
		return d.current, matroid.ErrNotInGroundSet
	}
	if err := d.m.RemoveElement(e); err != nil {
		return d.current, err
	}
	delete(d.inGroundSet, e)

	if !d.current.Contains(e) {
		d.elements.Remove(e)
		delete(d.indicators, e)

		return d.current, nil
	}

	checker, stopNode := d.reconstructGreedy(func(x T) bool { return x == e })
	var next *ulist.Node[T]
	if stopNode != nil {
		next = stopNode.Next()
	}
	d.elements.Remove(e)
	delete(d.indicators, e)

	d.current = d.continueGreedy(checker, next)

	return d.current, nil
}

// reconstructGreedy replays indicator-true elements from the head of the
// list into a fresh checker until until(element) becomes true, returning
// the checker and the node at which it stopped (nil if the walk reached
// the end of the list without until ever becoming true).
func (d *NaiveDynamic[T]) reconstructGreedy(until func(T) bool) (matroid.StatefulIndependenceChecker[T], *ulist.Node[T]) {
	checker := d.m.StatefulChecker(randset.New[T]())

	for n := range ulist.IterFrom(d.elements.First()) {
		if until(n.Value) {
			return checker, n
		}
		if d.indicators[n.Value] {
			_ = checker.AddElement(n.Value)
		}
	}

	return checker, nil
}

// continueGreedy runs add_if_independent from start onward, updating each
// visited element's indicator, and returns the resulting solution.
func (d *NaiveDynamic[T]) continueGreedy(checker matroid.StatefulIndependenceChecker[T], start *ulist.Node[T]) *randset.Set[T] {
	for n := range ulist.IterFrom(start) {
		if d.m.Weight(n.Value) < 0 {
			// negative-weight elements occupy a list position (Open
			// Question 1, decision (a)) but are never selected (spec
			// section 4.5 step 1).
			d.indicators[n.Value] = false

			continue
		}
		d.indicators[n.Value] = checker.AddIfIndependent(n.Value)
	}

	return checker.Current()
}
