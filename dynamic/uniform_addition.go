// SPDX-License-Identifier: MIT
package dynamic

import (
	"github.com/lvlath-labs/matroid/greedy"
	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// UniformAdditionDynamic is the addition-only partial algorithm of spec
// section 4.6: under the assumption that all non-negative weights are
// equal, adding an element is purely a matter of independence, so it never
// needs to evict an existing selection. RemoveElement is unsupported — use
// UniformRemovalDynamic for that direction.
type UniformAdditionDynamic[T comparable] struct {
	m       matroid.MutableMatroid[T]
	checker matroid.StatefulIndependenceChecker[T]
}

// NewUniformAdditionDynamic computes the initial MWIS via the uniform-weight
// static algorithm (no sort) and seeds a checker with it.
func NewUniformAdditionDynamic[T comparable](m matroid.MutableMatroid[T]) *UniformAdditionDynamic[T] {
	current := greedy.UniformWeightMWIS[T](m)

	return &UniformAdditionDynamic[T]{m: m, checker: m.StatefulChecker(current)}
}

// Current returns the current MWIS.
func (d *UniformAdditionDynamic[T]) Current() *randset.Set[T] { return d.checker.Current() }

// AddElement mutates the matroid to include e, then adds it to the
// solution iff doing so preserves independence.
//
// Complexity: amortized cost of one checker query, typically far cheaper
// than a full recompute.
func (d *UniformAdditionDynamic[T]) AddElement(e T, weight ...float64) (*randset.Set[T], error) {
	w := resolveAddWeight[T](d.m, e, weight)
	if err := d.m.AddElement(e, w); err != nil {
		return d.Current(), err
	}
	d.checker.AddIfIndependent(e)

	return d.Current(), nil
}

// RemoveElement always fails: this algorithm only handles additions.
func (d *UniformAdditionDynamic[T]) RemoveElement(_ T) (*randset.Set[T], error) {
	return d.Current(), ErrUnsupportedOperation
}
