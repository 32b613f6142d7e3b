// SPDX-License-Identifier: MIT
package dynamic

import (
	"fmt"

	"github.com/lvlath-labs/matroid/matroid"
)

// Kind selects which dynamic algorithm a DynamicSolver wraps (spec section
// 4.8 / 6).
type Kind int

const (
	// RestartGreedyKind reruns static greedy after every mutation.
	RestartGreedyKind Kind = iota
	// NaiveDynamicKind maintains general weights via the sorted-list replay
	// algorithm.
	NaiveDynamicKind
	// UniformRemovalKind handles only removals, assuming uniform weights.
	UniformRemovalKind
	// UniformAdditionKind handles only additions, assuming uniform weights.
	UniformAdditionKind
)

// NewDynamicSolver constructs an Algorithm[T] of the requested kind over m.
// UniformRemovalKind requires WithRand or WithSeed among opts (the pivot
// RNG, spec section 5); opts are ignored by the other kinds.
//
// This is the unified construction point spec section 4.8 calls the
// DynamicSolver façade: callers depend on the returned Algorithm[T]
// interface rather than on a concrete algorithm type, so swapping the
// maintenance strategy never touches call sites.
func NewDynamicSolver[T comparable](kind Kind, m matroid.MutableMatroid[T], opts ...Option) (Algorithm[T], error) {
	switch kind {
	case RestartGreedyKind:
		return NewRestartGreedy[T](m), nil
	case NaiveDynamicKind:
		return NewNaiveDynamic[T](m), nil
	case UniformRemovalKind:
		alg, err := NewUniformRemovalDynamic[T](m, opts...)
		if err != nil {
			return nil, err
		}

		return alg, nil
	case UniformAdditionKind:
		return NewUniformAdditionDynamic[T](m), nil
	default:
		return nil, fmt.Errorf("dynamic: unknown solver kind %d", kind)
	}
}
