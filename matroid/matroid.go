// SPDX-License-Identifier: MIT
//
// Package matroid defines the abstract matroid contract: a polymorphic
// ground-set/independence-oracle interface with an incremental
// (stateful) independence checker, generalized across concrete matroid
// kinds (graphmatroid.GraphicalMatroid, linearmatroid.RealLinearMatroid,
// uniformmatroid.IntUniformMatroid).
//
// This mirrors the teacher's interface-plus-sentinel-error style
// (core.Graph's GraphOption/error pattern) and is grounded directly on
// original_source/matroids/matroid/base.py's Matroid/WeightedMatroid/
// StatefulIndependenceChecker contract.
package matroid

import (
	"errors"

	"github.com/lvlath-labs/matroid/randset"
)

// Sentinel errors shared by every concrete matroid and dynamic algorithm in
// this module (spec section 7).
var (
	// ErrNotInGroundSet is returned when an operation references an element
	// that is not (or no longer) in the matroid's ground set.
	ErrNotInGroundSet = errors.New("matroid: element not in ground set")

	// ErrInvalidShape is returned by a constructor whose declared shape or
	// configuration is internally inconsistent (e.g. a weights length
	// mismatch, a negative size or rank, or a UniformRemovalDynamic built
	// without an RNG). IntUniformMatroid accepts a rank greater than its
	// ground-set size.
	ErrInvalidShape = errors.New("matroid: invalid shape")

	// ErrPreconditionViolation is returned when AddElement is called on a
	// checker with an element whose addition would violate independence.
	// This is a programmer error per spec section 7: callers should use
	// AddIfIndependent, or check WouldBeIndependentAfterAdding first.
	ErrPreconditionViolation = errors.New("matroid: precondition violation")

	// ErrNumericInstability names a rank computation that falls within its
	// tolerance of being singular. No code in this module returns it:
	// RealLinearMatroid rounds such singular values to zero silently.
	ErrNumericInstability = errors.New("matroid: numeric instability near rank tolerance")
)

// Matroid is the abstract interface implemented by every concrete matroid
// kind. T is the element type of the ground set (comparable, e.g. an int
// index for linear/uniform matroids, or a graphmatroid.Edge vertex-ID pair
// for graphical matroids).
type Matroid[T comparable] interface {
	// GroundSet returns a read-only view of E. Callers must not mutate the
	// returned slice's backing semantics beyond reading it.
	GroundSet() []T

	// IsEmpty reports whether |E| == 0.
	IsEmpty() bool

	// IsIndependent is the bulk independence test: true iff s is in I.
	// Used rarely — fallbacks, axiom tests, and the default checker.
	IsIndependent(s *randset.Set[T]) bool

	// Weight returns w(e), defaulting to 1.0 for matroids that don't track
	// per-element weights explicitly (e.g. IntUniformMatroid with no
	// weight map supplied).
	Weight(e T) float64

	// TotalWeight sums Weight over every element of s.
	TotalWeight(s *randset.Set[T]) float64

	// StatefulChecker returns a StatefulIndependenceChecker whose current
	// subset *is* seed. Precondition: seed must already be independent.
	StatefulChecker(seed *randset.Set[T]) StatefulIndependenceChecker[T]
}

// MutableMatroid extends Matroid with element-level mutation, used by the
// dynamic algorithms (spec section 4.6).
type MutableMatroid[T comparable] interface {
	Matroid[T]

	// AddElement inserts e into the ground set with weight w. If e is
	// already present, AddElement updates its weight to w.
	AddElement(e T, w float64) error

	// RemoveElement deletes e from the ground set. Returns
	// ErrNotInGroundSet if e is absent.
	RemoveElement(e T) error
}

// StatefulIndependenceChecker holds a handle to its matroid plus a current
// independent subset S, plus any auxiliary state a concrete matroid
// overrides this with for a faster-than-bulk-test implementation (e.g. a
// union-find for graphmatroid).
type StatefulIndependenceChecker[T comparable] interface {
	// WouldBeIndependentAfterAdding reports whether S ∪ {e} would be
	// independent. Precondition: e ∉ S. Does not mutate S.
	WouldBeIndependentAfterAdding(e T) bool

	// AddElement adds e to S. Precondition: S ∪ {e} ∈ I (callers should
	// have checked WouldBeIndependentAfterAdding first). Returns
	// ErrPreconditionViolation if the precondition doesn't hold.
	AddElement(e T) error

	// AddIfIndependent combines WouldBeIndependentAfterAdding and
	// AddElement: adds e to S iff doing so keeps S independent, and
	// reports whether it did.
	AddIfIndependent(e T) bool

	// Current returns the checker's current independent subset S, by
	// reference: callers must not mutate it directly.
	Current() *randset.Set[T]
}

// DefaultChecker is the fallback StatefulIndependenceChecker: every query
// calls the matroid's bulk IsIndependent test. Concrete matroids with a
// faster path implement StatefulIndependenceChecker themselves
// (graphmatroid's union-find checker, for instance); every DefaultChecker
// method, AddIfIndependent included, always goes through the bulk test.
type DefaultChecker[T comparable] struct {
	M       Matroid[T]
	current *randset.Set[T]
}

// NewDefaultChecker builds a DefaultChecker whose current subset is seed.
// Precondition: seed must already be independent in m.
func NewDefaultChecker[T comparable](m Matroid[T], seed *randset.Set[T]) *DefaultChecker[T] {
	return &DefaultChecker[T]{M: m, current: seed}
}

// Current returns the checker's current independent subset.
func (c *DefaultChecker[T]) Current() *randset.Set[T] { return c.current }

// WouldBeIndependentAfterAdding builds a trial set S ∪ {e} and bulk-tests it.
//
// Complexity: O(bulk test cost), typically far from O(1) — concrete
// matroids should override this.
func (c *DefaultChecker[T]) WouldBeIndependentAfterAdding(e T) bool {
	trial := c.current.Clone()
	trial.Insert(e)

	return c.M.IsIndependent(trial)
}

// AddElement adds e to S, assuming the precondition holds; returns
// ErrPreconditionViolation if it doesn't (a debug assertion, per spec
// section 7: this is a programmer error, not a normal failure mode).
func (c *DefaultChecker[T]) AddElement(e T) error {
	if !c.WouldBeIndependentAfterAdding(e) {
		return ErrPreconditionViolation
	}
	c.current.Insert(e)

	return nil
}

// AddIfIndependent adds e to S iff independence is preserved, reporting
// whether it did so.
func (c *DefaultChecker[T]) AddIfIndependent(e T) bool {
	if !c.WouldBeIndependentAfterAdding(e) {
		return false
	}
	c.current.Insert(e)

	return true
}
