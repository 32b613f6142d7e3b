// SPDX-License-Identifier: MIT
//
// Package dynamic implements the dynamic (incrementally-maintained) MWIS
// algorithms of spec section 4.6: RestartGreedy, NaiveDynamic, and the two
// uniform-weight partial algorithms, plus the DynamicSolver façade (section
// 4.8) that unifies them behind one API. All four algorithm constructors
// compute an initial MWIS eagerly and thereafter answer current() without
// recomputation, mutating the underlying matroid only through their own
// add_element/remove_element methods (spec section 5: the matroid must not
// be mutated directly while a solver is attached).
package dynamic

import (
	"errors"
	"math/rand"

	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// defaultElementWeight is used when AddElement is called on a brand-new
// element without an explicit weight, matching Matroid.Weight's documented
// default of 1.0 (spec section 4.3).
const defaultElementWeight = 1.0

// ErrUnsupportedOperation is returned by a partial dynamic algorithm's
// unsupported direction (UniformAdditionDynamic.RemoveElement,
// UniformRemovalDynamic.AddElement) — these algorithms are documented
// (spec section 4.6) to handle only one direction of mutation each.
var ErrUnsupportedOperation = errors.New("dynamic: operation not supported by this algorithm")

// Algorithm is the common contract implemented by every dynamic MWIS
// maintenance strategy in this package.
type Algorithm[T comparable] interface {
	// Current returns the current MWIS without recomputing it.
	Current() *randset.Set[T]

	// AddElement mutates the matroid to include e (optionally setting its
	// weight, defaulting to 1.0 for new elements, or updating it for
	// existing ones) and returns the updated MWIS.
	AddElement(e T, weight ...float64) (*randset.Set[T], error)

	// RemoveElement mutates the matroid to exclude e and returns the
	// updated MWIS. Returns ErrNotInGroundSet if e is absent.
	RemoveElement(e T) (*randset.Set[T], error)
}

// resolveAddWeight picks the weight to pass to MutableMatroid.AddElement:
// an explicit weight if given, the element's current weight if it's
// already in the ground set (preserving it), or defaultElementWeight for a
// brand-new element.
func resolveAddWeight[T comparable](m matroid.Matroid[T], e T, explicit []float64) float64 {
	if len(explicit) > 0 {
		return explicit[0]
	}
	for _, g := range m.GroundSet() {
		if g == e {
			return m.Weight(e)
		}
	}

	return defaultElementWeight
}

// Option configures a dynamic algorithm constructor that needs a seeded RNG
// (UniformRemovalDynamic, NewDynamicSolver), mirroring the teacher's
// functional-options idiom (graphbuilder.Option, builder.BuilderOption):
// determinism is opted into explicitly rather than read from bare
// positional parameters or process-global state (spec section 5).
type Option func(*config)

// config holds the resolved option values for an Option-accepting
// constructor. Zero value means "no RNG configured".
type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand attaches an explicit RNG. Panics on nil, matching the teacher's
// option-constructor validation (fail fast on programmer error).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dynamic: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand from seed. Use in tests and examples to
// lock pivot-choice outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
