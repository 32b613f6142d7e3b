// SPDX-License-Identifier: MIT
//
// Package graphbuilder provides seeded synthetic-graph constructors used by
// tests and by the fuzz harness described in spec section 8 Scenario F.
// It is a deliberately trimmed descendant of the teacher's builder package:
// only the topologies a graphical-matroid fuzz test actually needs survive
// (Path, Cycle, Complete, RandomSparse); letters/hexagram/platonic-solid/
// OHLC/Pulse/Chirp generators have no matroid consumer and were dropped.
//
// Contract (unchanged from the teacher):
//   - Constructors validate parameters and return sentinel errors; they never
//     panic at runtime (only option constructors, e.g. WithRand(nil) misuse,
//     would, matching the teacher's builder.BuilderOption convention).
//   - Determinism: vertex IDs follow a fixed ascending index scheme; edge
//     trial order is fixed; a given seed always reproduces the same graph.
//   - Randomness is injected via functional Options (WithRand/WithSeed),
//     mirroring the teacher's builder.WithRand/builder.WithSeed split, never
//     read from process-global state (spec section 5).
package graphbuilder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lvlath-labs/matroid/core"
)

// ErrTooFewVertices indicates n is smaller than a constructor's minimum.
var ErrTooFewVertices = errors.New("graphbuilder: n too small")

// ErrInvalidProbability indicates p is outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("graphbuilder: probability out of range")

// ErrRandRequired indicates a constructor was called without WithRand or
// WithSeed among its options; every builder here draws at least edge
// weights from the configured RNG, so one must always be supplied.
var ErrRandRequired = errors.New("graphbuilder: WithRand or WithSeed required")

// idFn is the deterministic vertex-naming scheme: index -> "v<index>".
func idFn(i int) string {
	return fmt.Sprintf("v%d", i)
}

// WeightFunc draws an edge weight from the given RNG. Defaults to a uniform
// draw in [1, 10) when no WithWeightFunc option is supplied.
type WeightFunc func(*rand.Rand) float64

func defaultWeightFunc(r *rand.Rand) float64 {
	return 1 + r.Float64()*9
}

// Option customizes a constructor by mutating a config before graph
// construction begins, the teacher's functional-options idiom
// (builder.BuilderOption) applied to this trimmed package.
type Option func(*config)

// config holds the resolved option values for a single constructor call.
type config struct {
	wf  WeightFunc
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{wf: defaultWeightFunc}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithWeightFunc overrides the per-edge weight generator. Panics on nil,
// matching the teacher's option-constructor validation (fail fast on
// programmer error rather than on silent fallback).
func WithWeightFunc(fn WeightFunc) Option {
	if fn == nil {
		panic("graphbuilder: WithWeightFunc(nil)")
	}

	return func(c *config) { c.wf = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphbuilder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Path builds the path graph P_n (v0—v1—...—v(n-1)), each edge weighted per
// opts. Requires WithRand or WithSeed among opts.
//
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Path: %w", ErrRandRequired)
	}
	g := core.NewGraph()
	_ = g.AddVertex(idFn(0))
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(idFn(i-1), idFn(i), cfg.wf(cfg.rng))
	}

	return g, nil
}

// Cycle builds the cycle graph C_n (n >= 3), each edge weighted per opts.
// Requires WithRand or WithSeed among opts.
//
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Cycle: %w", ErrRandRequired)
	}
	g, err := Path(n, opts...)
	if err != nil {
		return nil, err
	}
	_, err = g.AddEdge(idFn(n-1), idFn(0), cfg.wf(cfg.rng))
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Complete builds the complete graph K_n, each edge weighted independently
// per opts. Requires WithRand or WithSeed among opts.
//
// Complexity: O(n^2).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Complete: %w", ErrRandRequired)
	}
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(idFn(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(idFn(i), idFn(j), cfg.wf(cfg.rng)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomSparse builds an Erdős–Rényi-style G(n, p) graph: every unordered
// pair {i, j}, i<j, is included independently with probability p. Requires
// WithRand or WithSeed among opts; callers seed it themselves for
// reproducibility, matching the teacher's WithSeed/WithRand split.
//
// Complexity: O(n^2).
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrRandRequired)
	}
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(idFn(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				if _, err := g.AddEdge(idFn(i), idFn(j), cfg.wf(cfg.rng)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
