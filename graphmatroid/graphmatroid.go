// SPDX-License-Identifier: MIT
//
// Package graphmatroid implements GraphicalMatroid: the cycle matroid of an
// undirected graph (spec section 4.4). A subset of edges is independent iff
// the subgraph it induces is a forest. The stateful checker is backed by a
// union-find over vertices keyed by connected component under the current
// independent set, so WouldBeIndependentAfterAdding/AddElement both run in
// amortized α(V) time rather than falling back to the default bulk test.
package graphmatroid

import (
	"github.com/lvlath-labs/matroid/core"
	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// Edge is a graphical matroid's ground-set element: an unordered pair of
// vertex IDs. Use NewEdge to build one — it canonicalizes endpoint order so
// that Edge{A,B} == Edge{B,A} compares equal as a map/set key.
type Edge struct {
	U, V string
}

// NewEdge builds a canonical Edge for the unordered pair {a, b}.
func NewEdge(a, b string) Edge {
	if a <= b {
		return Edge{U: a, V: b}
	}

	return Edge{U: b, V: a}
}

// GraphicalMatroid is the cycle matroid of an underlying *core.Graph.
type GraphicalMatroid struct {
	g *core.Graph
}

// New wraps g as a GraphicalMatroid. g must be non-nil; the matroid shares
// g by reference with the caller, who must not mutate it directly while a
// checker or dynamic solver is attached (spec section 5).
func New(g *core.Graph) *GraphicalMatroid {
	return &GraphicalMatroid{g: g}
}

// GroundSet returns every edge of the underlying graph as a matroid element.
//
// Complexity: O(E log E).
func (m *GraphicalMatroid) GroundSet() []Edge {
	edges := m.g.Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = NewEdge(e.From, e.To)
	}

	return out
}

// IsEmpty reports whether the underlying graph has no edges.
func (m *GraphicalMatroid) IsEmpty() bool { return m.g.EdgeCount() == 0 }

// IsIndependent is the bulk test: s is independent iff the subgraph (V, s)
// is a forest, i.e. processing s's edges through a fresh union-find never
// finds two endpoints already connected.
//
// Complexity: O(|s| α(V)).
func (m *GraphicalMatroid) IsIndependent(s *randset.Set[Edge]) bool {
	uf := newUnionFind[string]()
	for _, e := range s.Values() {
		if uf.connected(e.U, e.V) {
			return false
		}
		uf.union(e.U, e.V)
	}

	return true
}

// Weight returns the weight of edge e, or 0 if e is not (or no longer) in
// the ground set.
func (m *GraphicalMatroid) Weight(e Edge) float64 {
	edge, err := m.g.GetEdge(e.U, e.V)
	if err != nil {
		return 0
	}

	return edge.Weight
}

// TotalWeight sums Weight over every element of s.
func (m *GraphicalMatroid) TotalWeight(s *randset.Set[Edge]) float64 {
	var total float64
	for _, e := range s.Values() {
		total += m.Weight(e)
	}

	return total
}

// StatefulChecker returns a union-find-backed checker whose current subset
// is seed. Precondition: seed must already be independent (a forest).
func (m *GraphicalMatroid) StatefulChecker(seed *randset.Set[Edge]) matroid.StatefulIndependenceChecker[Edge] {
	uf := newUnionFind[string]()
	for _, e := range seed.Values() {
		uf.union(e.U, e.V)
	}

	return &checker{m: m, current: seed, uf: uf}
}

// AddElement inserts e into the underlying graph with weight w, or updates
// the weight of an existing edge between e.U and e.V.
func (m *GraphicalMatroid) AddElement(e Edge, w float64) error {
	if m.g.HasEdge(e.U, e.V) {
		edge, err := m.g.GetEdge(e.U, e.V)
		if err != nil {
			return err
		}

		return m.g.SetWeight(edge.ID, w)
	}
	_, err := m.g.AddEdge(e.U, e.V, w)

	return err
}

// RemoveElement removes e from the underlying graph. Removing an edge that
// participates in some attached checker's solution invalidates that
// checker (spec section 4.4); dynamic algorithms are responsible for
// rebuilding their checkers after mutation, which is exactly what
// dynamic.NaiveDynamic's replay mechanism does.
func (m *GraphicalMatroid) RemoveElement(e Edge) error {
	if !m.g.HasEdge(e.U, e.V) {
		return matroid.ErrNotInGroundSet
	}

	return m.g.RemoveEdge(e.U, e.V)
}

// checker is the union-find-backed StatefulIndependenceChecker.
type checker struct {
	m       *GraphicalMatroid
	current *randset.Set[Edge]
	uf      *unionFind[string]
}

// Current returns the checker's current independent subset.
func (c *checker) Current() *randset.Set[Edge] { return c.current }

// WouldBeIndependentAfterAdding reports whether e's endpoints are in
// different components of the current solution's union-find.
//
// Complexity: amortized O(α(V)).
func (c *checker) WouldBeIndependentAfterAdding(e Edge) bool {
	return !c.uf.connected(e.U, e.V)
}

// AddElement unions e's endpoints and adds e to the current subset.
// Returns ErrPreconditionViolation if e's endpoints are already connected.
//
// Complexity: amortized O(α(V)).
func (c *checker) AddElement(e Edge) error {
	if !c.WouldBeIndependentAfterAdding(e) {
		return matroid.ErrPreconditionViolation
	}
	c.uf.union(e.U, e.V)
	c.current.Insert(e)

	return nil
}

// AddIfIndependent combines WouldBeIndependentAfterAdding and AddElement.
func (c *checker) AddIfIndependent(e Edge) bool {
	if !c.WouldBeIndependentAfterAdding(e) {
		return false
	}
	c.uf.union(e.U, e.V)
	c.current.Insert(e)

	return true
}
