// File: methods.go
// Role: Vertex/edge lifecycle — AddVertex, AddEdge, RemoveEdge, HasEdge,
// GetEdge, Vertices, Edges, Neighbors, EdgeCount, VertexCount.
//
// Determinism: Edges() and Vertices() are returned sorted by ID ascending,
// matching the teacher's convention (core/methods_edges.go) for stable
// golden-file and test comparisons.
package core

import (
	"sort"
	"strconv"
)

// nextID generates a stable, monotonically increasing textual edge ID.
func (g *Graph) nextID() string {
	g.nextEdgeID++
	return "e" + strconv.FormatUint(g.nextEdgeID, 10)
}

// AddVertex inserts a vertex with the given ID if absent; no-op if present.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adjacency[id] = make(map[string]string)

	return nil
}

// AddEdge inserts an undirected edge between u and v with the given weight.
// Endpoints are created if absent. Returns ErrLoopNotAllowed for u==v and
// ErrMultiEdgeNotAllowed if an edge between u and v already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) (*Edge, error) {
	if u == "" || v == "" {
		return nil, ErrEmptyVertexID
	}
	if u == v {
		return nil, ErrLoopNotAllowed
	}
	if err := g.AddVertex(u); err != nil {
		return nil, err
	}
	if err := g.AddVertex(v); err != nil {
		return nil, err
	}
	if _, exists := g.adjacency[u][v]; exists {
		return nil, ErrMultiEdgeNotAllowed
	}

	eid := g.nextID()
	e := &Edge{ID: eid, From: u, To: v, Weight: weight}
	g.edges[eid] = e
	g.adjacency[u][v] = eid
	g.adjacency[v][u] = eid

	return e, nil
}

// RemoveEdge removes the edge between u and v. Returns ErrEdgeNotFound if
// no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	eid, ok := g.adjacency[u][v]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// RemoveEdgeByID removes the edge with the given ID. Returns ErrEdgeNotFound
// if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdgeByID(id string) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}

	return g.RemoveEdge(e.From, e.To)
}

// HasEdge reports whether an edge exists between u and v.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// GetEdge returns the edge between u and v, or (nil, ErrEdgeNotFound).
//
// Complexity: O(1).
func (g *Graph) GetEdge(u, v string) (*Edge, error) {
	eid, ok := g.adjacency[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// GetEdgeByID returns the edge with the given ID, or (nil, ErrEdgeNotFound).
//
// Complexity: O(1).
func (g *Graph) GetEdgeByID(id string) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetWeight updates the weight of the edge with the given ID. Returns
// ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) SetWeight(id string, weight float64) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// Vertices returns all vertices sorted by ID ascending.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns all edges sorted by ID ascending.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Neighbors returns the neighbor vertex IDs of v sorted ascending.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v string) []string {
	nbrs := g.adjacency[v]
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }
