// SPDX-License-Identifier: MIT
//
// unionFind is a disjoint-set data structure with path compression and
// union by rank, lifted and generalized from the teacher's inline DSU
// closures in prim_kruskal/kruskal.go (find/union over string vertex IDs)
// into a reusable generic type. Vertices are added lazily on first find,
// mirroring Kruskal's "parent[v] = v initially" setup without requiring a
// pre-known vertex set up front (a graphical matroid's checker grows its
// union-find incrementally as elements are added).
package graphmatroid

// unionFind is an α(n)-amortized disjoint-set structure over keys of type K.
type unionFind[K comparable] struct {
	parent map[K]K
	rank   map[K]int
}

func newUnionFind[K comparable]() *unionFind[K] {
	return &unionFind[K]{parent: make(map[K]K), rank: make(map[K]int)}
}

// find returns the representative of x's component, creating a new
// singleton component for x if it hasn't been seen before.
//
// Complexity: amortized O(α(n)) via path compression.
func (u *unionFind[K]) find(x K) K {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
		u.rank[x] = 0

		return x
	}

	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// path compression: repoint every visited node directly at root.
	for u.parent[x] != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}

	return root
}

// union merges the components containing a and b, attaching the
// lower-rank tree under the higher-rank root (union by rank).
//
// Complexity: amortized O(α(n)).
func (u *unionFind[K]) union(a, b K) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}

// connected reports whether a and b are in the same component.
func (u *unionFind[K]) connected(a, b K) bool {
	return u.find(a) == u.find(b)
}
