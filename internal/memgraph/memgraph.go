// Package memgraph provides minimal adjacency-map stores implementing the
// core capability contract. Concrete containers are outside the public scope
// of this module; these exist so package tests have a backing store to run
// the algorithms against.
//
// Both stores are mutable during construction and must not be mutated while
// an algorithm call is in progress, per the core contract.
package memgraph

import (
	"fmt"
	"slices"

	"github.com/avelty/grava/core"
)

// Directed is a mutable directed weighted adjacency store.
// It implements core.Directed[N] and core.Weighted[N, W].
type Directed[N core.Node, W any] struct {
	out   map[N]map[N]W
	in    map[N]map[N]struct{}
	edges int
}

// NewDirected returns an empty directed store.
func NewDirected[N core.Node, W any]() *Directed[N, W] {
	return &Directed[N, W]{
		out: make(map[N]map[N]W),
		in:  make(map[N]map[N]struct{}),
	}
}

// AddNode inserts n if absent.
func (g *Directed[N, W]) AddNode(n N) {
	if _, ok := g.out[n]; !ok {
		g.out[n] = make(map[N]W)
		g.in[n] = make(map[N]struct{})
	}
}

// AddEdge inserts the edge u→v with weight w, creating endpoints as needed.
// Re-adding an existing edge overwrites its weight (no parallel edges).
func (g *Directed[N, W]) AddEdge(u, v N, w W) {
	g.AddNode(u)
	g.AddNode(v)
	if _, ok := g.out[u][v]; !ok {
		g.edges++
	}
	g.out[u][v] = w
	g.in[v][u] = struct{}{}
}

// NodeCount reports the number of nodes.
func (g *Directed[N, W]) NodeCount() int { return len(g.out) }

// EdgeCount reports the number of directed edges.
func (g *Directed[N, W]) EdgeCount() int { return g.edges }

// Nodes returns all node identifiers in ascending order.
func (g *Directed[N, W]) Nodes() []N {
	ns := make([]N, 0, len(g.out))
	for n := range g.out {
		ns = append(ns, n)
	}
	slices.Sort(ns)

	return ns
}

// HasNode reports whether n is present.
func (g *Directed[N, W]) HasNode(n N) bool {
	_, ok := g.out[n]

	return ok
}

// Degree reports out-degree + in-degree; a self-loop contributes 2.
func (g *Directed[N, W]) Degree(n N) (int, error) {
	if !g.HasNode(n) {
		return 0, fmt.Errorf("memgraph: degree of %v: %w", n, core.ErrNotFound)
	}

	return len(g.out[n]) + len(g.in[n]), nil
}

// OutDegree reports the number of outgoing edges of n.
func (g *Directed[N, W]) OutDegree(n N) (int, error) {
	if !g.HasNode(n) {
		return 0, fmt.Errorf("memgraph: out-degree of %v: %w", n, core.ErrNotFound)
	}

	return len(g.out[n]), nil
}

// InDegree reports the number of incoming edges of n.
func (g *Directed[N, W]) InDegree(n N) (int, error) {
	if !g.HasNode(n) {
		return 0, fmt.Errorf("memgraph: in-degree of %v: %w", n, core.ErrNotFound)
	}

	return len(g.in[n]), nil
}

// OutNeighbors returns the successors of n in ascending order.
func (g *Directed[N, W]) OutNeighbors(n N) ([]N, error) {
	m, ok := g.out[n]
	if !ok {
		return nil, fmt.Errorf("memgraph: out-neighbors of %v: %w", n, core.ErrNotFound)
	}

	return sortedKeys(m), nil
}

// InNeighbors returns the predecessors of n in ascending order.
func (g *Directed[N, W]) InNeighbors(n N) ([]N, error) {
	m, ok := g.in[n]
	if !ok {
		return nil, fmt.Errorf("memgraph: in-neighbors of %v: %w", n, core.ErrNotFound)
	}

	return sortedKeys(m), nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Directed[N, W]) HasEdge(from, to N) bool {
	_, ok := g.out[from][to]

	return ok
}

// EdgeWeight returns the weight of u→v.
func (g *Directed[N, W]) EdgeWeight(u, v N) (W, error) {
	w, ok := g.out[u][v]
	if !ok {
		return w, fmt.Errorf("memgraph: weight of %v→%v: %w", u, v, core.ErrNotFound)
	}

	return w, nil
}

// TryEdgeWeight returns the weight of u→v and whether the edge exists.
func (g *Directed[N, W]) TryEdgeWeight(u, v N) (W, bool) {
	w, ok := g.out[u][v]

	return w, ok
}

// Undirected is a mutable undirected weighted adjacency store.
// It implements core.Undirected[N] and core.Weighted[N, W].
type Undirected[N core.Node, W any] struct {
	adj   map[N]map[N]W
	edges int
}

// NewUndirected returns an empty undirected store.
func NewUndirected[N core.Node, W any]() *Undirected[N, W] {
	return &Undirected[N, W]{adj: make(map[N]map[N]W)}
}

// AddNode inserts n if absent.
func (g *Undirected[N, W]) AddNode(n N) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(map[N]W)
	}
}

// AddEdge inserts the edge u—v with weight w, creating endpoints as needed.
// The edge is observable from both endpoints but counted once.
func (g *Undirected[N, W]) AddEdge(u, v N, w W) {
	g.AddNode(u)
	g.AddNode(v)
	if _, ok := g.adj[u][v]; !ok {
		g.edges++
	}
	g.adj[u][v] = w
	g.adj[v][u] = w
}

// NodeCount reports the number of nodes.
func (g *Undirected[N, W]) NodeCount() int { return len(g.adj) }

// EdgeCount reports the number of logical (undirected) edges.
func (g *Undirected[N, W]) EdgeCount() int { return g.edges }

// Nodes returns all node identifiers in ascending order.
func (g *Undirected[N, W]) Nodes() []N {
	ns := make([]N, 0, len(g.adj))
	for n := range g.adj {
		ns = append(ns, n)
	}
	slices.Sort(ns)

	return ns
}

// HasNode reports whether n is present.
func (g *Undirected[N, W]) HasNode(n N) bool {
	_, ok := g.adj[n]

	return ok
}

// Degree reports the neighbor count of n; a self-loop contributes 1.
func (g *Undirected[N, W]) Degree(n N) (int, error) {
	if !g.HasNode(n) {
		return 0, fmt.Errorf("memgraph: degree of %v: %w", n, core.ErrNotFound)
	}

	return len(g.adj[n]), nil
}

// Neighbors returns the neighbors of n in ascending order.
func (g *Undirected[N, W]) Neighbors(n N) ([]N, error) {
	m, ok := g.adj[n]
	if !ok {
		return nil, fmt.Errorf("memgraph: neighbors of %v: %w", n, core.ErrNotFound)
	}

	return sortedKeys(m), nil
}

// HasEdge reports whether the edge u—v exists; symmetric.
func (g *Undirected[N, W]) HasEdge(u, v N) bool {
	_, ok := g.adj[u][v]

	return ok
}

// EdgeWeight returns the weight of u—v.
func (g *Undirected[N, W]) EdgeWeight(u, v N) (W, error) {
	w, ok := g.adj[u][v]
	if !ok {
		return w, fmt.Errorf("memgraph: weight of %v—%v: %w", u, v, core.ErrNotFound)
	}

	return w, nil
}

// TryEdgeWeight returns the weight of u—v and whether the edge exists.
func (g *Undirected[N, W]) TryEdgeWeight(u, v N) (W, bool) {
	w, ok := g.adj[u][v]

	return w, ok
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[N core.Node, V any](m map[N]V) []N {
	ks := make([]N, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)

	return ks
}
