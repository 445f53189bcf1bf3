// This file declares the read-only capability interfaces consumed by every
// algorithm: Graph plus the Directed/Undirected shape extensions and the
// Weighted lookup extension.
package core

// Graph is the minimal read-only surface common to every backing store.
//
// Nodes must return node identifiers in ascending order so that algorithms
// iterating the node set are deterministic across stores. The surface is
// immutable for the duration of an algorithm call.
//
// Degree counts out-degree + in-degree on directed graphs (a self-loop
// contributes 2) and the neighbor count on undirected graphs (a self-loop
// contributes 1).
type Graph[N Node] interface {
	// NodeCount reports the number of nodes.
	NodeCount() int

	// EdgeCount reports the number of logical edges.
	EdgeCount() int

	// Nodes returns all node identifiers in ascending order.
	Nodes() []N

	// HasNode reports whether n belongs to the graph.
	HasNode(n N) bool

	// Degree reports the degree of n, or an error wrapping ErrNotFound
	// if n is absent.
	Degree(n N) (int, error)
}

// Directed is the capability surface of a directed backing store.
type Directed[N Node] interface {
	Graph[N]

	// OutNeighbors returns the successors of n in ascending order.
	OutNeighbors(n N) ([]N, error)

	// InNeighbors returns the predecessors of n in ascending order.
	InNeighbors(n N) ([]N, error)

	// OutDegree reports the number of outgoing edges of n.
	OutDegree(n N) (int, error)

	// InDegree reports the number of incoming edges of n.
	InDegree(n N) (int, error)

	// HasEdge reports whether the directed edge from→to exists.
	HasEdge(from, to N) bool
}

// Undirected is the capability surface of an undirected backing store.
type Undirected[N Node] interface {
	Graph[N]

	// Neighbors returns the neighbors of n in ascending order.
	Neighbors(n N) ([]N, error)

	// HasEdge reports whether the edge u—v exists; symmetric in u and v.
	HasEdge(u, v N) bool
}

// Weighted extends a backing store with per-edge weight lookup. For
// undirected stores the lookup is symmetric in (u, v).
type Weighted[N Node, W any] interface {
	// EdgeWeight returns the weight of edge u→v, or an error wrapping
	// ErrNotFound if the edge is absent.
	EdgeWeight(u, v N) (W, error)

	// TryEdgeWeight returns the weight of edge u→v and whether it exists.
	TryEdgeWeight(u, v N) (W, bool)
}
