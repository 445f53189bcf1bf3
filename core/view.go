// This file declares View, the tagged shape variant resolved once at an
// algorithm's entry. Shape-agnostic algorithms (traversal, cycle detection,
// shortest paths) accept a View and branch on its Shape instead of probing
// the backing store per call.
package core

// Shape tags a View as directed or undirected. There is no third value:
// a View is always built from one of the two shape interfaces.
type Shape int

const (
	// ShapeDirected marks a View over a Directed store.
	ShapeDirected Shape = iota

	// ShapeUndirected marks a View over an Undirected store.
	ShapeUndirected
)

// View is a read-only, shape-resolved adapter over a backing store.
// Successors yields out-neighbors on directed views and neighbors on
// undirected views, so traversal code is written once against View.
//
// The zero View is invalid; algorithms reject it with ErrNilGraph.
type View[N Node] struct {
	shape   Shape
	base    Graph[N]
	succ    func(n N) ([]N, error)
	pred    func(n N) ([]N, error)
	hasEdge func(u, v N) bool
}

// DirectedView resolves a directed store into a View.
// Complexity: O(1).
func DirectedView[N Node](g Directed[N]) View[N] {
	if g == nil {
		return View[N]{}
	}

	return View[N]{
		shape:   ShapeDirected,
		base:    g,
		succ:    g.OutNeighbors,
		pred:    g.InNeighbors,
		hasEdge: g.HasEdge,
	}
}

// UndirectedView resolves an undirected store into a View.
// Predecessors coincide with successors on undirected views.
// Complexity: O(1).
func UndirectedView[N Node](g Undirected[N]) View[N] {
	if g == nil {
		return View[N]{}
	}

	return View[N]{
		shape:   ShapeUndirected,
		base:    g,
		succ:    g.Neighbors,
		pred:    g.Neighbors,
		hasEdge: g.HasEdge,
	}
}

// Shape reports whether the view is directed or undirected.
func (v View[N]) Shape() Shape { return v.shape }

// IsDirected reports whether the view was built from a Directed store.
func (v View[N]) IsDirected() bool { return v.shape == ShapeDirected }

// Base returns the underlying Graph surface, or nil for the zero View.
func (v View[N]) Base() Graph[N] { return v.base }

// Successors returns the nodes reachable from n by one edge:
// out-neighbors on directed views, neighbors on undirected views.
func (v View[N]) Successors(n N) ([]N, error) { return v.succ(n) }

// Predecessors returns the nodes with an edge into n; on undirected views
// this is the same set as Successors.
func (v View[N]) Predecessors(n N) ([]N, error) { return v.pred(n) }

// HasEdge reports whether the edge u→v (directed) or u—v (undirected) exists.
func (v View[N]) HasEdge(u, v2 N) bool { return v.hasEdge(u, v2) }
