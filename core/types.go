// This file declares the Node constraint, Edge value types, and the sentinel
// error taxonomy shared by every algorithm package.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors forming the module-wide taxonomy. Algorithm packages wrap
// these with package-local sentinels via fmt.Errorf("pkg: ...: %w", ...).
var (
	// ErrNilGraph indicates a nil graph, view, or other required input.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNotFound indicates a referenced node or edge is absent from the graph.
	ErrNotFound = errors.New("core: not found")

	// ErrInvalidState indicates the graph violates a structural precondition
	// of the call (e.g. a negative cycle, or a cycle where a DAG is required).
	ErrInvalidState = errors.New("core: invalid state")

	// ErrUnsupportedWeight indicates no arithmetic trait is available for the
	// weight type and none was supplied by the caller.
	ErrUnsupportedWeight = errors.New("core: unsupported weight type")
)

// Node constrains graph node identifiers: opaque, comparable, totally
// ordered, unique within one graph instance, carrying no payload.
type Node interface {
	cmp.Ordered
}

// Edge is an ordered (From, To) node pair. For undirected stores the same
// logical edge is observable from either endpoint; parallel edges between an
// ordered pair are not distinguished.
type Edge[N Node] struct {
	From N
	To   N
}

// WeightedEdge is an Edge carrying a weight of a caller-chosen type.
type WeightedEdge[N Node, W any] struct {
	From   N
	To     N
	Weight W
}
