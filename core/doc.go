// Package core defines the read-only capability contract every algorithm in
// this module consumes: node and neighbor enumeration, degree, edge existence,
// and edge-weight lookup. No algorithm ever assumes a concrete storage type:
// adjacency lists, matrices, or external stores all plug in behind the same
// small interfaces.
//
// Three building blocks live here:
//
//   - Graph, Directed, Undirected, Weighted — the capability interfaces.
//     A store implements Graph plus the shape extension matching its
//     semantics; weighted stores additionally implement Weighted.
//
//   - View — a tagged (directed | undirected) adapter built once at an
//     algorithm's entry via DirectedView or UndirectedView. Shape-agnostic
//     algorithms branch on View.Shape instead of probing the store
//     dynamically, so there is no "unknown shape" fallback anywhere.
//
//   - Arith and FlowArith — compile-time weight-capability traits supplying
//     the zero value, addition (and subtraction for flow), and an ordering
//     comparator for a caller-chosen weight type. Numeric and NumericFlow
//     build traits for any real-number kernel type; exotic weight domains
//     supply their own trait. Passing a nil trait fails fast with
//     ErrUnsupportedWeight at the first call.
//
// Errors:
//
//	ErrNilGraph          - a nil graph or view was passed to an algorithm.
//	ErrNotFound          - a referenced node or edge is absent from the graph.
//	ErrInvalidState      - the graph violates a structural precondition
//	                       (negative cycle, cyclic input to a DAG consumer).
//	ErrUnsupportedWeight - no arithmetic trait was supplied for the weight type.
//
// Algorithm packages wrap these sentinels with their own, so both
// errors.Is(err, path.ErrNegativeCycle) and errors.Is(err, core.ErrInvalidState)
// hold.
//
// The contract is immutable-during-call: no algorithm mutates the surface,
// and no algorithm may run concurrently with a mutation of the backing store.
// Caller-side serialization is assumed, not internal locking.
package core
