// Package toposort provides topological ordering of directed graphs in two
// forms:
//
//   - Sort: Kahn's algorithm in one shot. A cyclic input is data, not an
//     error: the result reports Acyclic=false with an empty order.
//
//   - DagProcessor: incremental Kahn's algorithm for streaming consumption.
//     Construction validates acyclicity eagerly and fails with ErrCyclic; the
//     live frontier (nodes with zero remaining unconsumed incoming edges) is
//     then consumed one node at a time via RemoveNode, which reports exactly
//     the nodes freed by that single step. Reset restores the initial
//     frontier without reconstruction, and Order simulates a full run over a
//     private copy of the current state.
//
// Ties inside the frontier resolve in ascending node order, so both forms
// are deterministic for a given store.
//
// Complexity: O(V + E) time and O(V) memory for Sort, construction, Reset,
// and Order; RemoveNode is O(out-degree + log-free) per call.
package toposort
