// Package components partitions graphs into connected pieces and detects
// cycles.
//
//   - ConnectedComponents: union-find with path compression and union by
//     rank over an undirected graph; every node appears in exactly one
//     component.
//
//   - StronglyConnectedComponents: single-pass index/low-link (Tarjan) over
//     a directed graph; maximal mutually-reachable sets, singletons for
//     isolated nodes, emitted in reverse discovery order.
//
//   - HasCycle / FindCycle: dispatch on the view's shape. Directed graphs
//     use a three-color walk detecting a back edge to a gray node;
//     undirected graphs use a parent-tracking walk detecting a non-parent
//     revisit. FindCycle reconstructs the cycle from parent back-pointers.
//
// All walks use explicit stacks; recursion depth never tracks graph depth.
//
// Complexity: O(V + E) time, O(V) memory for every function
// (union-find adds the inverse-Ackermann factor).
package components
