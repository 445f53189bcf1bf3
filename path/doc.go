// Package path provides shortest-path solvers over the core capability
// contract: unweighted hop-count BFS, Dijkstra, A*, Bellman-Ford, and
// all-pairs Floyd-Warshall.
//
// Every weighted solver separates three concerns: successor enumeration
// comes from the core.View, edge cost from a core.Weighted lookup, and
// distance arithmetic from a core.Arith trait, so the weight type itself
// needs no built-in arithmetic.
//
// Results are immutable value snapshots. A reachable target yields the full
// inclusive source..target node sequence and total weight; an unreachable
// target yields Found=false with an empty sequence and zero weight, never a
// partial path and never an error. Missing source or target fails with a
// NotFound sentinel before any computation starts.
//
// Negative weights: Dijkstra and A* assume non-negative edge weights and do
// not validate them. Bellman-Ford tolerates negative edges and fails with
// ErrNegativeCycle when a cycle of negative total weight is reachable;
// Floyd-Warshall fails identically when any diagonal entry turns negative.
//
// A* never validates heuristic admissibility: an inadmissible heuristic
// silently yields a possibly suboptimal path.
//
// Complexity:
//
//   - BFSDistance:    O(V + E)
//   - Dijkstra, A*:   O((V + E) log V) with a lazy-decrease-key binary heap
//   - BellmanFord:    O(V · E)
//   - FloydWarshall:  O(V³) time, O(V²) memory
package path
