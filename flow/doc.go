// Package flow computes maximum flows and minimum cuts on directed
// capacitated graphs.
//
// FordFulkerson augments along any residual path found by depth-first
// search; EdmondsKarp augments along shortest residual paths found by
// breadth-first search, which bounds the number of augmentations by O(V*E).
// Both report the same maximum-flow value on the same graph, though not
// necessarily the same flow decomposition. MinCut extracts the partition
// certified by max-flow/min-cut duality from the final residual graph.
//
// Capacities live in a caller-chosen weight domain through FlowArith, which
// extends ordinary weight arithmetic with subtraction for residual updates.
// Self-loops are ignored. Every call recomputes from scratch; nothing is
// cached between calls.
//
// Complexity: EdmondsKarp O(V*E^2). FordFulkerson O(E*F) for integral
// capacities with maximum flow F; termination is not guaranteed for
// irrational capacities, as is classical.
package flow
