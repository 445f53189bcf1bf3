// Package traverse implements depth-first and breadth-first walks over a
// core.View, classifying every probed edge and notifying a Visitor in
// traversal order.
//
// DFS classifies edges via discovery/finish timestamps:
//
//   - unvisited target                          → tree edge
//   - discovered but unfinished target          → back edge
//   - finished target, discovered after source  → forward edge (directed only)
//   - otherwise                                 → cross edge
//
// BFS classifies via parent tracking instead of timestamps; in undirected
// graphs the edge back to a node's parent is suppressed from back-edge
// classification.
//
// Neighbor probing order is whatever the backing store yields; it is a
// property of the store, not guaranteed across representations.
//
// DFS uses an explicit frame stack rather than recursion, so traversal depth
// is bounded by heap memory, not goroutine stack.
//
// DepthFirstNodes and BreadthFirstNodes expose the reachable set as finite,
// restartable lazy sequences (iter.Seq); each ranging starts from fresh state.
//
// Complexity:
//
//   - Time:   O(V + E) plus visitor callback cost.
//   - Memory: O(V) for state maps and the frame stack or queue.
//
// Errors:
//
//   - ErrNilGraph      if the view is the zero View.
//   - ErrStartNotFound if the start node is absent.
//   - context.Canceled / DeadlineExceeded if a WithContext context ends.
package traverse
