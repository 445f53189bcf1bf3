// Package coloring provides greedy vertex coloring and the bipartiteness
// check for undirected graphs.
//
// GreedyColoring is a heuristic: it colors nodes in descending degree order
// with the smallest color unused by an already-colored neighbor, so the
// reported chromatic number is an upper bound, not the minimum. IsBipartite
// is exact: a graph is bipartite iff BFS two-coloring never meets a
// monochromatic edge.
package coloring
