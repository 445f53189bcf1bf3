// Package spantree computes minimum and maximum spanning trees of undirected
// weighted graphs.
//
// Kruskal sorts every edge and grows a forest with a disjoint-set union, so
// on a disconnected graph it returns a minimum spanning forest. Prim grows a
// single tree outward from a caller-chosen root, so on a disconnected graph
// it spans only the root's component. The asymmetry is deliberate: Kruskal
// answers "cheapest way to connect everything connectable", Prim answers
// "cheapest tree around this node".
//
// MaximumSpanningTree is Kruskal under an inverted comparator.
//
// Complexity: Kruskal O(E log E), Prim O(E log V) with a binary heap.
package spantree
