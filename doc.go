// Package grava is a generic graph-algorithms engine: solvers for shortest
// paths, spanning trees, maximum flows, structural search, topological
// orderings, components, colorings, and traversal orders, all written
// against a minimal read-only capability contract instead of a concrete
// storage type.
//
// 🚀 What is grava?
//
//	A pure-Go library of classical graph algorithms that stays generic over
//	arbitrary backing stores and arbitrary numeric weight domains:
//		• Traversal: DFS & BFS with tree/back/forward/cross edge
//		  classification and a visitor contract
//		• Components: union-find connected components, Tarjan SCC,
//		  cycle detection with witness reconstruction
//		• Ordering: Kahn topological sort and a stateful, resettable
//		  DagProcessor frontier
//		• Shortest paths: BFS distance, Dijkstra, A*, Bellman-Ford,
//		  Floyd-Warshall
//		• Spanning trees: Kruskal, Prim, maximum spanning tree
//		• Max flow: Ford-Fulkerson, Edmonds-Karp, minimum cut
//		• Structural search: graph & subgraph isomorphism, maximum clique,
//		  Bron-Kerbosch enumeration, fixed-size cliques
//		• Coloring: greedy coloring and the bipartiteness check
//
// ✨ Design points
//
//   - Capability contract – every solver consumes the read-only interfaces
//     in core; bring any store that satisfies them
//   - Tagged shape – directed vs undirected is resolved once at entry into
//     a core.View, never probed per call
//   - Weight traits – distance and flow arithmetic travel through
//     core.Arith / core.FlowArith, so weights are any ordered domain with
//     the needed operators
//   - Explicit frames – deep traversals and backtracking searches run on
//     heap-allocated stacks, never on goroutine-stack recursion
//
// Package map:
//
//	core/       — capability contracts, View, weight traits, error taxonomy
//	traverse/   — DFS, BFS, visitor, lazy node sequences
//	components/ — connected & strongly-connected components, cycles
//	toposort/   — Kahn sort, DagProcessor
//	path/       — single-pair and all-pairs shortest paths
//	spantree/   — Kruskal, Prim, MaximumSpanningTree
//	flow/       — FordFulkerson, EdmondsKarp, MinCut
//	search/     — isomorphism, cliques
//	coloring/   — GreedyColoring, IsBipartite
//
//	go get github.com/avelty/grava
package grava
