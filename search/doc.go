// Package search contains the structural search algorithms: graph and
// subgraph isomorphism, and clique detection.
//
// All of them are worst-case exponential by problem nature. Each accepts a
// WithContext option checked inside the backtracking loops, so callers can
// impose an external time budget on adversarial inputs. Backtracking state
// lives in explicit frame stacks, never in goroutine-stack recursion.
//
// Isomorphism and SubgraphIsomorphism produce either a complete mapping or
// a clean rejection; partial mappings are never reported. The clique
// searches operate on undirected graphs and ignore self-loops.
package search
