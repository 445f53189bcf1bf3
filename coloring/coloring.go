package coloring

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/avelty/grava/core"
)

// ErrNilGraph is returned when the graph is nil.
var ErrNilGraph = fmt.Errorf("coloring: %w", core.ErrNilGraph)

// Coloring assigns every node a color in [0, ChromaticNumber). Adjacent
// nodes never share a color; ChromaticNumber is the count of colors used,
// an upper bound on the true chromatic number.
type Coloring[N core.Node] struct {
	Colors          map[N]int
	ChromaticNumber int
}

// GreedyColoring colors nodes in descending degree order, assigning each the
// smallest color not used by an already-colored neighbor. Self-loops are
// ignored: a node is never its own conflict.
//
// Complexity: O(V log V + V + E) time.
func GreedyColoring[N core.Node](g core.Undirected[N]) (Coloring[N], error) {
	if g == nil {
		return Coloring[N]{}, ErrNilGraph
	}

	// 1) Order nodes by descending degree, ascending id as the tie-break.
	order := g.Nodes()
	deg := make(map[N]int, len(order))
	for _, n := range order {
		d, err := g.Degree(n)
		if err != nil {
			return Coloring[N]{}, err
		}
		deg[n] = d
	}
	slices.SortFunc(order, func(a, b N) int {
		if c := cmp.Compare(deg[b], deg[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	// 2) Assign each node the smallest color free among its neighbors.
	res := Coloring[N]{Colors: make(map[N]int, len(order))}
	for _, n := range order {
		nbs, err := g.Neighbors(n)
		if err != nil {
			return Coloring[N]{}, err
		}
		taken := make(map[int]bool, len(nbs))
		for _, v := range nbs {
			if v == n {
				continue
			}
			if c, ok := res.Colors[v]; ok {
				taken[c] = true
			}
		}
		c := 0
		for taken[c] {
			c++
		}
		res.Colors[n] = c
		if c+1 > res.ChromaticNumber {
			res.ChromaticNumber = c + 1
		}
	}

	return res, nil
}

// Bipartition is the outcome of a bipartiteness check. Either Bipartite is
// true with every node in exactly one of the two sides (both sorted
// ascending), or Bipartite is false with both sides empty. Partial
// partitions are never reported.
type Bipartition[N core.Node] struct {
	Bipartite bool
	Left      []N
	Right     []N
}

// IsBipartite two-colors each connected component by breadth-first search.
// A monochromatic edge anywhere, including a self-loop, proves the graph is
// not bipartite and discards all partition work.
//
// Complexity: O(V + E) time.
func IsBipartite[N core.Node](g core.Undirected[N]) (Bipartition[N], error) {
	if g == nil {
		return Bipartition[N]{}, ErrNilGraph
	}

	side := make(map[N]bool, g.NodeCount())
	for _, start := range g.Nodes() {
		if _, seen := side[start]; seen {
			continue
		}
		side[start] = false
		queue := []N{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			nbs, err := g.Neighbors(u)
			if err != nil {
				return Bipartition[N]{}, err
			}
			for _, v := range nbs {
				if v == u {
					return Bipartition[N]{}, nil // self-loop is monochromatic
				}
				if s, seen := side[v]; seen {
					if s == side[u] {
						return Bipartition[N]{}, nil
					}
					continue
				}
				side[v] = !side[u]
				queue = append(queue, v)
			}
		}
	}

	res := Bipartition[N]{Bipartite: true}
	for _, n := range g.Nodes() {
		if side[n] {
			res.Right = append(res.Right, n)
		} else {
			res.Left = append(res.Left, n)
		}
	}

	return res, nil
}
