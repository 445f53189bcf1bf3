// This file implements dense all-pairs Floyd-Warshall over an index-mapped
// node slice. Absence of a path is tracked by a reachability plane rather
// than an infinity value, since the weight type has none.
package path

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// AllPairs is the immutable outcome of a Floyd-Warshall run. Distances and
// path reconstruction are served from the closed matrices.
type AllPairs[N core.Node, W any] struct {
	nodes []N
	index map[N]int
	dist  [][]W
	reach [][]bool
	next  [][]int // next[i][j] = index of the node after i on the path to j
	ar    core.Arith[W]
}

// FloydWarshall computes shortest distances between every ordered node pair
// by dense O(V³) relaxation. Negative edges are tolerated; a negative value
// on any diagonal entry after completion proves a negative cycle and fails
// the call with ErrNegativeCycle.
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall[N core.Node, W any](
	v core.View[N],
	wt core.Weighted[N, W],
	ar core.Arith[W],
	opts ...Option,
) (*AllPairs[N, W], error) {
	// 1) Validate.
	if v.Base() == nil {
		return nil, ErrNilGraph
	}
	if wt == nil {
		return nil, ErrNilWeights
	}
	if ar == nil {
		return nil, ErrNoArith
	}
	opt := buildOptions(opts)

	// 2) Index the node set and seed the matrices: zero diagonal, direct
	// edges, everything else unreachable.
	nodes := v.Base().Nodes()
	n := len(nodes)
	index := make(map[N]int, n)
	for i, nd := range nodes {
		index[nd] = i
	}

	dist := make([][]W, n)
	reach := make([][]bool, n)
	next := make([][]int, n)
	for i := range dist {
		dist[i] = make([]W, n)
		reach[i] = make([]bool, n)
		next[i] = make([]int, n)
		for j := range next[i] {
			next[i][j] = -1
		}
		dist[i][i] = ar.Zero()
		reach[i][i] = true
		next[i][i] = i
	}

	for i, u := range nodes {
		succ, err := v.Successors(u)
		if err != nil {
			return nil, fmt.Errorf("path: successors of %v: %w", u, err)
		}
		for _, x := range succ {
			j := index[x]
			w, werr := wt.EdgeWeight(u, x)
			if werr != nil {
				return nil, fmt.Errorf("path: weight of %v→%v: %w", u, x, werr)
			}
			if i == j {
				// A non-negative self-loop never shortens anything;
				// a negative one is already a negative cycle.
				if ar.Compare(w, ar.Zero()) < 0 {
					return nil, ErrNegativeCycle
				}
				continue
			}
			if !reach[i][j] || ar.Compare(w, dist[i][j]) < 0 {
				dist[i][j] = w
				reach[i][j] = true
				next[i][j] = j
			}
		}
	}

	// 3) Triple relaxation in fixed k-i-j order for determinism.
	for k := 0; k < n; k++ {
		if err := opt.ctx.Err(); err != nil {
			return nil, fmt.Errorf("path: %w", err)
		}
		for i := 0; i < n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if !reach[k][j] {
					continue
				}
				cand := ar.Add(dist[i][k], dist[k][j])
				if !reach[i][j] || ar.Compare(cand, dist[i][j]) < 0 {
					dist[i][j] = cand
					reach[i][j] = true
					next[i][j] = next[i][k]
				}
			}
		}
	}

	// 4) A negative diagonal entry proves a negative cycle.
	for i := 0; i < n; i++ {
		if ar.Compare(dist[i][i], ar.Zero()) < 0 {
			return nil, ErrNegativeCycle
		}
	}

	return &AllPairs[N, W]{nodes: nodes, index: index, dist: dist, reach: reach, next: next, ar: ar}, nil
}

// Distance reports the shortest total weight from u to v and whether v is
// reachable from u. Unknown nodes report unreachable.
func (a *AllPairs[N, W]) Distance(u, v N) (W, bool) {
	var zero W
	i, ok := a.index[u]
	if !ok {
		return zero, false
	}
	j, ok := a.index[v]
	if !ok {
		return zero, false
	}
	if !a.reach[i][j] {
		return zero, false
	}

	return a.dist[i][j], true
}

// Path returns the single-pair snapshot from u to v, reconstructed from the
// closed next matrix. Unknown or unreachable pairs yield Found=false.
func (a *AllPairs[N, W]) Path(u, v N) Result[N, W] {
	i, ok := a.index[u]
	if !ok {
		return Result[N, W]{}
	}
	j, ok := a.index[v]
	if !ok {
		return Result[N, W]{}
	}
	if !a.reach[i][j] {
		return Result[N, W]{}
	}

	seq := []N{a.nodes[i]}
	for i != j {
		i = a.next[i][j]
		seq = append(seq, a.nodes[i])
	}

	return Result[N, W]{Found: true, Nodes: seq, Weight: a.dist[a.index[u]][j]}
}
