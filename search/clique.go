package search

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/avelty/grava/core"
)

// ErrInvalidSize is returned by the fixed-size clique searches for a
// non-positive size.
var ErrInvalidSize = fmt.Errorf("search: clique size must be positive: %w", core.ErrInvalidState)

// cliqueFrame is one level of the ascending-combination expansion: the
// candidate list, the scan position, and whether entering this frame
// extended the working clique by one node.
type cliqueFrame[N core.Node] struct {
	cands  []N
	i      int
	member bool
}

// FindMaximumClique returns one clique of maximum size, members ascending.
// Branch-and-bound over ascending candidate combinations: a branch is cut as
// soon as the working clique plus all remaining candidates cannot beat the
// best clique found so far.
//
// Complexity: exponential in the worst case.
func FindMaximumClique[N core.Node](g core.Undirected[N], opts ...Option) ([]N, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	opt := buildOptions(opts)
	adj, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	var best, r []N
	stack := []cliqueFrame[N]{{cands: adj.nodes}}
	for len(stack) > 0 {
		if err := opt.ctx.Err(); err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		top := &stack[len(stack)-1]

		// Exhausted, or too few candidates left to beat best.
		if top.i >= len(top.cands) || len(r)+len(top.cands)-top.i <= len(best) {
			if top.member {
				r = r[:len(r)-1]
			}
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.cands[top.i]
		top.i++
		child := filterConnected(adj, top.cands[top.i:], v)
		r = append(r, v)
		if len(r) > len(best) {
			best = slices.Clone(r)
		}
		if len(child) == 0 {
			r = r[:len(r)-1]
			continue
		}
		stack = append(stack, cliqueFrame[N]{cands: child, member: true})
	}

	return best, nil
}

// FindAllMaximalCliques enumerates every maximal clique exactly once using
// Bron-Kerbosch with pivoting. Each clique is sorted ascending and the list
// is ordered lexicographically.
//
// Complexity: O(3^(V/3)) worst case, which is tight for Moon-Moser graphs.
func FindAllMaximalCliques[N core.Node](g core.Undirected[N], opts ...Option) ([][]N, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	opt := buildOptions(opts)
	adj, err := snapshot(g)
	if err != nil {
		return nil, err
	}
	if len(adj.nodes) == 0 {
		return nil, nil
	}

	p := make(map[N]bool, len(adj.nodes))
	for _, n := range adj.nodes {
		p[n] = true
	}

	var out [][]N
	var r []N
	stack := []bkFrame[N]{{p: p, x: map[N]bool{}, cands: pivotCands(adj, p, map[N]bool{})}}
	for len(stack) > 0 {
		if err := opt.ctx.Err(); err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		top := &stack[len(stack)-1]
		if top.i >= len(top.cands) {
			if top.member {
				r = r[:len(r)-1]
			}
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.cands[top.i]
		top.i++
		childP := intersect(adj, top.p, v)
		childX := intersect(adj, top.x, v)
		delete(top.p, v)
		top.x[v] = true

		r = append(r, v)
		if len(childP) == 0 && len(childX) == 0 {
			clique := slices.Clone(r)
			slices.Sort(clique)
			out = append(out, clique)
			r = r[:len(r)-1]
			continue
		}
		stack = append(stack, bkFrame[N]{
			p:      childP,
			x:      childX,
			cands:  pivotCands(adj, childP, childX),
			member: true,
		})
	}

	slices.SortFunc(out, compareCliques)

	return out, nil
}

// FindCliquesOfSize enumerates every clique of exactly size k, each sorted
// ascending, the list ordered lexicographically. The cliques need not be
// maximal.
func FindCliquesOfSize[N core.Node](g core.Undirected[N], k int, opts ...Option) ([][]N, error) {
	return cliquesOfSize(g, k, true, opts)
}

// HasCliqueOfSize reports whether any clique of exactly size k exists,
// stopping at the first witness.
func HasCliqueOfSize[N core.Node](g core.Undirected[N], k int, opts ...Option) (bool, error) {
	found, err := cliquesOfSize(g, k, false, opts)
	if err != nil {
		return false, err
	}

	return len(found) > 0, nil
}

// cliquesOfSize runs the bounded ascending-combination expansion; when all
// is false the search stops at the first clique of size k.
func cliquesOfSize[N core.Node](g core.Undirected[N], k int, all bool, opts []Option) ([][]N, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k <= 0 {
		return nil, ErrInvalidSize
	}
	opt := buildOptions(opts)
	adj, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	var out [][]N
	var r []N
	stack := []cliqueFrame[N]{{cands: adj.nodes}}
	for len(stack) > 0 {
		if err := opt.ctx.Err(); err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		top := &stack[len(stack)-1]

		// Exhausted, or too few candidates left to ever reach size k.
		if top.i >= len(top.cands) || len(r)+len(top.cands)-top.i < k {
			if top.member {
				r = r[:len(r)-1]
			}
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.cands[top.i]
		top.i++
		r = append(r, v)
		if len(r) == k {
			out = append(out, slices.Clone(r))
			r = r[:len(r)-1]
			if !all {
				return out, nil
			}
			continue
		}
		child := filterConnected(adj, top.cands[top.i:], v)
		if len(child) == 0 {
			r = r[:len(r)-1]
			continue
		}
		stack = append(stack, cliqueFrame[N]{cands: child, member: true})
	}

	return out, nil
}

// bkFrame is one Bron-Kerbosch level: live P and X sets and the pivot-pruned
// candidate order.
type bkFrame[N core.Node] struct {
	cands  []N
	i      int
	p      map[N]bool
	x      map[N]bool
	member bool
}

// pivotCands picks the pivot u from P∪X with the most neighbors in P and
// returns the sorted members of P not adjacent to u. Branching only on
// non-neighbors of the pivot is what makes the enumeration exactly-once
// without redundant descents.
func pivotCands[N core.Node](adj *adjacency[N], p, x map[N]bool) []N {
	var pivot N
	bestCover := -1
	for _, u := range sortedKeys(p, x) {
		cover := 0
		for w := range p {
			if adj.connected(u, w) {
				cover++
			}
		}
		if cover > bestCover {
			pivot, bestCover = u, cover
		}
	}

	cands := make([]N, 0, len(p))
	for w := range p {
		if !adj.connected(pivot, w) {
			cands = append(cands, w)
		}
	}
	slices.Sort(cands)

	return cands
}

// intersect returns the members of set adjacent to v.
func intersect[N core.Node](adj *adjacency[N], set map[N]bool, v N) map[N]bool {
	out := make(map[N]bool)
	for w := range set {
		if adj.connected(v, w) {
			out[w] = true
		}
	}

	return out
}

// filterConnected keeps the candidates adjacent to v, preserving order.
func filterConnected[N core.Node](adj *adjacency[N], cands []N, v N) []N {
	var out []N
	for _, w := range cands {
		if adj.connected(v, w) {
			out = append(out, w)
		}
	}

	return out
}

// sortedKeys returns the union of both key sets ascending.
func sortedKeys[N core.Node](a, b map[N]bool) []N {
	keys := make([]N, 0, len(a)+len(b))
	for n := range a {
		keys = append(keys, n)
	}
	for n := range b {
		if !a[n] {
			keys = append(keys, n)
		}
	}
	slices.Sort(keys)

	return keys
}

// compareCliques orders cliques lexicographically, shorter first on a
// shared prefix.
func compareCliques[N core.Node](a, b []N) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}
