package search

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/avelty/grava/core"
)

// Isomorphism reports whether pattern and target are isomorphic and, if so,
// one witnessing bijection. The search quick-rejects on node count, edge
// count, and the degree multiset before backtracking; backtracking assigns
// pattern nodes highest degree first to degree-equal unused target nodes,
// validating edge preservation against every already-mapped pair before
// committing.
//
// Complexity: exponential in the worst case; the degree ordering and
// pairwise pruning keep typical inputs far below that.
func Isomorphism[A, B core.Node](pattern core.Undirected[A], target core.Undirected[B], opts ...Option) (Mapping[A, B], error) {
	if pattern == nil || target == nil {
		return Mapping[A, B]{}, ErrNilGraph
	}

	// 1) Quick rejects: counts, then degree multisets.
	if pattern.NodeCount() != target.NodeCount() || pattern.EdgeCount() != target.EdgeCount() {
		return Mapping[A, B]{}, nil
	}
	degP, err := degrees(pattern)
	if err != nil {
		return Mapping[A, B]{}, err
	}
	degT, err := degrees(target)
	if err != nil {
		return Mapping[A, B]{}, err
	}
	if !slices.Equal(sortedValues(degP), sortedValues(degT)) {
		return Mapping[A, B]{}, nil
	}

	// 2) Backtracking with exact degree matching.
	return match(pattern, target, degP, degT, true, buildOptions(opts))
}

// SubgraphIsomorphism reports whether pattern embeds into target: an
// injective mapping under which every pattern edge is present in the target.
// The target may carry extra nodes and edges; candidate target nodes only
// need degree at least the pattern node's.
func SubgraphIsomorphism[A, B core.Node](pattern core.Undirected[A], target core.Undirected[B], opts ...Option) (Mapping[A, B], error) {
	if pattern == nil || target == nil {
		return Mapping[A, B]{}, ErrNilGraph
	}
	if pattern.NodeCount() > target.NodeCount() || pattern.EdgeCount() > target.EdgeCount() {
		return Mapping[A, B]{}, nil
	}
	degP, err := degrees(pattern)
	if err != nil {
		return Mapping[A, B]{}, err
	}
	degT, err := degrees(target)
	if err != nil {
		return Mapping[A, B]{}, err
	}

	return match(pattern, target, degP, degT, false, buildOptions(opts))
}

// isoFrame is one backtracking level: the candidate scan position for the
// pattern node at this depth and the assignment to undo on backtrack.
type isoFrame[B core.Node] struct {
	i        int
	assigned B
	has      bool
}

// match runs the explicit-stack backtracking shared by both variants. exact
// selects degree-equal candidates and bidirectional edge preservation;
// otherwise degree-at-least and pattern⇒target implication.
func match[A, B core.Node](pattern core.Undirected[A], target core.Undirected[B], degP map[A]int, degT map[B]int, exact bool, opt options) (Mapping[A, B], error) {
	// Highest-degree pattern nodes first: they are the most constrained.
	order := pattern.Nodes()
	slices.SortFunc(order, func(a, b A) int {
		if c := cmp.Compare(degP[b], degP[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})
	if len(order) == 0 {
		return Mapping[A, B]{Found: true, Pairs: map[A]B{}}, nil
	}

	cands := target.Nodes()
	mapping := make(map[A]B, len(order))
	used := make(map[B]bool, len(cands))
	stack := []isoFrame[B]{{}}

	for len(stack) > 0 {
		if err := opt.ctx.Err(); err != nil {
			return Mapping[A, B]{}, fmt.Errorf("search: %w", err)
		}
		depth := len(stack) - 1
		top := &stack[depth]
		a := order[depth]

		// Undo the previous assignment at this depth before advancing.
		if top.has {
			delete(mapping, a)
			used[top.assigned] = false
			top.has = false
		}

		// Scan for the next viable candidate.
		advanced := false
		for ; top.i < len(cands); top.i++ {
			b := cands[top.i]
			if used[b] || !degreeOK(degP[a], degT[b], exact) {
				continue
			}
			if !edgesPreserved(pattern, target, mapping, order[:depth], a, b, exact) {
				continue
			}
			mapping[a] = b
			used[b] = true
			top.assigned = b
			top.has = true
			top.i++
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:depth]
			continue
		}

		if len(stack) == len(order) {
			return Mapping[A, B]{Found: true, Pairs: mapping}, nil
		}
		stack = append(stack, isoFrame[B]{})
	}

	return Mapping[A, B]{}, nil
}

func degreeOK(want, have int, exact bool) bool {
	if exact {
		return want == have
	}

	return have >= want
}

// edgesPreserved validates the tentative pair (a, b) against every mapped
// pair, plus self-loop agreement on (a, b) itself.
func edgesPreserved[A, B core.Node](pattern core.Undirected[A], target core.Undirected[B], mapping map[A]B, mapped []A, a A, b B, exact bool) bool {
	if !edgeOK(pattern.HasEdge(a, a), target.HasEdge(b, b), exact) {
		return false
	}
	for _, p := range mapped {
		if !edgeOK(pattern.HasEdge(p, a), target.HasEdge(mapping[p], b), exact) {
			return false
		}
	}

	return true
}

func edgeOK(inPattern, inTarget, exact bool) bool {
	if exact {
		return inPattern == inTarget
	}

	return !inPattern || inTarget
}

func degrees[N core.Node](g core.Graph[N]) (map[N]int, error) {
	deg := make(map[N]int, g.NodeCount())
	for _, n := range g.Nodes() {
		d, err := g.Degree(n)
		if err != nil {
			return nil, err
		}
		deg[n] = d
	}

	return deg, nil
}

func sortedValues[N core.Node](deg map[N]int) []int {
	vals := make([]int, 0, len(deg))
	for _, d := range deg {
		vals = append(vals, d)
	}
	slices.Sort(vals)

	return vals
}
