// This file implements DagProcessor, the stateful incremental Kahn consumer.
// It is the only stateful entity in the module: derived, mutable, tied 1:1
// to one immutable input DAG.
package toposort

import (
	"fmt"
	"maps"
	"slices"

	"github.com/avelty/grava/core"
)

// ErrNotInFrontier is returned by RemoveNode for a node that is absent,
// already consumed, or still has unconsumed incoming edges.
var ErrNotInFrontier = fmt.Errorf("toposort: node not in frontier: %w", core.ErrNotFound)

// DagProcessor consumes a DAG frontier-first, one node per step. Unlike
// Sort, construction fails eagerly with ErrCyclic on cyclic input.
//
// The processor never mutates the underlying graph; only its own counters.
type DagProcessor[N core.Node] struct {
	g        core.Directed[N]
	initial  map[N]int // in-degrees at construction, for Reset
	remain   map[N]int // unconsumed incoming edges per unconsumed node
	frontier []N       // sorted zero-remaining unconsumed nodes
	freed    []N       // nodes freed by the most recent RemoveNode
}

// NewDagProcessor validates that g is acyclic and builds the initial
// frontier. Returns ErrNilGraph or ErrCyclic.
//
// Complexity: O(V + E) time (includes the acyclicity run), O(V) memory.
func NewDagProcessor[N core.Node](g core.Directed[N]) (*DagProcessor[N], error) {
	// 1) Validation is exactly a one-shot sort.
	res, err := Sort(g)
	if err != nil {
		return nil, err
	}
	if !res.Acyclic {
		return nil, ErrCyclic
	}

	// 2) Snapshot in-degrees once; Reset replays this snapshot.
	nodes := g.Nodes()
	initial := make(map[N]int, len(nodes))
	for _, n := range nodes {
		d, derr := g.InDegree(n)
		if derr != nil {
			return nil, fmt.Errorf("toposort: in-degree of %v: %w", n, derr)
		}
		initial[n] = d
	}

	p := &DagProcessor[N]{g: g, initial: initial}
	p.Reset()

	return p, nil
}

// Frontier returns the nodes currently consumable: zero remaining unconsumed
// incoming edges, ascending order. The returned slice is a copy.
func (p *DagProcessor[N]) Frontier() []N {
	return slices.Clone(p.frontier)
}

// Pending reports how many nodes have not been consumed yet.
func (p *DagProcessor[N]) Pending() int { return len(p.remain) }

// RemoveNode consumes one frontier node, decrements its successors'
// counters, and returns exactly the nodes that newly joined the frontier
// from this single step (ascending order; recomputed every call).
// Returns ErrNotInFrontier if n is not currently consumable.
//
// Complexity: O(out-degree(n) + log |frontier|).
func (p *DagProcessor[N]) RemoveNode(n N) ([]N, error) {
	at, ok := slices.BinarySearch(p.frontier, n)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotInFrontier, n)
	}

	p.frontier = slices.Delete(p.frontier, at, at+1)
	delete(p.remain, n)
	p.freed = p.freed[:0]

	succ, err := p.g.OutNeighbors(n)
	if err != nil {
		return nil, fmt.Errorf("toposort: out-neighbors of %v: %w", n, err)
	}
	for _, x := range succ {
		if _, alive := p.remain[x]; !alive {
			continue
		}
		p.remain[x]--
		if p.remain[x] == 0 {
			p.freed = append(p.freed, x)
			fat, _ := slices.BinarySearch(p.frontier, x)
			p.frontier = slices.Insert(p.frontier, fat, x)
		}
	}
	slices.Sort(p.freed)

	return slices.Clone(p.freed), nil
}

// Reset restores the initial frontier and counters without touching the
// graph. Complexity: O(V).
func (p *DagProcessor[N]) Reset() {
	p.remain = maps.Clone(p.initial)
	p.frontier = p.frontier[:0]
	for _, n := range p.g.Nodes() {
		if p.initial[n] == 0 {
			p.frontier = append(p.frontier, n)
		}
	}
	p.freed = nil
}

// Order simulates consuming the remaining nodes over a private copy of the
// current state and returns the resulting topological order. Live state is
// untouched: Frontier and counters are identical before and after.
//
// Complexity: O(V + E) time, O(V) memory.
func (p *DagProcessor[N]) Order() []N {
	remain := maps.Clone(p.remain)
	frontier := slices.Clone(p.frontier)

	order := make([]N, 0, len(remain))
	for len(frontier) > 0 {
		n := frontier[0]
		frontier = frontier[1:]
		delete(remain, n)
		order = append(order, n)

		succ, err := p.g.OutNeighbors(n)
		if err != nil {
			// Construction proved every node resolvable; a failure here
			// means the store was mutated mid-call, which the contract
			// forbids.
			return order
		}
		for _, x := range succ {
			if _, alive := remain[x]; !alive {
				continue
			}
			remain[x]--
			if remain[x] == 0 {
				at, _ := slices.BinarySearch(frontier, x)
				frontier = slices.Insert(frontier, at, x)
			}
		}
	}

	return order
}
