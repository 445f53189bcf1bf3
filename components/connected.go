// This file implements undirected connected components via a disjoint-set
// union with path compression and union by rank.
package components

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// ErrNilGraph is returned when a nil graph is passed.
var ErrNilGraph = fmt.Errorf("components: %w", core.ErrNilGraph)

// dsu is a disjoint-set union over node identifiers.
type dsu[N core.Node] struct {
	parent map[N]N
	rank   map[N]int
}

func newDSU[N core.Node](nodes []N) *dsu[N] {
	d := &dsu[N]{
		parent: make(map[N]N, len(nodes)),
		rank:   make(map[N]int, len(nodes)),
	}
	for _, n := range nodes {
		d.parent[n] = n
	}

	return d
}

// find walks to the root, halving the path as it goes.
func (d *dsu[N]) find(u N) N {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank; reports whether a merge happened.
func (d *dsu[N]) union(u, v N) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}

// ConnectedComponents partitions an undirected graph into its connected
// components. Every node appears in exactly one component; members are in
// ascending order and components are ordered by their smallest member.
//
// Complexity: O((V + E) α(V)) time, O(V) memory.
func ConnectedComponents[N core.Node](g core.Undirected[N]) ([][]N, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Union every edge.
	nodes := g.Nodes()
	d := newDSU(nodes)
	for _, u := range nodes {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("components: neighbors of %v: %w", u, err)
		}
		for _, v := range nbrs {
			d.union(u, v)
		}
	}

	// 3) Group members by root. Nodes arrive in ascending order, so each
	// member list is already sorted; component order follows the smallest
	// member via the first-appearance index.
	groups := make(map[N][]N, len(nodes))
	var order []N
	for _, n := range nodes {
		r := d.find(n)
		if _, seen := groups[r]; !seen {
			order = append(order, r)
		}
		groups[r] = append(groups[r], n)
	}

	comps := make([][]N, 0, len(order))
	for _, r := range order {
		comps = append(comps, groups[r])
	}

	return comps, nil
}
