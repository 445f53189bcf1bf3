package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelty/grava/components"
	"github.com/avelty/grava/core"
	"github.com/avelty/grava/internal/memgraph"
)

// TestConnectedComponentsPartition verifies the partition covers every node
// exactly once, in deterministic order.
func TestConnectedComponentsPartition(t *testing.T) {
	g := memgraph.NewUndirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("D", "E", 1)
	g.AddNode("F") // isolated

	comps, err := components.ConnectedComponents[string](g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}, comps)

	// Partition property: every node exactly once.
	seen := map[string]int{}
	for _, c := range comps {
		for _, n := range c {
			seen[n]++
		}
	}
	for _, n := range g.Nodes() {
		assert.Equal(t, 1, seen[n], "node %s", n)
	}
}

// TestStronglyConnectedComponents verifies maximal mutually-reachable sets
// with singletons for isolated nodes, emitted in reverse discovery order.
func TestStronglyConnectedComponents(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	// One 3-cycle, one 2-cycle downstream of it, one sink.
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "A", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "E", 1)
	g.AddEdge("E", "D", 1)
	g.AddEdge("E", "F", 1)
	g.AddNode("Z")

	sccs, err := components.StronglyConnectedComponents[string](g)
	require.NoError(t, err)

	byNode := map[string]int{}
	for i, c := range sccs {
		for _, n := range c {
			byNode[n] = i
		}
	}
	require.Len(t, sccs, 4)
	assert.Equal(t, byNode["A"], byNode["B"])
	assert.Equal(t, byNode["B"], byNode["C"])
	assert.Equal(t, byNode["D"], byNode["E"])
	assert.NotEqual(t, byNode["A"], byNode["D"])

	// Reverse discovery order: a component completes before any component
	// that reaches it, so F precedes {D,E} precedes {A,B,C}.
	assert.Less(t, byNode["F"], byNode["D"])
	assert.Less(t, byNode["D"], byNode["A"])
}

// TestSCCSingletons verifies an edge-free graph yields one singleton per node.
func TestSCCSingletons(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddNode("A")
	g.AddNode("B")

	sccs, err := components.StronglyConnectedComponents[string](g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, sccs)
}

// TestDirectedCycleDetection verifies three-color detection and parent-based
// reconstruction; a DAG yields no cycle.
func TestDirectedCycleDetection(t *testing.T) {
	dag := memgraph.NewDirected[string, int]()
	dag.AddEdge("A", "B", 1)
	dag.AddEdge("A", "C", 1)
	dag.AddEdge("B", "C", 1)

	has, err := components.HasCycle(core.DirectedView[string](dag))
	require.NoError(t, err)
	assert.False(t, has)

	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "A", 1)

	cyc, err := components.FindCycle(core.DirectedView[string](g))
	require.NoError(t, err)
	require.Len(t, cyc, 3)
	// Consecutive edges plus the closing edge must all exist.
	for i := range cyc {
		assert.True(t, g.HasEdge(cyc[i], cyc[(i+1)%len(cyc)]),
			"edge %s→%s", cyc[i], cyc[(i+1)%len(cyc)])
	}
}

// TestUndirectedCycleDetection verifies parent-tracking detection: a tree has
// no cycle, a triangle does, and the parent edge alone never counts.
func TestUndirectedCycleDetection(t *testing.T) {
	tree := memgraph.NewUndirected[string, int]()
	tree.AddEdge("A", "B", 1)
	tree.AddEdge("B", "C", 1)

	has, err := components.HasCycle(core.UndirectedView[string](tree))
	require.NoError(t, err)
	assert.False(t, has, "a single undirected edge is not a 2-cycle")

	tri := memgraph.NewUndirected[string, int]()
	tri.AddEdge("A", "B", 1)
	tri.AddEdge("B", "C", 1)
	tri.AddEdge("C", "A", 1)

	cyc, err := components.FindCycle(core.UndirectedView[string](tri))
	require.NoError(t, err)
	require.Len(t, cyc, 3)
	for i := range cyc {
		assert.True(t, tri.HasEdge(cyc[i], cyc[(i+1)%len(cyc)]))
	}
}

// TestSelfLoopCycle verifies a self-loop is a cycle in both shapes.
func TestSelfLoopCycle(t *testing.T) {
	d := memgraph.NewDirected[string, int]()
	d.AddEdge("A", "A", 1)
	cyc, err := components.FindCycle(core.DirectedView[string](d))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, cyc)

	u := memgraph.NewUndirected[string, int]()
	u.AddEdge("A", "A", 1)
	cyc, err = components.FindCycle(core.UndirectedView[string](u))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, cyc)
}

// TestNilGraphErrors covers the InvalidArgument taxonomy.
func TestNilGraphErrors(t *testing.T) {
	_, err := components.ConnectedComponents[string](nil)
	assert.ErrorIs(t, err, components.ErrNilGraph)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	_, err = components.StronglyConnectedComponents[string](nil)
	assert.ErrorIs(t, err, components.ErrNilGraph)

	_, err = components.FindCycle(core.View[string]{})
	assert.ErrorIs(t, err, components.ErrNilGraph)
}
