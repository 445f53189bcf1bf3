package flow_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelty/grava/core"
	"github.com/avelty/grava/flow"
	"github.com/avelty/grava/internal/memgraph"
)

// buildDiamond returns the scenario network
// s→A(10), s→B(8), A→t(10), B→t(10), A→B(5) with max flow 18.
func buildDiamond() *memgraph.Directed[string, int] {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("s", "A", 10)
	g.AddEdge("s", "B", 8)
	g.AddEdge("A", "t", 10)
	g.AddEdge("B", "t", 10)
	g.AddEdge("A", "B", 5)

	return g
}

// TestFordFulkersonScenario pins the known max-flow value of the diamond
// network.
func TestFordFulkersonScenario(t *testing.T) {
	g := buildDiamond()
	res, err := flow.FordFulkerson(g, g, core.NumericFlow[int](), "s", "t")
	require.NoError(t, err)
	assert.Equal(t, 18, res.Value)
}

// TestEdmondsKarpMatchesFordFulkerson verifies both solvers report the same
// value on random networks, the core equivalence property.
func TestEdmondsKarpMatchesFordFulkerson(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 10; round++ {
		g := memgraph.NewDirected[int, int]()
		const n = 10
		for i := 0; i < n; i++ {
			g.AddNode(i)
		}
		for i := 0; i < 3*n; i++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			g.AddEdge(u, v, 1+r.Intn(20))
		}

		ar := core.NumericFlow[int]()
		ff, err := flow.FordFulkerson(g, g, ar, 0, n-1)
		require.NoError(t, err)
		ek, err := flow.EdmondsKarp(g, g, ar, 0, n-1)
		require.NoError(t, err)
		assert.Equal(t, ff.Value, ek.Value, "round %d", round)
	}
}

// TestMinCutDuality verifies the cut capacity equals the max-flow value and
// the partition is complete and disjoint.
func TestMinCutDuality(t *testing.T) {
	g := buildDiamond()
	ar := core.NumericFlow[int]()

	ek, err := flow.EdmondsKarp(g, g, ar, "s", "t")
	require.NoError(t, err)
	cut, err := flow.MinCut(g, g, ar, "s", "t")
	require.NoError(t, err)

	assert.Equal(t, ek.Value, cut.Capacity)
	assert.Equal(t, []string{"s"}, cut.SourceSide)
	assert.Equal(t, []string{"A", "B", "t"}, cut.SinkSide)
	assert.Len(t, cut.SourceSide, g.NodeCount()-len(cut.SinkSide))
	require.Len(t, cut.Edges, 2)
	assert.Equal(t, core.WeightedEdge[string, int]{From: "s", To: "A", Weight: 10}, cut.Edges[0])
	assert.Equal(t, core.WeightedEdge[string, int]{From: "s", To: "B", Weight: 8}, cut.Edges[1])
}

// TestMinCutDualityRandom re-checks duality on random networks, not just the
// worked scenario.
func TestMinCutDualityRandom(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for round := 0; round < 10; round++ {
		g := memgraph.NewDirected[int, int]()
		const n = 8
		for i := 0; i < n; i++ {
			g.AddNode(i)
		}
		for i := 0; i < 2*n; i++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			g.AddEdge(u, v, 1+r.Intn(9))
		}

		ar := core.NumericFlow[int]()
		ek, err := flow.EdmondsKarp(g, g, ar, 0, n-1)
		require.NoError(t, err)
		cut, err := flow.MinCut(g, g, ar, 0, n-1)
		require.NoError(t, err)
		assert.Equal(t, ek.Value, cut.Capacity, "round %d", round)
	}
}

// TestFlowSelfLoopIgnored verifies self-loops never contribute capacity.
func TestFlowSelfLoopIgnored(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("s", "t", 3)
	g.AddEdge("s", "s", 100)

	res, err := flow.EdmondsKarp(g, g, core.NumericFlow[int](), "s", "t")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Value)
}

// TestFlowNoPath verifies a disconnected sink yields zero flow, not an error.
func TestFlowNoPath(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("s", "A", 5)
	g.AddNode("t")

	res, err := flow.FordFulkerson(g, g, core.NumericFlow[int](), "s", "t")
	require.NoError(t, err)
	assert.Zero(t, res.Value)
}

// TestFlowValidation covers the precondition sentinels.
func TestFlowValidation(t *testing.T) {
	g := buildDiamond()
	ar := core.NumericFlow[int]()

	_, err := flow.FordFulkerson[string, int](nil, g, ar, "s", "t")
	assert.ErrorIs(t, err, flow.ErrNilGraph)

	_, err = flow.FordFulkerson[string, int](g, nil, ar, "s", "t")
	assert.ErrorIs(t, err, flow.ErrNilWeights)

	_, err = flow.FordFulkerson[string, int](g, g, nil, "s", "t")
	assert.ErrorIs(t, err, flow.ErrNoArith)

	_, err = flow.FordFulkerson(g, g, ar, "q", "t")
	assert.ErrorIs(t, err, flow.ErrSourceNotFound)

	_, err = flow.FordFulkerson(g, g, ar, "s", "q")
	assert.ErrorIs(t, err, flow.ErrSinkNotFound)

	_, err = flow.FordFulkerson(g, g, ar, "s", "s")
	assert.ErrorIs(t, err, flow.ErrSameEndpoints)
	assert.ErrorIs(t, err, core.ErrInvalidState)
}

// TestFlowNegativeCapacity verifies a negative capacity fails the call with
// no partial result.
func TestFlowNegativeCapacity(t *testing.T) {
	g := buildDiamond()
	g.AddEdge("A", "B", -1)

	_, err := flow.EdmondsKarp(g, g, core.NumericFlow[int](), "s", "t")
	assert.ErrorIs(t, err, flow.ErrNegativeCapacity)
	assert.ErrorIs(t, err, core.ErrInvalidState)
}

// TestFlowCancellation verifies an already-cancelled context aborts the run.
func TestFlowCancellation(t *testing.T) {
	g := buildDiamond()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.EdmondsKarp(g, g, core.NumericFlow[int](), "s", "t", flow.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFlowNilContext verifies a nil context is ignored rather than
// dereferenced: the run completes normally.
func TestFlowNilContext(t *testing.T) {
	g := buildDiamond()

	res, err := flow.FordFulkerson(g, g, core.NumericFlow[int](), "s", "t", flow.WithContext(nil))
	require.NoError(t, err)
	assert.Equal(t, 18, res.Value)
}

// TestFlowFloatCapacities verifies the solvers run over float64 capacities
// through the same trait mechanism.
func TestFlowFloatCapacities(t *testing.T) {
	g := memgraph.NewDirected[string, float64]()
	g.AddEdge("s", "A", 1.5)
	g.AddEdge("A", "t", 0.5)

	res, err := flow.EdmondsKarp(g, g, core.NumericFlow[float64](), "s", "t")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Value, 1e-12)
}
