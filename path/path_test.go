package path_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelty/grava/core"
	"github.com/avelty/grava/internal/memgraph"
	"github.com/avelty/grava/path"
)

// buildChainWithShortcut returns the scenario graph
// A→B(1), B→C(2), A→C(4), C→D(1).
func buildChainWithShortcut() *memgraph.Directed[string, int] {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)
	g.AddEdge("C", "D", 1)

	return g
}

// TestDijkstraScenario pins the worked example: Dijkstra(A,D) follows
// [A,B,C,D] with total weight 4.
func TestDijkstraScenario(t *testing.T) {
	g := buildChainWithShortcut()
	res, err := path.Dijkstra(core.DirectedView[string](g), g, core.Numeric[int](), "A", "D")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Nodes)
	assert.Equal(t, 4, res.Weight)
}

// TestDijkstraSameNode verifies the zero-length single-node short-circuit.
func TestDijkstraSameNode(t *testing.T) {
	g := buildChainWithShortcut()
	res, err := path.Dijkstra(core.DirectedView[string](g), g, core.Numeric[int](), "B", "B")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"B"}, res.Nodes)
	assert.Equal(t, 0, res.Weight)
}

// TestDijkstraUnreachable verifies a complete negative result, not an error.
func TestDijkstraUnreachable(t *testing.T) {
	g := buildChainWithShortcut()
	g.AddNode("Z")
	res, err := path.Dijkstra(core.DirectedView[string](g), g, core.Numeric[int](), "A", "Z")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Nodes)
	assert.Zero(t, res.Weight)
}

// TestPathValidationErrors covers the precondition sentinels, checked before
// any computation.
func TestPathValidationErrors(t *testing.T) {
	g := buildChainWithShortcut()
	v := core.DirectedView[string](g)
	ar := core.Numeric[int]()

	_, err := path.Dijkstra(core.View[string]{}, g, ar, "A", "D")
	assert.ErrorIs(t, err, path.ErrNilGraph)

	_, err = path.Dijkstra[string, int](v, nil, ar, "A", "D")
	assert.ErrorIs(t, err, path.ErrNilWeights)

	_, err = path.Dijkstra[string, int](v, g, nil, "A", "D")
	assert.ErrorIs(t, err, path.ErrNoArith)
	assert.ErrorIs(t, err, core.ErrUnsupportedWeight)

	_, err = path.Dijkstra(v, g, ar, "Q", "D")
	assert.ErrorIs(t, err, path.ErrSourceNotFound)

	_, err = path.Dijkstra(v, g, ar, "A", "Q")
	assert.ErrorIs(t, err, path.ErrTargetNotFound)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// TestBFSDistanceHops verifies hop counting ignores weights entirely.
func TestBFSDistanceHops(t *testing.T) {
	g := buildChainWithShortcut()
	res, err := path.BFSDistance(core.DirectedView[string](g), "A", "D")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "C", "D"}, res.Nodes, "fewest hops, not least weight")
	assert.Equal(t, 2, res.Weight)
}

// TestAStarMatchesDijkstraWithAdmissibleHeuristic uses the zero heuristic,
// which is always admissible, so results must agree exactly.
func TestAStarMatchesDijkstraWithAdmissibleHeuristic(t *testing.T) {
	g := buildChainWithShortcut()
	v := core.DirectedView[string](g)
	ar := core.Numeric[int]()

	dj, err := path.Dijkstra(v, g, ar, "A", "D")
	require.NoError(t, err)

	as, err := path.AStar(v, g, ar, "A", "D", func(string) int { return 0 })
	require.NoError(t, err)
	assert.Equal(t, dj.Weight, as.Weight)
	assert.Equal(t, dj.Nodes, as.Nodes)
}

// TestBellmanFordNegativeEdge verifies negative edges reroute the optimum
// where Dijkstra's assumption would not hold.
func TestBellmanFordNegativeEdge(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", -1)

	res, err := path.BellmanFord(core.DirectedView[string](g), g, core.Numeric[int](), "A", "B")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "C", "B"}, res.Nodes)
	assert.Equal(t, 1, res.Weight)
}

// TestBellmanFordNegativeCycle verifies the extra relaxation pass converts a
// reachable negative cycle into a fatal error with no partial result.
func TestBellmanFordNegativeCycle(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", -2)
	g.AddEdge("C", "B", 1)
	g.AddEdge("C", "D", 1)

	_, err := path.BellmanFord(core.DirectedView[string](g), g, core.Numeric[int](), "A", "D")
	assert.ErrorIs(t, err, path.ErrNegativeCycle)
	assert.ErrorIs(t, err, core.ErrInvalidState)
}

// TestDijkstraBellmanFordAgree locks the property that both solvers report
// the same total weight on random non-negative graphs.
func TestDijkstraBellmanFordAgree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := memgraph.NewDirected[int, int]()
	const n = 24
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < 3*n; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.AddEdge(u, v, 1+r.Intn(9))
	}

	view := core.DirectedView[int](g)
	ar := core.Numeric[int]()
	for target := 1; target < n; target++ {
		dj, err := path.Dijkstra(view, g, ar, 0, target)
		require.NoError(t, err)
		bf, err := path.BellmanFord(view, g, ar, 0, target)
		require.NoError(t, err)

		assert.Equal(t, dj.Found, bf.Found, "target %d", target)
		if dj.Found {
			assert.Equal(t, dj.Weight, bf.Weight, "target %d", target)
		}
	}
}

// TestFloydWarshallMatchesDijkstra verifies the all-pairs closure agrees
// with single-pair Dijkstra for every ordered pair.
func TestFloydWarshallMatchesDijkstra(t *testing.T) {
	g := buildChainWithShortcut()
	view := core.DirectedView[string](g)
	ar := core.Numeric[int]()

	ap, err := path.FloydWarshall[string, int](view, g, ar)
	require.NoError(t, err)

	for _, u := range g.Nodes() {
		for _, v := range g.Nodes() {
			dj, derr := path.Dijkstra(view, g, ar, u, v)
			require.NoError(t, derr)
			d, ok := ap.Distance(u, v)
			assert.Equal(t, dj.Found, ok, "%s→%s", u, v)
			if dj.Found {
				assert.Equal(t, dj.Weight, d, "%s→%s", u, v)
			}
		}
	}

	p := ap.Path("A", "D")
	assert.True(t, p.Found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Nodes)
	assert.Equal(t, 4, p.Weight)
}

// TestFloydWarshallNegativeCycle verifies the diagonal check fails the call.
func TestFloydWarshallNegativeCycle(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", -2)
	g.AddEdge("B", "A", 1)

	_, err := path.FloydWarshall[string, int](core.DirectedView[string](g), g, core.Numeric[int]())
	assert.ErrorIs(t, err, path.ErrNegativeCycle)
}

// TestPathCancellation verifies an already-cancelled context aborts each
// solver, while a nil context is ignored.
func TestPathCancellation(t *testing.T) {
	g := buildChainWithShortcut()
	v := core.DirectedView[string](g)
	ar := core.Numeric[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := path.Dijkstra(v, g, ar, "A", "D", path.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = path.BellmanFord(v, g, ar, "A", "D", path.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = path.FloydWarshall[string, int](v, g, ar, path.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = path.BFSDistance(v, "A", "D", path.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := path.Dijkstra(v, g, ar, "A", "D", path.WithContext(nil))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestWeightedFloat verifies the solvers run over a float64 weight domain
// through the same trait mechanism.
func TestWeightedFloat(t *testing.T) {
	g := memgraph.NewUndirected[string, float64]()
	g.AddEdge("A", "B", 0.5)
	g.AddEdge("B", "C", 0.25)
	g.AddEdge("A", "C", 1.0)

	res, err := path.Dijkstra(core.UndirectedView[string](g), g, core.Numeric[float64](), "A", "C")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Nodes)
	assert.InDelta(t, 0.75, res.Weight, 1e-12)
}
