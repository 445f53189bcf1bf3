package traverse_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelty/grava/core"
	"github.com/avelty/grava/internal/memgraph"
	"github.com/avelty/grava/traverse"
)

// recorder captures traversal events as readable strings, in order.
type recorder struct {
	traverse.NoVisitor[string]
	events []string
}

func (r *recorder) log(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) DiscoverNode(n string)      { r.log("disc %s", n) }
func (r *recorder) FinishNode(n string)        { r.log("fin %s", n) }
func (r *recorder) TreeEdge(u, v string)       { r.log("tree %s%s", u, v) }
func (r *recorder) BackEdge(u, v string)       { r.log("back %s%s", u, v) }
func (r *recorder) ForwardEdge(u, v string)    { r.log("fwd %s%s", u, v) }
func (r *recorder) CrossEdge(u, v string)      { r.log("cross %s%s", u, v) }

// TestDFSDirectedClassification pins the full event order on a graph
// containing all four edge classes.
//
//	A→B, A→C, B→D, C→D, D→A
//
// With ascending neighbor order the walk discovers A,B,D then C, so D→A is a
// back edge, A→C a tree edge, and C→D a cross edge.
func TestDFSDirectedClassification(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "A", 1)

	rec := &recorder{}
	require.NoError(t, traverse.DFS(core.DirectedView[string](g), "A", rec))

	assert.Equal(t, []string{
		"disc A",
		"tree AB", "disc B",
		"tree BD", "disc D",
		"back DA",
		"fin D", "fin B",
		"tree AC", "disc C",
		"cross CD",
		"fin C", "fin A",
	}, rec.events)
}

// TestDFSDirectedForwardEdge verifies a finished target discovered after the
// source is classified forward in directed graphs.
func TestDFSDirectedForwardEdge(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "C", 1)

	rec := &recorder{}
	require.NoError(t, traverse.DFS(core.DirectedView[string](g), "A", rec))
	assert.Contains(t, rec.events, "fwd AC")
	assert.NotContains(t, rec.events, "cross AC")
}

// TestDFSUndirectedParentSuppressed verifies the parent edge gets no second
// classification while a genuine cycle still produces a back edge.
func TestDFSUndirectedParentSuppressed(t *testing.T) {
	g := memgraph.NewUndirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 1)

	rec := &recorder{}
	require.NoError(t, traverse.DFS(core.UndirectedView[string](g), "A", rec))

	assert.Contains(t, rec.events, "back CA")
	assert.NotContains(t, rec.events, "back BA", "parent edge must be suppressed")
	assert.NotContains(t, rec.events, "back CB", "parent edge must be suppressed")
}

// TestBFSClassification verifies parent tracking: tree edges in hop order,
// non-tree probes as back edges, and undirected parent suppression.
func TestBFSClassification(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "C", 1)

	rec := &recorder{}
	require.NoError(t, traverse.BFS(core.DirectedView[string](g), "A", rec))
	assert.Equal(t, []string{
		"disc A",
		"tree AB", "disc B",
		"tree AC", "disc C",
		"fin A",
		"back BC",
		"fin B", "fin C",
	}, rec.events)

	// Undirected: B's probe back to its parent A must be suppressed.
	u := memgraph.NewUndirected[string, int]()
	u.AddEdge("A", "B", 1)
	rec = &recorder{}
	require.NoError(t, traverse.BFS(core.UndirectedView[string](u), "A", rec))
	assert.Equal(t, []string{
		"disc A",
		"tree AB", "disc B",
		"fin A", "fin B",
	}, rec.events)
}

// TestTraversalStartNotFound covers the NotFound precondition on all entry
// points, including the lazy sequences.
func TestTraversalStartNotFound(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddNode("A")
	v := core.DirectedView[string](g)

	assert.ErrorIs(t, traverse.DFS(v, "Z", nil), traverse.ErrStartNotFound)
	assert.ErrorIs(t, traverse.BFS(v, "Z", nil), traverse.ErrStartNotFound)

	_, err := traverse.DepthFirstNodes(v, "Z")
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = traverse.BreadthFirstNodes(v, "Z")
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
}

// TestDepthFirstNodesRestartable verifies the sequence covers exactly the
// reachable set and yields identical output on a second ranging.
func TestDepthFirstNodesRestartable(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddNode("Z") // unreachable

	seq, err := traverse.DepthFirstNodes(core.DirectedView[string](g), "A")
	require.NoError(t, err)

	var first, second []string
	for n := range seq {
		first = append(first, n)
	}
	for n := range seq {
		second = append(second, n)
	}
	assert.Equal(t, []string{"A", "B", "C"}, first)
	assert.Equal(t, first, second, "each ranging must start from fresh state")
}

// TestBreadthFirstNodesOrder verifies hop ordering and early break safety.
func TestBreadthFirstNodesOrder(t *testing.T) {
	g := memgraph.NewUndirected[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)

	seq, err := traverse.BreadthFirstNodes(core.UndirectedView[string](g), "A")
	require.NoError(t, err)

	var got []string
	for n := range seq {
		got = append(got, n)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, got)

	// Breaking early must not panic or leak.
	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// TestDFSCancellation verifies an already-cancelled context aborts the walk.
func TestDFSCancellation(t *testing.T) {
	g := memgraph.NewDirected[string, int]()
	g.AddEdge("A", "B", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := traverse.DFS(core.DirectedView[string](g), "A", nil, traverse.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}
