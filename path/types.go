// This file declares the Result snapshot, sentinel errors, and the shared
// priority queue used by Dijkstra and A*.
package path

import (
	"context"
	"fmt"

	"github.com/avelty/grava/core"
)

// Sentinel errors for the shortest-path solvers.
var (
	// ErrNilGraph is returned when the zero View is passed.
	ErrNilGraph = fmt.Errorf("path: %w", core.ErrNilGraph)

	// ErrNilWeights is returned when the weight capability is nil.
	ErrNilWeights = fmt.Errorf("path: nil weight capability: %w", core.ErrNilGraph)

	// ErrNoArith is returned when no arithmetic trait is supplied for the
	// weight type.
	ErrNoArith = fmt.Errorf("path: %w", core.ErrUnsupportedWeight)

	// ErrSourceNotFound is returned when the source node is absent.
	ErrSourceNotFound = fmt.Errorf("path: source node: %w", core.ErrNotFound)

	// ErrTargetNotFound is returned when the target node is absent.
	ErrTargetNotFound = fmt.Errorf("path: target node: %w", core.ErrNotFound)

	// ErrNegativeCycle is returned by BellmanFord and FloydWarshall when a
	// reachable cycle of negative total weight makes shortest distances
	// unbounded. No result is salvageable.
	ErrNegativeCycle = fmt.Errorf("path: negative cycle: %w", core.ErrInvalidState)
)

// Option configures optional solver behavior.
type Option func(*options)

// options holds configurable solver parameters.
type options struct {
	ctx context.Context
}

func buildOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithContext enables cancellation of a solver run. The context is checked
// once per relaxation round or settled node. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result is the immutable outcome of a single-pair query. Either Found is
// true with the complete inclusive source..target sequence and its total
// weight, or Found is false with an empty sequence and zero weight.
type Result[N core.Node, W any] struct {
	Found  bool
	Nodes  []N
	Weight W
}

// validate runs the shared precondition order: view, weights, arithmetic,
// then endpoint membership.
func validate[N core.Node, W any](v core.View[N], wt core.Weighted[N, W], ar core.Arith[W], source, target N) error {
	if v.Base() == nil {
		return ErrNilGraph
	}
	if wt == nil {
		return ErrNilWeights
	}
	if ar == nil {
		return ErrNoArith
	}
	if !v.Base().HasNode(source) {
		return fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !v.Base().HasNode(target) {
		return fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}

	return nil
}

// rebuild follows prev links from target back to source, returning the
// inclusive forward sequence.
func rebuild[N core.Node](prev map[N]N, source, target N) []N {
	var rev []N
	for cur := target; cur != source; cur = prev[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, source)

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// pqItem is one priority-queue entry: a node, its tentative distance, and
// the key it is ordered by (distance for Dijkstra, distance+heuristic for
// A*). Stale entries are skipped on pop via the visited set.
type pqItem[N core.Node, W any] struct {
	node N
	dist W
	key  W
}

// nodePQ is a min-heap of pqItem ordered by the arithmetic comparator over
// keys, following the lazy-decrease-key pattern: improvements push new
// entries rather than reordering old ones.
type nodePQ[N core.Node, W any] struct {
	items []pqItem[N, W]
	cmp   func(a, b W) int
}

func (pq *nodePQ[N, W]) Len() int           { return len(pq.items) }
func (pq *nodePQ[N, W]) Less(i, j int) bool { return pq.cmp(pq.items[i].key, pq.items[j].key) < 0 }
func (pq *nodePQ[N, W]) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ[N, W]) Push(x any) { pq.items = append(pq.items, x.(pqItem[N, W])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ[N, W]) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
