// This file declares the Result and Cut snapshots, sentinel errors, options,
// and the residual network shared by both solvers.
package flow

import (
	"context"
	"fmt"

	"github.com/avelty/grava/core"
)

// Sentinel errors for the max-flow solvers.
var (
	// ErrNilGraph is returned when the graph is nil.
	ErrNilGraph = fmt.Errorf("flow: %w", core.ErrNilGraph)

	// ErrNilWeights is returned when the capacity capability is nil.
	ErrNilWeights = fmt.Errorf("flow: nil capacity capability: %w", core.ErrNilGraph)

	// ErrNoArith is returned when no flow arithmetic trait is supplied for
	// the capacity type.
	ErrNoArith = fmt.Errorf("flow: %w", core.ErrUnsupportedWeight)

	// ErrSourceNotFound is returned when the source node is absent.
	ErrSourceNotFound = fmt.Errorf("flow: source node: %w", core.ErrNotFound)

	// ErrSinkNotFound is returned when the sink node is absent.
	ErrSinkNotFound = fmt.Errorf("flow: sink node: %w", core.ErrNotFound)

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = fmt.Errorf("flow: source equals sink: %w", core.ErrInvalidState)

	// ErrNegativeCapacity is returned when an edge carries a capacity below
	// zero. No partial result is salvageable.
	ErrNegativeCapacity = fmt.Errorf("flow: negative capacity: %w", core.ErrInvalidState)
)

// Result is the outcome of a max-flow computation: the flow value and the
// final residual capacities, keyed residual[u][v]. The residual includes the
// reverse entries created by augmentation, so MinCut and other duality-based
// extractions can be run on it directly.
type Result[N core.Node, W any] struct {
	Value    W
	Residual map[N]map[N]W
}

// Cut is a source/sink partition certified by duality: Capacity equals the
// maximum-flow value, and Edges are exactly the original edges crossing from
// SourceSide to SinkSide. Both sides are sorted ascending.
type Cut[N core.Node, W any] struct {
	SourceSide []N
	SinkSide   []N
	Edges      []core.WeightedEdge[N, W]
	Capacity   W
}

// Option adjusts a solver run.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext attaches a context checked between augmentations, so
// long-running computations can be cancelled. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// validate runs the shared precondition order: graph, capacities, arithmetic,
// endpoint membership, endpoint distinctness.
func validate[N core.Node, W any](g core.Directed[N], wt core.Weighted[N, W], ar core.FlowArith[W], source, sink N) error {
	if g == nil {
		return ErrNilGraph
	}
	if wt == nil {
		return ErrNilWeights
	}
	if ar == nil {
		return ErrNoArith
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !g.HasNode(sink) {
		return fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}
	if source == sink {
		return ErrSameEndpoints
	}

	return nil
}

// residualNet materializes residual capacities from the graph. Parallel
// direction pairs (u→v and v→u both present) accumulate independently, and
// augmentation moves capacity between the two directions of each pair.
type residualNet[N core.Node, W any] struct {
	cap map[N]map[N]W
	ar  core.FlowArith[W]
}

// buildResidual copies every capacity out of the graph, rejecting negatives
// and skipping self-loops. Reverse entries are created lazily with zero
// capacity so augmentation always has a slot to push returned flow into.
func buildResidual[N core.Node, W any](g core.Directed[N], wt core.Weighted[N, W], ar core.FlowArith[W]) (*residualNet[N, W], error) {
	net := &residualNet[N, W]{cap: make(map[N]map[N]W, g.NodeCount()), ar: ar}
	for _, u := range g.Nodes() {
		succ, err := g.OutNeighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range succ {
			if v == u {
				continue // self-loops carry no usable flow
			}
			w, ok := wt.TryEdgeWeight(u, v)
			if !ok {
				return nil, fmt.Errorf("flow: edge %v→%v capacity: %w", u, v, core.ErrNotFound)
			}
			if ar.Compare(w, ar.Zero()) < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v", ErrNegativeCapacity, u, v)
			}
			net.add(u, v, w)
			net.ensure(v, u)
		}
	}

	return net, nil
}

func (net *residualNet[N, W]) ensure(u, v N) {
	row, ok := net.cap[u]
	if !ok {
		row = make(map[N]W)
		net.cap[u] = row
	}
	if _, ok := row[v]; !ok {
		row[v] = net.ar.Zero()
	}
}

func (net *residualNet[N, W]) add(u, v N, w W) {
	net.ensure(u, v)
	net.cap[u][v] = net.ar.Add(net.cap[u][v], w)
}

// positive reports whether residual capacity remains on u→v.
func (net *residualNet[N, W]) positive(u, v N) bool {
	return net.ar.Compare(net.cap[u][v], net.ar.Zero()) > 0
}

// augment pushes w along the path, reducing forward residuals and growing
// the paired reverse residuals.
func (net *residualNet[N, W]) augment(path []N, w W) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		net.cap[u][v] = net.ar.Sub(net.cap[u][v], w)
		net.cap[v][u] = net.ar.Add(net.cap[v][u], w)
	}
}

// bottleneck returns the minimum residual capacity along the path.
func (net *residualNet[N, W]) bottleneck(path []N) W {
	min := net.cap[path[0]][path[1]]
	for i := 1; i+1 < len(path); i++ {
		if w := net.cap[path[i]][path[i+1]]; net.ar.Compare(w, min) < 0 {
			min = w
		}
	}

	return min
}
