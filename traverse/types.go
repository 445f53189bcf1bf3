// This file declares the Visitor contract, node visitation states, sentinel
// errors, and functional options shared by DFS and BFS.
package traverse

import (
	"context"
	"fmt"

	"github.com/avelty/grava/core"
)

// Visitation states of a node during traversal.
const (
	white = iota // not yet discovered
	gray         // discovered, descendants still being explored
	black        // fully explored
)

var (
	// ErrNilGraph is returned when the zero View is passed.
	ErrNilGraph = fmt.Errorf("traverse: %w", core.ErrNilGraph)

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = fmt.Errorf("traverse: start node: %w", core.ErrNotFound)
)

// Visitor receives traversal events synchronously, in traversal order.
// Embed NoVisitor to implement only the events of interest.
type Visitor[N core.Node] interface {
	// DiscoverNode fires when a node is first reached.
	DiscoverNode(n N)

	// FinishNode fires when a node's exploration completes: after all
	// descendants in DFS, after all neighbors are probed in BFS.
	FinishNode(n N)

	// ExamineEdge fires for every probed edge, before classification.
	ExamineEdge(from, to N)

	// TreeEdge fires for an edge leading to an undiscovered node.
	TreeEdge(from, to N)

	// BackEdge fires for an edge to a discovered-but-unfinished node.
	BackEdge(from, to N)

	// ForwardEdge fires for an edge to a finished node discovered after
	// the source. Directed traversals only.
	ForwardEdge(from, to N)

	// CrossEdge fires for any other edge to a finished node.
	CrossEdge(from, to N)
}

// NoVisitor is a Visitor with no-op methods, intended for embedding.
type NoVisitor[N core.Node] struct{}

func (NoVisitor[N]) DiscoverNode(N)   {}
func (NoVisitor[N]) FinishNode(N)     {}
func (NoVisitor[N]) ExamineEdge(N, N) {}
func (NoVisitor[N]) TreeEdge(N, N)    {}
func (NoVisitor[N]) BackEdge(N, N)    {}
func (NoVisitor[N]) ForwardEdge(N, N) {}
func (NoVisitor[N]) CrossEdge(N, N)   {}

// Option configures optional traversal behavior.
type Option func(*options)

// options holds configurable traversal parameters.
type options struct {
	ctx context.Context
}

// defaultOptions returns a Background context and no limits.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext enables cancellation of a traversal. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
