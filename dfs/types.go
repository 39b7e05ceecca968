package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *structure.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is not declared.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures DFS via functional arguments.
type Option func(*DFSOptions)

// DFSOptions holds the hooks and limits of one depth-first walk.
type DFSOptions struct {
	// Ctx is checked before every neighbor; defaults to context.Background().
	Ctx context.Context

	// OnVisit runs when a vertex is discovered (pre-order).
	OnVisit func(id string) error

	// OnEdge runs for every tree edge from→to, just before the walk
	// descends into to.
	OnEdge func(from, to string) error

	// MaxDepth, if non-negative, stops descent that many edges below the
	// start. Default -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a background context, no hooks and no limits.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the context for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnEdge installs the tree-edge hook.
func WithOnEdge(fn func(from, to string) error) Option {
	return func(o *DFSOptions) { o.OnEdge = fn }
}

// WithMaxDepth limits descent; WithMaxDepth(0) visits the start alone.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// DFSResult is what a walk reached and in which order.
type DFSResult struct {
	// Preorder lists vertices in discovery order.
	Preorder []string

	// Order lists vertices in finishing (post-order) order.
	Order []string

	// Depth maps every reached vertex to its tree distance from the start.
	Depth map[string]int

	// Parent maps every reached vertex except the start to the vertex it
	// was discovered from.
	Parent map[string]string

	// Visited is the set of reached vertices.
	Visited map[string]bool
}
