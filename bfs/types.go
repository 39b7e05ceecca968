package bfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is not declared.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures BFS via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds the hooks and limits of one breadth-first walk.
type BFSOptions struct {
	// Ctx is checked before every visit; defaults to context.Background().
	Ctx context.Context

	// OnDiscover runs when a vertex is first reached and marked, before it
	// joins the next frontier. from is empty for the start vertex.
	OnDiscover func(from, to string, depth int) error

	// OnVisit runs when a vertex is taken off the frontier.
	OnVisit func(id string, depth int) error

	// MaxDepth, if non-negative, stops discovery beyond that many edges
	// from the start. Default -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a background context and no limits or hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the context for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover installs the discovery hook.
func WithOnDiscover(fn func(from, to string, depth int) error) Option {
	return func(o *BFSOptions) { o.OnDiscover = fn }
}

// WithOnVisit installs the visit hook; an error stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) { o.OnVisit = fn }
}

// WithMaxDepth limits discovery to limit edges from the start.
// WithMaxDepth(0) visits the start vertex alone.
func WithMaxDepth(limit int) Option {
	return func(o *BFSOptions) { o.MaxDepth = limit }
}

// BFSResult is what a walk reached and in which order.
type BFSResult struct {
	// Order lists vertices in visit order.
	Order []string

	// Layers groups Order by distance from the start: Layers[d] holds the
	// vertices d edges away.
	Layers [][]string

	// Depth maps every reached vertex to its distance from the start.
	Depth map[string]int

	// Parent maps every reached vertex except the start to the vertex it
	// was discovered from.
	Parent map[string]string
}
