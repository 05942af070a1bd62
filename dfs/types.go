// Package dfs defines errors, options and results for depth-first traversal.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a method is called on a nil *AdjacencyList.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNegativeSize is returned by NewAdjacencyList for n < 0.
	ErrNegativeSize = errors.New("dfs: negative graph size")

	// ErrVertexOutOfRange is the sentinel wrapped by every *RangeError.
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")
)

// RangeError reports a vertex index outside [0, Size).
// errors.Is(err, ErrVertexOutOfRange) matches it.
type RangeError struct {
	Op    string // operation that rejected the index: "AddEdge", "DFS", ...
	Index int    // offending index
	Size  int    // number of vertices; valid range is [0, Size)
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("dfs: %s: vertex %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrVertexOutOfRange }

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is first discovered (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error

	// MaxDepth, if non-negative, limits the walk to vertices at most MaxDepth
	// edges from the start. 0 visits only the start. Default -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A negative limit disables the check.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a single-source walk.
type Result struct {
	// Order lists visited vertices in discovery (pre-order) sequence.
	Order []int

	// Parent[v] is the vertex v was discovered from; -1 for the start and
	// for unvisited vertices.
	Parent []int

	// Depth[v] is the number of tree edges from the start; -1 if unvisited.
	Depth []int
}

// Visited reports whether v was reached. Out-of-range v reports false.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

func newResult(n int) *Result {
	res := &Result{
		Order:  make([]int, 0, n),
		Parent: make([]int, n),
		Depth:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Parent[i] = -1
		res.Depth[i] = -1
	}

	return res
}
