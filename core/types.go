// Package core defines the Graph capability interface, the adjacency Table,
// the embeddable Base and the weighted-undirected variant.
//
// This file declares Neighbor, Edge, Table, Graph, Option, sentinel errors,
// and the NewUndirected constructor.
//
// Errors:
//
//	ErrLoopNotAllowed - self-loop rejected by AddEdge.
//	ErrNodeNotFound   - requested node does not exist.
package core

import (
	"errors"
	"log/slog"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrLoopNotAllowed indicates a self-loop (from == to) was rejected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Neighbor is a single adjacency entry: the label on the far end of an edge
// and the weight of that edge.
type Neighbor struct {
	// Label is the neighbor node label.
	Label string

	// Weight is the signed edge weight.
	Weight int64
}

// Edge is one logical edge as reported by Graph.Edges.
type Edge struct {
	// From is the endpoint the enumeration reached first.
	From string

	// To is the opposite endpoint.
	To string

	// Weight is the signed edge weight.
	Weight int64
}

// Table maps a node label to its neighbor sequence in edge-insertion order.
type Table map[string][]Neighbor

// Ensure inserts label with an empty neighbor sequence if it is absent.
// It reports whether an insertion happened.
func (t Table) Ensure(label string) bool {
	if _, ok := t[label]; ok {
		return false
	}
	t[label] = []Neighbor{}

	return true
}

// clone returns a deep copy of t; neighbor slices are not shared.
func (t Table) clone() Table {
	out := make(Table, len(t))
	for label, nbs := range t {
		cp := make([]Neighbor, len(nbs))
		copy(cp, nbs)
		out[label] = cp
	}

	return out
}

// Graph is the capability set shared by every graph kind in this package.
// Variants differ only in AddEdge semantics; Base supplies the rest.
type Graph interface {
	// AddNode inserts label if absent and reports whether it did.
	AddNode(label string) bool

	// AddEdge connects from and to with the given weight.
	AddEdge(from, to string, weight int64) error

	// Contains reports whether label is a node of the graph.
	Contains(label string) bool

	// Nodes returns the set of node labels.
	Nodes() map[string]struct{}

	// Edges returns every logical edge exactly once.
	Edges() []Edge

	// Table returns a read-only snapshot of the adjacency table.
	Table() Table
}

// Option configures a graph before first use.
type Option func(b *Base)

// WithLogger sets the logger used for diagnostics such as rejected self-loops.
// A nil logger leaves the default (slog.Default()) in place.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Base holds the adjacency table and implements every Graph capability
// except AddEdge. Embed it by value and construct it with Init.
//
// mu guards table; logger is immutable after Init.
type Base struct {
	mu     sync.RWMutex
	table  Table
	logger *slog.Logger
}

// Init prepares b for use and applies opts left to right.
// Complexity: O(len(opts))
func (b *Base) Init(opts ...Option) {
	b.table = make(Table)
	b.logger = slog.Default()
	for _, opt := range opts {
		opt(b)
	}
}

// Undirected is the weighted, undirected graph variant: every edge is stored
// as two mirrored entries and self-loops are rejected.
type Undirected struct {
	Base
}

// compile-time check
var _ Graph = (*Undirected)(nil)

// NewUndirected creates an empty weighted, undirected graph.
// Complexity: O(1)
func NewUndirected(opts ...Option) *Undirected {
	g := &Undirected{}
	g.Init(opts...)

	return g
}
