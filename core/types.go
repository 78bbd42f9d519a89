// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog and adjacency buckets.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// DefaultWeightKey is the attribute name that resolves to Edge.Weight.
const DefaultWeightKey = "weight"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite weight or attribute value.
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAttrNotFound indicates an edge does not carry the requested weight attribute.
	ErrAttrNotFound = errors.New("core: edge attribute not found")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver is nil; safe on typed-nil pointers.
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a connection between two vertices.
//
// Weight is the primary cost, addressed by DefaultWeightKey. Attrs carries
// any number of additional named numeric attributes ("length", "latency", ...)
// that algorithms can select as their cost through a weight key.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost addressed by DefaultWeightKey.
	Weight float64

	// Directed is true for one-way edges. Undirected edges are traversable
	// from both endpoints.
	Directed bool

	// Attrs holds additional named numeric attributes. May be nil.
	Attrs map[string]float64
}

// IsNil reports whether the receiver is nil; safe on typed-nil pointers.
func (e *Edge) IsNil() bool { return e == nil }

// WeightOf resolves the numeric attribute named key.
// DefaultWeightKey (and the empty key) resolve to e.Weight.
// A missing attribute yields ErrAttrNotFound.
func (e *Edge) WeightOf(key string) (float64, error) {
	if key == "" || key == DefaultWeightKey {
		return e.Weight, nil
	}
	w, ok := e.Attrs[key]
	if !ok {
		return 0, ErrAttrNotFound
	}

	return w, nil
}

// Other returns the endpoint of e opposite to id. For a directed edge the
// caller is expected to pass e.From.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttr attaches a named numeric attribute to the edge.
// Adding the same key twice keeps the last value.
func WithEdgeAttr(key string, value float64) EdgeOption {
	return func(e *Edge) {
		if key == "" || key == DefaultWeightKey {
			e.Weight = value
			return
		}
		if e.Attrs == nil {
			e.Attrs = make(map[string]float64, 1)
		}
		e.Attrs[key] = value
	}
}

// Graph is the core in-memory graph data structure.
//
// Simple graphs only: at most one edge per ordered pair (an undirected edge
// occupies both orders). muVert protects vertices and flags; muEdgeAdj
// protects edges and adjacency. nextEdgeID is an atomic counter.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // edge directedness
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to] = edgeID
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges of this graph are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// options reproduces the construction options of g.
// Caller must hold muVert (read or write).
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
