// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:           optional; stops the search once the target is settled.
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– WeightKey:        edge attribute used as cost (core.DefaultWeightKey by default).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source (or target) vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrUnreachable     if ShortestPath cannot reach the target.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/kpaths/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that the target cannot be reached from the source
	// under the current edge set.
	ErrUnreachable = errors.New("dijkstra: target not reachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string  // The ID of the source vertex
	Target           string  // Optional early-exit vertex
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
	WeightKey        string  // Edge attribute used as cost
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// Target stops the search as soon as the given vertex is settled.
// Distances of vertices not yet settled at that point stay +Inf.
func Target(str string) Option {
	return func(o *Options) {
		o.Target = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics on a non-positive or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithWeightKey selects the edge attribute used as cost.
// An empty key means core.DefaultWeightKey.
func WithWeightKey(key string) Option {
	return func(o *Options) {
		o.WeightKey = key
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - WeightKey:        core.DefaultWeightKey.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		WeightKey:        core.DefaultWeightKey,
	}
}
