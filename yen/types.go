// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, options and the Result type of the k-shortest-paths search.

package yen

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/kpaths/core"
)

// Sentinel errors returned by KShortestPaths and PathLength.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("yen: graph is nil")

	// ErrEmptyVertexID indicates an empty source or target ID.
	ErrEmptyVertexID = errors.New("yen: vertex ID is empty")

	// ErrVertexNotFound indicates that source or target is not in the graph.
	ErrVertexNotFound = errors.New("yen: vertex not found in graph")

	// ErrBadK indicates a requested path count below 1.
	ErrBadK = errors.New("yen: k must be at least 1")

	// ErrNoPath indicates that target is not reachable from source at all.
	ErrNoPath = errors.New("yen: no path between source and target")

	// ErrMissingEdge indicates that two consecutive path vertices are not
	// joined by an edge in the graph the path was priced on.
	ErrMissingEdge = errors.New("yen: path uses an edge missing from the graph")

	// ErrEmptyPath indicates that PathLength received a path with no vertices.
	ErrEmptyPath = errors.New("yen: path is empty")
)

// Option configures KShortestPaths.
type Option func(*Options)

// Options holds the tunables of one KShortestPaths call.
type Options struct {
	// Ctx aborts the search between spur queries when cancelled.
	Ctx context.Context

	// WeightKey names the edge attribute summed as path cost.
	WeightKey string

	// Logger receives debug records for seed, rounds and accepted paths.
	Logger *slog.Logger

	// Parallelism bounds concurrent spur queries within one round.
	// Values <= 1 run the round sequentially.
	Parallelism int
}

// DefaultOptions returns the configuration used when no Option is given:
// background context, core.DefaultWeightKey, a discarding logger and
// sequential rounds.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		WeightKey:   core.DefaultWeightKey,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Parallelism: 1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeightKey selects the edge attribute used as cost.
// An empty key keeps the default.
func WithWeightKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.WeightKey = key
		}
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism evaluates up to n spur queries of a round concurrently.
// Output is identical to the sequential run for any n.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("yen: WithParallelism(n) requires n >= 1")
	}

	return func(o *Options) {
		o.Parallelism = n
	}
}

// Result lists accepted paths in acceptance order.
// Weights[i] is the cost of Paths[i]; Spurs[i] is the index at which
// Paths[i] left the path it was derived from (0 for the first path).
type Result struct {
	Weights []float64
	Paths   [][]string
	Spurs   []int
}

// Len returns the number of paths found.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Paths)
}
