// SPDX-License-Identifier: MIT
//
// File: yen.go
// Role: Yen's k loopless shortest paths on top of dijkstra.ShortestPath.
// Determinism:
//   - Spur queries of a round are merged in spur-index order; the candidate
//     heap breaks weight ties by discovery order.
// Concurrency:
//   - The caller's graph is only read. Each spur query runs on its own
//     snapshot, so a round may fan out across goroutines.

package yen

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dijkstra"
)

// KShortestPaths returns up to k loopless source→target paths of g in
// non-decreasing order of total weight. Fewer than k paths are returned
// when g has fewer. For source == target the result is the single path
// [source] of weight 0.
//
// Errors:
//   - ErrNilGraph, ErrBadK, ErrEmptyVertexID, ErrVertexNotFound.
//   - ErrNoPath if target is unreachable from source.
//   - ErrMissingEdge or a wrapped core.ErrAttrNotFound if pricing fails.
//   - ctx.Err() (wrapped) if the context set by WithContext is cancelled.
//
// g is never mutated.
func KShortestPaths(g *core.Graph, source, target string, k int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	if source == "" || target == "" {
		return nil, ErrEmptyVertexID
	}
	if source == target {
		return &Result{Weights: []float64{0}, Paths: [][]string{{source}}, Spurs: []int{0}}, nil
	}
	for _, id := range [2]string{source, target} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	f := &finder{
		g:      g,
		target: target,
		opts:   o,
		log:    o.Logger.With(slog.String("source", source), slog.String("target", target)),
		seen:   make(map[string]struct{}),
	}

	return f.run(source, k)
}

// finder carries the state of one KShortestPaths call.
type finder struct {
	g      *core.Graph
	target string
	opts   Options
	log    *slog.Logger

	accepted []*candidate
	queue    candidateQueue
	seen     map[string]struct{}
	seq      uint64
}

func (f *finder) run(source string, k int) (*Result, error) {
	w, path, err := dijkstra.ShortestPath(f.g, source, f.target, dijkstra.WithWeightKey(f.opts.WeightKey))
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, f.target)
	}
	if err != nil {
		return nil, fmt.Errorf("yen: seed: %w", err)
	}
	f.accept(&candidate{weight: w, path: path})
	f.log.Debug("seed path", slog.Float64("weight", w), slog.Any("path", path))

	for len(f.accepted) < k {
		if err = f.round(f.accepted[len(f.accepted)-1]); err != nil {
			return nil, err
		}
		next := f.queue.pop()
		if next == nil {
			f.log.Debug("candidates exhausted", slog.Int("found", len(f.accepted)))
			break
		}
		f.accepted = append(f.accepted, next)
		f.log.Debug("accepted path",
			slog.Int("rank", len(f.accepted)),
			slog.Float64("weight", next.weight),
			slog.Int("spur", next.spur),
			slog.Any("path", next.path))
	}

	res := &Result{
		Weights: make([]float64, len(f.accepted)),
		Paths:   make([][]string, len(f.accepted)),
		Spurs:   make([]int, len(f.accepted)),
	}
	for i, c := range f.accepted {
		res.Weights[i] = c.weight
		res.Paths[i] = c.path
		res.Spurs[i] = c.spur
	}

	return res, nil
}

// accept records c as the next result and marks its path as seen.
func (f *finder) accept(c *candidate) {
	f.seen[pathKey(c.path)] = struct{}{}
	f.accepted = append(f.accepted, c)
}

// round generates the deviations of prev from its spur index onward and
// queues the ones not seen before.
func (f *finder) round(prev *candidate) error {
	first, last := prev.spur, len(prev.path)-2
	if last < first {
		return nil
	}
	found := make([]*candidate, last-first+1)

	if f.opts.Parallelism <= 1 {
		for i := first; i <= last; i++ {
			if err := f.opts.Ctx.Err(); err != nil {
				return fmt.Errorf("yen: %w", err)
			}
			c, err := f.spur(prev.path, i)
			if err != nil {
				return err
			}
			found[i-first] = c
		}
	} else {
		eg, ctx := errgroup.WithContext(f.opts.Ctx)
		eg.SetLimit(f.opts.Parallelism)
		for i := first; i <= last; i++ {
			i := i
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("yen: %w", err)
				}
				c, err := f.spur(prev.path, i)
				if err != nil {
					return err
				}
				found[i-first] = c

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	}

	queued := 0
	for _, c := range found {
		if c == nil {
			continue
		}
		key := pathKey(c.path)
		if _, dup := f.seen[key]; dup {
			continue
		}
		f.seen[key] = struct{}{}
		c.seq = f.seq
		f.seq++
		f.queue.push(c)
		queued++
	}
	f.log.Debug("round done",
		slog.Int("rank", len(f.accepted)),
		slog.Int("spurs", len(found)),
		slog.Int("queued", queued),
		slog.Int("pending", f.queue.Len()))

	return nil
}

// spur returns the cheapest path that shares path[:i+1] with path and then
// leaves it through an edge no accepted path with the same root uses.
// It returns nil when no such path exists. Only accepted is read, so spur
// queries of one round may run concurrently.
func (f *finder) spur(path []string, i int) (*candidate, error) {
	root := path[:i+1]
	work := core.WithoutVertices(f.g, path[:i]...)
	for _, a := range f.accepted {
		if len(a.path) <= i+1 || !samePrefix(a.path, root) {
			continue
		}
		err := work.RemoveEdgeBetween(a.path[i], a.path[i+1])
		if err != nil && !errors.Is(err, core.ErrEdgeNotFound) {
			return nil, fmt.Errorf("yen: spur %d: %w", i, err)
		}
	}

	_, tail, err := dijkstra.ShortestPath(work, path[i], f.target, dijkstra.WithWeightKey(f.opts.WeightKey))
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("yen: spur %d: %w", i, err)
	}

	full := make([]string, 0, i+len(tail))
	full = append(full, path[:i]...)
	full = append(full, tail...)
	w, err := PathLength(f.g, full, f.opts.WeightKey)
	if err != nil {
		return nil, err
	}

	return &candidate{weight: w, path: full, spur: i}, nil
}

func samePrefix(p, prefix []string) bool {
	for j, v := range prefix {
		if p[j] != v {
			return false
		}
	}

	return true
}

// pathKey returns the duplicate-detection key of path.
func pathKey(path []string) string {
	return strings.Join(path, "\x00")
}
