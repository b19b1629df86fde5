// Package bfs provides tunable options, results and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"time"

	"github.com/katalvlaran/mazepath/core"
)

// ErrGraphNil is returned if a Solver was built over a nil graph.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds callbacks and collaborators used by a Solver.
type BFSOptions struct {
	// OnEnqueue is called when a node is discovered and enqueued,
	// with its depth (edges from start).
	OnEnqueue func(node, depth int)

	// OnVisit is called when a node is dequeued and counted as visited.
	OnVisit func(node, depth int)

	// Clock supplies timestamps for Elapsed. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultOptions returns a BFSOptions with no-op hooks and the wall clock.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) {},
		Clock:     time.Now,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue.
func WithOnVisit(fn func(node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithClock replaces the time source used to measure Elapsed.
func WithClock(now func() time.Time) Option {
	return func(o *BFSOptions) {
		if now != nil {
			o.Clock = now
		}
	}
}

// BFSResult holds the outcome of one Search:
//   - Path: start→goal node indices, empty if the goal was not reached.
//   - Visited: number of nodes dequeued, the goal included.
//   - Order: nodes in dequeue order (len(Order) == Visited).
//   - Parent: predecessor of each discovered node, core.NoNode otherwise.
//   - Depth: distance in edges from start, -1 for undiscovered nodes.
type BFSResult struct {
	Path    core.Path
	Visited int
	Order   []int
	Parent  []int
	Depth   []int
}

// Found reports whether the goal was reached.
func (r *BFSResult) Found() bool { return r.Path.Found() }
