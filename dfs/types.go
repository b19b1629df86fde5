// Package dfs defines options, results and errors for depth-first search
// over a core.Graph.
package dfs

import (
	"errors"
	"time"

	"github.com/katalvlaran/mazepath/core"
)

// ErrGraphNil is returned when a Solver was built over a nil *core.Graph.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
// Use with New(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a node is entered (pre-order),
	// with its depth in the DFS tree.
	OnVisit func(node, depth int)

	// Recursive selects the call-stack form instead of the explicit stack.
	// Both forms visit nodes in the same order; the explicit stack does
	// not grow the goroutine stack with the maze size.
	Recursive bool

	// Clock supplies timestamps for Elapsed. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-order hook
//   - Explicit-stack traversal
//   - time.Now as clock
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:   nil,
		Recursive: false,
		Clock:     time.Now,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(node, depth int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithRecursive returns an Option that selects the recursive traversal.
func WithRecursive() Option {
	return func(o *DFSOptions) {
		o.Recursive = true
	}
}

// WithClock returns an Option that replaces the time source for Elapsed.
// A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *DFSOptions) {
		if now != nil {
			o.Clock = now
		}
	}
}

// DFSResult captures the outcome of one depth-first search.
type DFSResult struct {
	// Path is the start→goal path found, empty if the goal was not reached.
	Path core.Path

	// Visited counts nodes entered, the goal included.
	Visited int

	// Order records nodes in the sequence they were entered (pre-order).
	Order []int

	// Parent maps each node to the node from which it was first entered;
	// core.NoNode for the start and for nodes never reached.
	Parent []int

	// Depth maps each entered node to its depth in the DFS tree, -1 otherwise.
	Depth []int
}

// Found reports whether the goal was reached.
func (r *DFSResult) Found() bool { return r.Path.Found() }
