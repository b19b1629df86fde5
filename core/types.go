// Package core defines the adjacency Graph built from a maze grid, the
// node-index conventions shared by the search engines, and the Path type.
//
// This file declares Graph, Walkable, Path, the NoNode marker and
// sentinel errors.
//
// Errors:
//
//	ErrInvalidIndex - a node index lies outside [0, NodeCount).
package core

import "errors"

// NoNode marks "no such node": a missing parent, an out-of-range lookup.
const NoNode = -1

// ErrInvalidIndex indicates a start or goal node index outside [0, NodeCount).
var ErrInvalidIndex = errors.New("core: node index out of range")

// Walkable is the view of a grid needed to build a Graph.
// *gridgraph.Grid satisfies it.
type Walkable interface {
	Rows() int
	Cols() int
	IsPath(r, c int) bool
}

// Graph is an adjacency list over every cell of a rows×cols grid.
//
// Node i corresponds to cell (i/cols, i%cols). Wall cells are still nodes,
// with empty neighbor lists, so the index↔coordinate mapping needs no
// renumbering. Neighbor lists are ordered up, down, left, right.
//
// A Graph is read-only after Build and safe to share between solvers.
type Graph struct {
	rows, cols int
	adj        [][]int
	edges      int // directed adjacency entries
}

// Path is a sequence of node indices from start to goal inclusive.
// An empty Path means "no path"; a single-node Path is a zero-step path.
type Path []int

// Found reports whether the path is non-empty.
func (p Path) Found() bool { return len(p) > 0 }

// Steps returns the number of edges in the path, 0 for an empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}
