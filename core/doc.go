// Package core turns a maze grid into an adjacency graph over linear node
// indices and provides the path reconstruction shared by package bfs and
// package dfs.
//
// Node identity:
//
//	index = row*cols + col      (row, col) = (index/cols, index%cols)
//
// Every cell is a node, walls included; walls simply have no neighbors.
// NoNode (-1) marks a missing node or parent.
//
// Graph G = Build(grid):
//
//   - NodeCount() == rows*cols
//   - Neighbors(i) lists walkable 4-connected cells in the fixed order
//     up, down, left, right. The order decides which path DFS finds.
//   - Each corridor is stored as two directed entries, one per endpoint.
//   - No self-loops; read-only after Build, so any number of solvers may
//     share one Graph.
//
// Paths:
//
//	Reconstruct(parent, goal, found) walks parent pointers back from goal
//	and reverses them. An empty Path means the goal was not reached; a
//	one-node Path is the zero-step start==goal case.
//
// Complexity (V = rows*cols):
//
//   - Build:       O(V) time and memory.
//   - Reconstruct: O(len(path)).
//
// Errors:
//
//   - ErrInvalidIndex: returned by the search engines for start/goal indices
//     outside [0, NodeCount).
package core
