// Package bfs provides breadth-first search over a core.Graph built from a
// maze grid, returning the shortest start→goal path by edge count.
//
// What
//
//   - Solver.Solve(start, goal) returns the node path, empty if unreachable.
//   - Solver.Search(start, goal) returns a BFSResult containing:
//   - Path:    start→goal node indices
//   - Visited: nodes dequeued, goal included
//   - Order:   dequeue sequence
//   - Parent:  predecessor of each discovered node (core.NoNode otherwise)
//   - Depth:   distance in edges from start (-1 if undiscovered)
//   - Visited() and Elapsed() report the most recent search.
//
// Why
//
//   - In an unweighted graph the first time the goal leaves the queue its
//     parent chain is a shortest path (layer-order invariant).
//
// Algorithm
//
//  1. Enqueue start and mark it visited immediately.
//  2. Dequeue in strict FIFO order; count the node as visited.
//  3. Stop if it is the goal.
//  4. Otherwise mark, parent and enqueue each unvisited neighbor in the
//     graph's fixed up, down, left, right order.
//  5. An empty queue means the goal is unreachable.
//
// Marking at enqueue time, not at dequeue time, keeps each node in the queue
// at most once.
//
// Edge cases
//
//   - start == goal: Path is [start], Visited is 1.
//   - start or goal outside [0, NodeCount): Solve returns an empty path,
//     Search returns core.ErrInvalidIndex; nothing is visited.
//
// Determinism
//
//	Neighbor lists are built in a fixed order, so the visit sequence and the
//	chosen shortest path are reproducible for a given grid.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited flags, parents and depths
//
// Options
//
//   - DefaultOptions(): no-op hooks, time.Now clock.
//   - WithOnEnqueue(fn): hook when a node is discovered.
//   - WithOnVisit(fn):   hook when a node is dequeued.
//   - WithClock(fn):     time source for Elapsed.
//
// Errors
//
//   - ErrGraphNil          if the Solver was built over a nil graph.
//   - core.ErrInvalidIndex if start or goal is out of range (Search only).
package bfs
