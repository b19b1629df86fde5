// Package dfs implements depth-first search on a core.Graph built from a
// maze grid. It finds some start→goal path when one exists, not
// necessarily the shortest.
//
// Algorithm:
//
//  1. Enter a node: mark it visited, count it, run OnVisit.
//  2. If it is the goal, stop; nothing else is explored.
//  3. Otherwise, for each neighbor in the graph's fixed up, down, left,
//     right order that is still unvisited, record the parent and descend.
//
// The parent is recorded when a neighbor is first discovered, before
// descending, never on backtrack.
//
// Forms:
//
//   - Explicit stack (default): one frame per node holding the next
//     neighbor to try. Immune to stack growth on large mazes.
//   - Recursive (WithRecursive): the literal call-stack form.
//
// Both forms enter nodes in the same order and produce identical Order,
// Parent, Depth, Path and Visited for the same input.
//
// Determinism:
//
//	Given a grid, the path found is fixed by the neighbor order. It is an
//	implementation detail, not an optimality guarantee; use package bfs for
//	shortest paths.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the stack, visited flags, parents and depths.
//
// Options:
//
//   - WithOnVisit(fn)   pre-order hook with the node's tree depth.
//   - WithRecursive()   use the recursive traversal.
//   - WithClock(fn)     time source for Elapsed.
//
// Errors:
//
//   - ErrGraphNil          if the Solver's graph is nil.
//   - core.ErrInvalidIndex if start or goal is out of range (Search only;
//     Solve returns an empty path).
package dfs
