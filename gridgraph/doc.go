// Package gridgraph models a maze as a 2D occupancy grid with a start and a
// goal cell, ready to be turned into a graph by package core.
//
// What:
//
//   - Grid wraps a rectangular [][]int (0 = path, nonzero = wall).
//   - Start and Goal are validated: in bounds and not on a wall.
//   - IsValidCell, IsPath and IsWall are bounds-safe; out-of-range cells are neither.
//   - Index/Coordinate map (row, col) to the row-major index row*cols + col.
//   - ConnectedComponents finds 4-connected regions of walkable cells.
//   - Parse/LoadFile read the plain-text maze format.
//
// Format:
//
//	rows cols
//	startRow startCol
//	endRow endCol
//	<rows lines of cols integers, 0 or 1>
//
// Complexity:
//
//   - NewGrid:             O(R×C), Memory: O(R×C).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - *LoadError with Kind KindFormat (matches ErrFormat): short or garbled input,
//     non-positive dimensions, empty or ragged rows.
//   - KindOutOfRange (ErrOutOfRange): start or goal outside the grid.
//   - KindBlockedEndpoint (ErrBlockedEndpoint): start or goal on a wall.
//   - ErrComponentIndex: ComponentOf called on a wall or outside the grid.
package gridgraph
