// Package gridgraph provides the maze grid model: a rectangular occupancy
// matrix with a validated start and goal cell. It supports:
//
//   - Bounds-safe classification of cells (IsValidCell, IsPath, IsWall)
//   - Row-major index mapping (Index, Coordinate)
//   - Connected components of walkable cells
//   - Loading from the plain-text maze format
//
// Cells with value 0 are walkable; any nonzero value is a wall.
package gridgraph

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns a *LoadError of KindFormat if grid has no rows, no columns or ragged
// rows, KindOutOfRange if start or goal lies outside the grid, and
// KindBlockedEndpoint if either lies on a wall.
// Algorithmic complexity: O(rows×cols) time and memory.
func NewGrid(values [][]int, start, goal Coord) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, formatErr(nil, "grid must have at least one row and one column")
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, formatErr(nil, "row %d has %d columns, want %d", r, len(row), cols)
		}
	}

	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c, v := range values[r] {
			if v != 0 {
				cells[r][c] = Wall
			}
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: cells, start: start, goal: goal}

	if !g.IsValidCell(start.Row, start.Col) {
		return nil, &LoadError{Kind: KindOutOfRange, Detail: "start position " + start.String() + " outside grid"}
	}
	if !g.IsValidCell(goal.Row, goal.Col) {
		return nil, &LoadError{Kind: KindOutOfRange, Detail: "end position " + goal.String() + " outside grid"}
	}
	if g.IsWall(start.Row, start.Col) || g.IsWall(goal.Row, goal.Col) {
		return nil, &LoadError{Kind: KindBlockedEndpoint, Detail: "start or end cell lies on a wall"}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal coordinate.
func (g *Grid) Goal() Coord { return g.goal }

// IsValidCell reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) IsValidCell(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// IsPath reports whether (r,c) is in bounds and walkable.
func (g *Grid) IsPath(r, c int) bool {
	return g.IsValidCell(r, c) && g.cells[r][c] == Path
}

// IsWall reports whether (r,c) is in bounds and blocked.
// Out-of-range coordinates are not walls.
func (g *Grid) IsWall(r, c int) bool {
	return g.IsValidCell(r, c) && g.cells[r][c] == Wall
}

// Cell returns the raw occupancy value at (r,c): 0 for path, 1 for wall,
// -1 when the coordinate is out of range.
func (g *Grid) Cell(r, c int) int {
	if !g.IsValidCell(r, c) {
		return -1
	}

	return int(g.cells[r][c])
}

// WalkableCount returns the number of walkable cells.
func (g *Grid) WalkableCount() int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == Path {
				n++
			}
		}
	}

	return n
}

// index maps (r,c) to a row-major index: r*cols + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Index maps (r,c) to its row-major index, or -1 if out of range.
func (g *Grid) Index(r, c int) int {
	if !g.IsValidCell(r, c) {
		return -1
	}

	return g.index(r, c)
}

// Coordinate converts a row-major index back to a Coord.
// Returns Coord{-1, -1} when idx is outside [0, rows*cols).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	if idx < 0 || idx >= g.rows*g.cols {
		return Coord{-1, -1}
	}

	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}
