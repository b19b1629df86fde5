package core

// offsets are the 4-connected moves in the fixed order up, down, left, right.
// DFS path choice depends on this order.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Build converts w into an adjacency Graph with exactly Rows()*Cols() nodes.
// For each walkable cell, each in-bounds walkable neighbor (up, down, left,
// right) gets one directed entry; the reverse entry is added when the
// neighbor itself is processed. No self-loops.
//
// Complexity: O(R×C) time and memory.
func Build(w Walkable) *Graph {
	rows, cols := w.Rows(), w.Cols()
	g := &Graph{
		rows: rows,
		cols: cols,
		adj:  make([][]int, rows*cols),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !w.IsPath(r, c) {
				continue
			}
			var nbrs []int
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols || !w.IsPath(nr, nc) {
					continue
				}
				nbrs = append(nbrs, nr*cols+nc)
			}
			g.adj[r*cols+c] = nbrs
			g.edges += len(nbrs)
		}
	}

	return g
}

// Rows returns the grid height the graph was built from.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the grid width the graph was built from.
func (g *Graph) Cols() int { return g.cols }

// NodeCount returns rows*cols.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of directed adjacency entries
// (twice the number of undirected corridors).
func (g *Graph) EdgeCount() int { return g.edges }

// Valid reports whether idx lies in [0, NodeCount).
func (g *Graph) Valid(idx int) bool {
	return idx >= 0 && idx < len(g.adj)
}

// Index maps (r,c) to its node index, or NoNode if out of range.
// Complexity: O(1).
func (g *Graph) Index(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return NoNode
	}

	return r*g.cols + c
}

// Coord converts a node index back to (row, col), or (-1,-1) if out of range.
// Complexity: O(1).
func (g *Graph) Coord(idx int) (r, c int) {
	if !g.Valid(idx) {
		return -1, -1
	}

	return idx / g.cols, idx % g.cols
}

// Neighbors returns the neighbor list of idx in up, down, left, right order.
// The returned slice is shared with the graph and must not be modified.
// Returns nil for out-of-range indices and wall nodes.
func (g *Graph) Neighbors(idx int) []int {
	if !g.Valid(idx) {
		return nil
	}

	return g.adj[idx]
}

// Degree returns len(Neighbors(idx)).
func (g *Graph) Degree(idx int) int {
	return len(g.Neighbors(idx))
}
