package gridgraph

// neighborOffsets lists the 4-connected moves in the fixed order
// up, down, left, right as (dRow, dCol).
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ConnectedComponents finds all contiguous regions of walkable cells,
// using 4-connectivity. Components are discovered in row-major order of
// their first cell; each component lists cell indices (row-major) in the
// order a flood fill reached them.
//
// To convert an index back to (r,c), use Coordinate(idx).
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]int

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Wall {
				continue
			}
			i0 := g.index(r, c)
			if seen[i0] {
				continue
			}
			comps = append(comps, g.flood(i0, seen))
		}
	}

	return comps
}

// ComponentOf returns the walkable component containing p.
// Returns ErrComponentIndex if p is a wall or out of range.
func (g *Grid) ComponentOf(p Coord) ([]int, error) {
	if !g.IsPath(p.Row, p.Col) {
		return nil, ErrComponentIndex
	}
	seen := make([]bool, g.rows*g.cols)

	return g.flood(g.index(p.Row, p.Col), seen), nil
}

// Connected reports whether Start and Goal share a component.
func (g *Grid) Connected() bool {
	comp, err := g.ComponentOf(g.start)
	if err != nil {
		return false
	}
	goal := g.index(g.goal.Row, g.goal.Col)
	for _, i := range comp {
		if i == goal {
			return true
		}
	}

	return false
}

// flood collects the component of i0 with a queue-based fill, marking seen.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		p := g.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			nr, nc := p.Row+d[0], p.Col+d[1]
			if !g.IsPath(nr, nc) {
				continue
			}
			ni := g.index(nr, nc)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
	}

	return queue
}
