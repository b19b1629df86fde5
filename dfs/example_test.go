package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// ExampleSolver_Solve shows that DFS follows the neighbor order (down before
// right) and so takes a long detour through an open 4×4 room.
func ExampleSolver_Solve() {
	values := make([][]int, 4)
	for r := range values {
		values[r] = make([]int, 4)
	}
	grid, _ := gridgraph.NewGrid(values, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 3, Col: 3})
	g := core.Build(grid)

	s := dfs.New(g)
	path := s.Solve(g.Index(0, 0), g.Index(3, 3))
	fmt.Println(path)
	fmt.Println("steps:", path.Steps(), "visited:", s.Visited())

	// Output:
	// [0 4 8 12 13 9 5 1 2 6 10 14 15]
	// steps: 12 visited: 13
}

// ExampleWithRecursive compares the two traversal forms on the sample maze.
func ExampleWithRecursive() {
	grid, _ := gridgraph.ParseString(gridgraph.SampleMaze)
	g := core.Build(grid)
	start, goal := g.Index(0, 0), g.Index(9, 9)

	it := dfs.New(g)
	rec := dfs.New(g, dfs.WithRecursive())
	a, b := it.Solve(start, goal), rec.Solve(start, goal)

	fmt.Println("steps:", a.Steps(), b.Steps())
	fmt.Println("visited:", it.Visited(), rec.Visited())

	// Output:
	// steps: 46 46
	// visited: 49 49
}
