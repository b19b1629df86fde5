package render_test

import (
	"os"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/stats"
)

// ExampleRenderer_Path draws the shortest route through the sample maze.
func ExampleRenderer_Path() {
	g, _ := gridgraph.ParseString(gridgraph.SampleMaze)
	graph := core.Build(g)

	var runner stats.Runner
	out := runner.Run(bfs.New(graph), g.Index(0, 0), g.Index(9, 9))

	r := render.New(os.Stdout, render.WithColor(render.ColorNever))
	_ = r.Path(g, out)
	// Output:
	// === BFS PATH ===
	// S # . . . . . # . .
	// * # . # # # . # . .
	// * * * * * . . # . .
	// # # # # * # # # . #
	// . . . . * * * * * *
	// . # # # # # # # # *
	// . . . . . . . . * *
	// . # . # . # . # * #
	// . # . # . # . # * .
	// . . . # . . . # * G
	//
	// Path length: 20 steps
}
