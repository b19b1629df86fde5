// Command mazesolve loads a maze, solves it with BFS and DFS and prints the
// paths, memory statistics and a side-by-side comparison.
//
// Usage:
//
//	mazesolve [maze-file] [--config f] [--color auto|always|never]
//	          [--algo bfs,dfs] [--log-level info] [--metrics-file f]
//	mazesolve sample [path]
//
// With no maze file, mazesolve asks for one when stdin is a terminal and
// otherwise writes the built-in sample maze and solves that.
package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	env := environment{
		interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	if err := newRootCmd(env).Execute(); err != nil {
		os.Exit(1)
	}
}
