// Package mazepath turns grid mazes into graphs and solves them with
// breadth-first and depth-first search.
//
// What is mazepath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: occupancy matrix, start/goal, bounds-safe predicates
//		• Graph builder: 4-connected adjacency list over row-major indices
//		• Traversals: BFS (shortest path) and DFS (some path), with hooks
//		• Path reconstruction: parent-pointer backtracking
//		• Reports: coloured maze drawings, memory stats, BFS vs DFS table
//
// Layout:
//
//	gridgraph/ — Grid, text-format loader, sample maze, connected regions
//	core/      — adjacency Graph, Path, Reconstruct, memory estimate
//	bfs/       — breadth-first Solver (OnEnqueue, OnVisit, Clock options)
//	dfs/       — depth-first Solver (iterative or recursive)
//	stats/     — Runner, Outcome and Comparison
//	render/    — text renderer (lipgloss colour, plain fallback)
//	config/    — YAML configuration
//	logging/   — slog setup
//	metrics/   — Prometheus solver metrics
//	cmd/mazesolve — the command-line front end
//
// Quick ASCII example:
//
//	S . #        S → (0,0)
//	. . .        G → (2,2)
//	# . G        BFS path: (0,0) (1,0) (1,1) (2,1) (2,2)
//
//	go install github.com/katalvlaran/mazepath/cmd/mazesolve@latest
package mazepath
