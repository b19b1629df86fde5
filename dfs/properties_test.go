package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/dfs"
)

// TestBFSvsDFS_Properties checks, over random mazes, that both engines agree
// on reachability, BFS is never longer, visit counts bound the path, and
// every path is a chain of graph edges.
func TestBFSvsDFS_Properties(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		g := randomGraph(9, 11, 35, seed)
		start, goal := 0, g.NodeCount()-1

		bs, ds := bfs.New(g), dfs.New(g)
		bp, dp := bs.Solve(start, goal), ds.Solve(start, goal)

		assert.Equal(t, bp.Found(), dp.Found(), "seed %d reachability", seed)
		if bp.Found() && dp.Found() {
			assert.LessOrEqual(t, bp.Steps(), dp.Steps(), "seed %d optimality", seed)
			assert.GreaterOrEqual(t, bs.Visited(), bp.Steps()+1, "seed %d bfs visited", seed)
			assert.GreaterOrEqual(t, ds.Visited(), dp.Steps()+1, "seed %d dfs visited", seed)
			assertChain(t, g, bp, start, goal)
			assertChain(t, g, dp, start, goal)
		}
		for _, v := range []int{bs.Visited(), ds.Visited()} {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, g.NodeCount())
		}
	}
}

func assertChain(t *testing.T, g *core.Graph, p core.Path, start, goal int) {
	t.Helper()
	assert.Equal(t, start, p[0])
	assert.Equal(t, goal, p[len(p)-1])
	for i := 1; i < len(p); i++ {
		assert.Contains(t, g.Neighbors(p[i-1]), p[i])
	}
}
