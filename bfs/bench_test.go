package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/core"
)

// walkable is an all-open or randomly walled n×n grid for benchmarks.
type walkable struct {
	n     int
	walls []bool
}

func (w walkable) Rows() int { return w.n }
func (w walkable) Cols() int { return w.n }
func (w walkable) IsPath(r, c int) bool {
	return r >= 0 && r < w.n && c >= 0 && c < w.n && !w.walls[r*w.n+c]
}

func newWalkable(n int, density int, seed int64) walkable {
	rnd := rand.New(rand.NewSource(seed))
	w := walkable{n: n, walls: make([]bool, n*n)}
	for i := range w.walls {
		w.walls[i] = rnd.Intn(100) < density
	}
	w.walls[0], w.walls[n*n-1] = false, false

	return w
}

// BenchmarkBFS_Open measures BFS corner to corner on an open 500×500 grid.
func BenchmarkBFS_Open(b *testing.B) {
	const n = 500
	g := core.Build(newWalkable(n, 0, 1))
	s := bfs.New(g)

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Solve(0, n*n-1)
	}
}

// BenchmarkBFS_Random measures BFS on a 500×500 grid with 25% walls.
func BenchmarkBFS_Random(b *testing.B) {
	const n = 500
	g := core.Build(newWalkable(n, 25, 42))
	s := bfs.New(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Solve(0, n*n-1)
	}
}
