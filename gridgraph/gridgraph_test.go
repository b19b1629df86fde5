package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and predicate tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects malformed inputs and bad endpoints.
func TestNewGrid_Errors(t *testing.T) {
	open := [][]int{{0, 0}, {0, 1}}
	cases := []struct {
		name        string
		grid        [][]int
		start, goal gridgraph.Coord
		err         error
		kind        gridgraph.ErrorKind
	}{
		{"EmptyRows", [][]int{}, gridgraph.Coord{}, gridgraph.Coord{}, gridgraph.ErrFormat, gridgraph.KindFormat},
		{"EmptyCols", [][]int{{}}, gridgraph.Coord{}, gridgraph.Coord{}, gridgraph.ErrFormat, gridgraph.KindFormat},
		{"NonRectangular", [][]int{{0, 0}, {0}}, gridgraph.Coord{}, gridgraph.Coord{}, gridgraph.ErrFormat, gridgraph.KindFormat},
		{"StartNegative", open, gridgraph.Coord{Row: -1, Col: 0}, gridgraph.Coord{Row: 0, Col: 1}, gridgraph.ErrOutOfRange, gridgraph.KindOutOfRange},
		{"GoalTooFar", open, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 0}, gridgraph.ErrOutOfRange, gridgraph.KindOutOfRange},
		{"GoalOnWall", open, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 1, Col: 1}, gridgraph.ErrBlockedEndpoint, gridgraph.KindBlockedEndpoint},
		{"StartOnWall", open, gridgraph.Coord{Row: 1, Col: 1}, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.ErrBlockedEndpoint, gridgraph.KindBlockedEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.NewGrid(tc.grid, tc.start, tc.goal)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)

			var le *gridgraph.LoadError
			require.True(t, errors.As(err, &le), "want *LoadError, got %T", err)
			assert.Equal(t, tc.kind, le.Kind)
		})
	}
}

// TestLoadError_IsOnlyOwnKind checks that a LoadError does not match foreign sentinels.
func TestLoadError_IsOnlyOwnKind(t *testing.T) {
	_, err := gridgraph.NewGrid([][]int{{1, 0}}, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 0, Col: 1})
	assert.ErrorIs(t, err, gridgraph.ErrBlockedEndpoint)
	assert.NotErrorIs(t, err, gridgraph.ErrFormat)
	assert.NotErrorIs(t, err, gridgraph.ErrOutOfRange)
}

// TestPredicates checks IsValidCell, IsPath, IsWall and Cell on a 2×3 grid.
func TestPredicates(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{0, 0, 7},
	}
	g, err := gridgraph.NewGrid(grid, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 0, Col: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 2}, g.Goal())
	assert.Equal(t, 4, g.WalkableCount())

	assert.True(t, g.IsPath(0, 0))
	assert.True(t, g.IsWall(0, 1))
	assert.True(t, g.IsWall(1, 2), "any nonzero value is a wall")
	assert.Equal(t, 1, g.Cell(1, 2))
	assert.Equal(t, 0, g.Cell(1, 1))

	outside := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}}
	for _, rc := range outside {
		assert.False(t, g.IsValidCell(rc[0], rc[1]), "IsValidCell%v", rc)
		assert.False(t, g.IsPath(rc[0], rc[1]), "IsPath%v", rc)
		assert.False(t, g.IsWall(rc[0], rc[1]), "IsWall%v", rc)
		assert.Equal(t, -1, g.Cell(rc[0], rc[1]))
		assert.Equal(t, -1, g.Index(rc[0], rc[1]))
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the Grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	g, err := gridgraph.NewGrid(grid, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 1, Col: 1})
	require.NoError(t, err)

	grid[0][1] = 1
	assert.True(t, g.IsPath(0, 1))
}

// TestIndexCoordinate_Bijection checks Coordinate(Index(r,c)) == (r,c) for every cell.
func TestIndexCoordinate_Bijection(t *testing.T) {
	grid := make([][]int, 4)
	for r := range grid {
		grid[r] = make([]int, 7)
	}
	g, err := gridgraph.NewGrid(grid, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 3, Col: 6})
	require.NoError(t, err)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			idx := g.Index(r, c)
			assert.Equal(t, r*7+c, idx)
			assert.Equal(t, gridgraph.Coord{Row: r, Col: c}, g.Coordinate(idx))
		}
	}
	assert.Equal(t, gridgraph.Coord{Row: -1, Col: -1}, g.Coordinate(-1))
	assert.Equal(t, gridgraph.Coord{Row: -1, Col: -1}, g.Coordinate(28))
}
