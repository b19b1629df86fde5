package gridgraph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
)

func TestParse_Sample(t *testing.T) {
	g, err := gridgraph.ParseString(gridgraph.SampleMaze)
	require.NoError(t, err)

	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 10, g.Cols())
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, gridgraph.Coord{Row: 9, Col: 9}, g.Goal())
	assert.True(t, g.IsWall(0, 1))
	assert.True(t, g.IsPath(4, 4))
	assert.True(t, g.Connected())
}

func TestParse_LineBreaksIgnored(t *testing.T) {
	g, err := gridgraph.ParseString("2 2 0 0 1 1 0 0 1 0")
	require.NoError(t, err)
	assert.True(t, g.IsWall(1, 0))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", gridgraph.ErrFormat},
		{"ShortHeader", "3 3\n0 0\n", gridgraph.ErrFormat},
		{"Garbled", "3 x\n0 0\n2 2\n", gridgraph.ErrFormat},
		{"ZeroRows", "0 3\n0 0\n0 0\n", gridgraph.ErrFormat},
		{"ShortGrid", "2 2\n0 0\n1 1\n0 0\n0\n", gridgraph.ErrFormat},
		{"GarbledCell", "1 2\n0 0\n0 1\n0 ?\n", gridgraph.ErrFormat},
		{"StartOutOfRange", "2 2\n0 2\n1 1\n0 0\n0 0\n", gridgraph.ErrOutOfRange},
		{"EndOutOfRange", "2 2\n0 0\n-1 1\n0 0\n0 0\n", gridgraph.ErrOutOfRange},
		{"HugeDims", "1000000000000 1\n0 0\n0 0\n0\n", gridgraph.ErrFormat},
		{"OverflowDims", "4611686018427387904 4\n0 0\n0 0\n0\n", gridgraph.ErrFormat},
		{"EndOnWall", "2 2\n0 0\n1 1\n0 0\n0 1\n", gridgraph.ErrBlockedEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.ParseString(tc.in)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_ErrorMessageNamesValue(t *testing.T) {
	_, err := gridgraph.ParseString("2 2\n0 0\n1 1\n0 0\n0\n")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "cell (1,1)"), "got %q", err.Error())
}

func TestLoadFile_RoundTripSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_maze.txt")
	require.NoError(t, gridgraph.WriteSample(path))

	g, err := gridgraph.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Rows())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := gridgraph.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "working directory")
}
