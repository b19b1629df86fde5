package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/logging"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazesolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
color: never
algorithms: [dfs]
log:
  level: debug
symbols:
  path: "o"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, []string{"dfs"}, cfg.Algorithms)
	assert.Equal(t, "o", cfg.Symbols.Path)
	assert.Equal(t, "#", cfg.Symbols.Wall, "unset symbols keep defaults")
	assert.Equal(t, "sample_maze.txt", cfg.SamplePath)
	assert.Equal(t, logging.LevelDebug, cfg.LoggerConfig().Level)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"BadColor", "color: rainbow\n"},
		{"BadAlgorithm", "algorithms: [astar]\n"},
		{"NoAlgorithms", "algorithms: []\n"},
		{"DuplicateAlgorithm", "algorithms: [bfs, dfs, bfs]\n"},
		{"BadLevel", "log:\n  level: shout\n"},
		{"LongSymbol", "symbols:\n  wall: \"##\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "color: [unclosed\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
