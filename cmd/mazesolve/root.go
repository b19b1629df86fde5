package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/logging"
	"github.com/katalvlaran/mazepath/metrics"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/stats"
)

const promptText = "Enter maze file name (or press Enter to auto-create sample_maze.txt): "

// environment carries what the commands learn about the process.
type environment struct {
	// interactive reports whether stdin is a terminal; nil means never.
	interactive func() bool
}

// flags are bound by newRootCmd.
type flags struct {
	configPath  string
	color       string
	logLevel    string
	algorithms  []string
	metricsFile string
}

func newRootCmd(env environment) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "mazesolve [maze-file]",
		Short: "Solve a grid maze with BFS and DFS and compare the results",
		Long: `Load a maze, draw it, solve it with breadth-first and depth-first search,
and print both paths with a comparison table.

Maze file format:
  rows cols
  startRow startCol
  endRow endCol
  <rows lines of cols values, 0 = open, 1 = wall>

Examples:
  mazesolve maze.txt
  mazesolve maze.txt --algo bfs --color never
  mazesolve --metrics-file solve.prom maze.txt`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, env, &f, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.color, "color", config.ColorAuto, "colour output: auto, always or never")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.Flags().StringSliceVar(&f.algorithms, "algo", []string{config.AlgoBFS, config.AlgoDFS}, "algorithms to run")
	root.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus text metrics to this file")

	root.AddCommand(newSampleCmd(&f))

	return root
}

func newSampleCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "sample [path]",
		Short: "Write the built-in 10x10 sample maze",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			path := cfg.SamplePath
			if len(args) == 1 {
				path = args[0]
			}
			if err := gridgraph.WriteSample(path); err != nil {
				return err
			}

			return newRenderer(cmd.OutOrStdout(), cfg).SampleCreated(path)
		},
	}
}

// loadConfig reads --config and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("color") {
		cfg.Color = f.color
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("algo") {
		cfg.Algorithms = f.algorithms
	}

	return cfg, cfg.Validate()
}

func newRenderer(w io.Writer, cfg config.Config) *render.Renderer {
	return render.New(w,
		render.WithColor(render.ColorMode(cfg.Color)),
		render.WithSymbols(render.Symbols(cfg.Symbols)),
	)
}

func runSolve(cmd *cobra.Command, env environment, f *flags, args []string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	logger := logging.New(lc)
	out := newRenderer(cmd.OutOrStdout(), cfg)

	path, err := resolveMazePath(cmd, env, cfg, out, args)
	if err != nil {
		return err
	}

	grid, err := gridgraph.LoadFile(path)
	if err != nil {
		logger.Error("maze load failed", slog.String("path", path), slog.Any("error", err))
		return err
	}
	logger.Debug("maze analysed",
		slog.Int("walkable", grid.WalkableCount()),
		slog.Int("components", len(grid.ConnectedComponents())),
		slog.Bool("connected", grid.Connected()),
	)

	graph := core.Build(grid)
	if err := out.Loaded(path); err != nil {
		return err
	}
	if err := out.Maze(grid); err != nil {
		return err
	}
	if err := out.Memory(graph.Memory()); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	runner := stats.NewRunner(logger, metrics.New(reg))
	start := grid.Index(grid.Start().Row, grid.Start().Col)
	goal := grid.Index(grid.Goal().Row, grid.Goal().Col)

	outcomes := make(map[string]stats.Outcome, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		o := runner.Run(newSolver(name, graph), start, goal)
		outcomes[name] = o
		if err := out.Path(grid, o); err != nil {
			return err
		}
	}

	b, hasBFS := outcomes[config.AlgoBFS]
	d, hasDFS := outcomes[config.AlgoDFS]
	if hasBFS && hasDFS {
		if err := out.Comparison(stats.Compare(b, d)); err != nil {
			return err
		}
	}

	if f.metricsFile != "" {
		return writeMetrics(f.metricsFile, reg)
	}

	return nil
}

// newSolver maps a validated algorithm name to its solver.
func newSolver(name string, g *core.Graph) stats.Solver {
	if name == config.AlgoDFS {
		return dfs.New(g)
	}

	return bfs.New(g)
}

// resolveMazePath returns the maze file to load. Without an argument it
// prompts on a terminal; an empty answer, or no terminal, writes the sample
// maze to cfg.SamplePath and uses that.
func resolveMazePath(cmd *cobra.Command, env environment, cfg config.Config, out *render.Renderer, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if env.interactive != nil && env.interactive() {
		fmt.Fprint(cmd.OutOrStdout(), promptText)
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read maze file name: %w", err)
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
	}

	if err := gridgraph.WriteSample(cfg.SamplePath); err != nil {
		return "", err
	}

	return cfg.SamplePath, out.SampleCreated(cfg.SamplePath)
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics file: %w", err)
	}
	if err := metrics.WriteText(file, g); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
