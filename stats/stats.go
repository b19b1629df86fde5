// Package stats runs maze solvers, records what each run cost and compares
// the outcomes of two algorithms on the same maze.
package stats

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/logging"
	"github.com/katalvlaran/mazepath/metrics"
)

// Solver is the surface shared by bfs.Solver and dfs.Solver.
type Solver interface {
	Name() string
	Solve(start, goal int) core.Path
	Visited() int
	Elapsed() time.Duration
}

// Outcome is the result of one solver run.
type Outcome struct {
	Algorithm string
	Path      core.Path
	Visited   int
	Elapsed   time.Duration
}

// Found reports whether a path was found.
func (o Outcome) Found() bool { return o.Path.Found() }

// Steps is the path length in edges, 0 when no path was found.
func (o Outcome) Steps() int { return o.Path.Steps() }

// Millis is Elapsed in fractional milliseconds.
func (o Outcome) Millis() float64 {
	return float64(o.Elapsed) / float64(time.Millisecond)
}

// Runner executes solvers and reports each run to a logger and a metrics
// collector. The zero Runner is usable and reports nowhere.
type Runner struct {
	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// NewRunner returns a Runner; a nil logger is replaced by logging.Discard.
func NewRunner(logger *slog.Logger, m *metrics.Collector) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Runner{Logger: logger, Metrics: m}
}

// Run solves start→goal with s and returns the outcome.
func (r *Runner) Run(s Solver, start, goal int) Outcome {
	path := s.Solve(start, goal)
	out := Outcome{
		Algorithm: s.Name(),
		Path:      path,
		Visited:   s.Visited(),
		Elapsed:   s.Elapsed(),
	}

	if r.Logger != nil {
		r.Logger.Info("solve finished",
			slog.String("algorithm", out.Algorithm),
			slog.Bool("found", out.Found()),
			slog.Int("steps", out.Steps()),
			slog.Int("visited", out.Visited),
			slog.Duration("elapsed", out.Elapsed),
		)
	}
	r.Metrics.Observe(out.Algorithm, out.Found(), out.Steps(), out.Visited, out.Elapsed)

	return out
}

// Comparison holds two outcomes over the same maze, conventionally BFS first.
type Comparison struct {
	First, Second Outcome
}

// Compare pairs two outcomes.
func Compare(first, second Outcome) Comparison {
	return Comparison{First: first, Second: second}
}

// Outcomes returns both outcomes in order.
func (c Comparison) Outcomes() []Outcome {
	return []Outcome{c.First, c.Second}
}

// Verdict summarises path lengths in one sentence.
// Empty unless both algorithms found a path.
func (c Comparison) Verdict() string {
	a, b := c.First, c.Second
	if !a.Found() || !b.Found() {
		return ""
	}
	switch {
	case a.Steps() < b.Steps():
		return fmt.Sprintf("%s found a shorter (optimal) path in this unweighted maze.", a.Algorithm)
	case b.Steps() < a.Steps():
		return fmt.Sprintf("%s found a shorter path in this maze.", b.Algorithm)
	default:
		return "Both algorithms found paths of equal length."
	}
}
