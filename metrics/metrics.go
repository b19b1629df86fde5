// Package metrics records solver outcomes as Prometheus metrics.
//
// Metrics (namespace "mazepath", subsystem "solver"):
//   - solves_total{algorithm,result}: counter, result is "found" or "no_path"
//   - nodes_visited{algorithm}:       histogram of visited-node counts
//   - path_steps{algorithm}:          histogram of path lengths (found only)
//   - duration_seconds{algorithm}:    histogram of solve durations
//
// Collectors are registered on a caller-supplied registry so tests and
// repeated CLI runs never collide with the global one.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	namespace = "mazepath"
	subsystem = "solver"

	// ResultFound labels a solve that reached the goal.
	ResultFound = "found"
	// ResultNoPath labels a solve that exhausted its frontier.
	ResultNoPath = "no_path"
)

// Collector holds the solver metrics.
type Collector struct {
	SolvesTotal     *prometheus.CounterVec
	NodesVisited    *prometheus.HistogramVec
	PathSteps       *prometheus.HistogramVec
	DurationSeconds *prometheus.HistogramVec
}

// New creates a Collector and registers it on reg.
// Panics if the collectors are already registered on reg, like promauto.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		SolvesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "solves_total",
			Help:      "Total solves by algorithm and result",
		}, []string{"algorithm", "result"}),
		NodesVisited: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes_visited",
			Help:      "Nodes visited per solve",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"algorithm"}),
		PathSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "path_steps",
			Help:      "Steps in the path found per successful solve",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		DurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Solve duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
	}
}

// Observe records one solve. A nil Collector is a no-op.
func (c *Collector) Observe(algorithm string, found bool, steps, visited int, elapsed time.Duration) {
	if c == nil {
		return
	}
	result := ResultNoPath
	if found {
		result = ResultFound
		c.PathSteps.WithLabelValues(algorithm).Observe(float64(steps))
	}
	c.SolvesTotal.WithLabelValues(algorithm, result).Inc()
	c.NodesVisited.WithLabelValues(algorithm).Observe(float64(visited))
	c.DurationSeconds.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
