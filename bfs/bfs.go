// Package bfs provides breadth-first search over a core.Graph, returning
// the shortest start→goal path by edge count and the number of nodes visited.
//
// BFS explores nodes in increasing distance from the start node and stops
// as soon as the goal is dequeued.
package bfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mazepath/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state for a single search.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	goal    int
	queue   []queueItem
	head    int
	visited []bool
	res     *BFSResult
}

// Solver runs breadth-first searches over one shared, read-only graph.
// It remembers the statistics of its most recent search; a Solver is not
// safe for concurrent use, but several Solvers may share one graph.
type Solver struct {
	graph   *core.Graph
	opts    BFSOptions
	last    *BFSResult
	elapsed time.Duration
}

// New returns a Solver over g configured by opts.
func New(g *core.Graph, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{graph: g, opts: o, last: &BFSResult{Path: core.Path{}}}
}

// Name identifies the algorithm in reports.
func (s *Solver) Name() string { return "BFS" }

// Solve returns the shortest path from start to goal, or an empty path if
// the goal is unreachable or either index is outside [0, NodeCount).
// Invalid indices are deliberately indistinguishable from "no path" here;
// use Search to tell them apart.
func (s *Solver) Solve(start, goal int) core.Path {
	res, _ := s.Search(start, goal)
	if res == nil {
		return core.Path{}
	}

	return res.Path
}

// Search runs BFS from start to goal.
// Returns ErrGraphNil for a nil graph and a wrapped core.ErrInvalidIndex when
// start or goal is out of range; in the latter case no node is visited and
// the result carries an empty path.
//
// Complexity: O(V + E) time, O(V) memory.
func (s *Solver) Search(start, goal int) (*BFSResult, error) {
	if s.graph == nil {
		s.last, s.elapsed = &BFSResult{Path: core.Path{}}, 0
		return nil, ErrGraphNil
	}
	began := s.opts.Clock()
	defer func() { s.elapsed = s.opts.Clock().Sub(began) }()

	n := s.graph.NodeCount()
	if !s.graph.Valid(start) || !s.graph.Valid(goal) {
		s.last = &BFSResult{Path: core.Path{}}
		return s.last, fmt.Errorf("bfs: start %d, goal %d (nodes %d): %w", start, goal, n, core.ErrInvalidIndex)
	}

	w := &walker{
		graph:   s.graph,
		opts:    s.opts,
		goal:    goal,
		queue:   make([]queueItem, 0, 64),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, 64),
			Parent: core.NewParents(n),
			Depth:  make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, core.NoNode)
	found := w.loop()
	w.res.Path = core.Reconstruct(w.res.Parent, goal, found)
	s.last = w.res

	return w.res, nil
}

// Visited returns the node count of the most recent search.
func (s *Solver) Visited() int { return s.last.Visited }

// Elapsed returns the duration of the most recent search.
func (s *Solver) Elapsed() time.Duration { return s.elapsed }

// Last returns the full result of the most recent search.
func (s *Solver) Last() *BFSResult { return s.last }

// enqueue marks node visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue. Marking at enqueue time keeps every
// node in the queue at most once.
func (w *walker) enqueue(node, d, parent int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.opts.OnEnqueue(node, d)
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue in FIFO order until the goal is dequeued or the
// queue is empty. Reports whether the goal was reached.
func (w *walker) loop() bool {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		w.res.Visited++
		w.res.Order = append(w.res.Order, item.node)
		w.opts.OnVisit(item.node, item.depth)
		if item.node == w.goal {
			return true
		}

		for _, nbr := range w.graph.Neighbors(item.node) {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.node)
			}
		}
	}

	return false
}
