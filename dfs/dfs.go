// Package dfs implements depth-first search from a start node to a goal
// node on a core.Graph. The path found is some path, not necessarily the
// shortest; which one depends on the graph's fixed neighbor order.
package dfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mazepath/core"
)

// dfsWalker encapsulates state during one DFS.
type dfsWalker struct {
	graph   *core.Graph // underlying graph
	opts    DFSOptions  // traversal options
	goal    int
	visited []bool
	found   bool
	res     *DFSResult // result collector
}

// frame is one level of the explicit stack: a node and the position of the
// next neighbor to try, as a recursive call would hold them.
type frame struct {
	node  int
	depth int
	next  int
}

// Solver runs depth-first searches over one shared, read-only graph and
// remembers the statistics of its most recent search. Not safe for
// concurrent use; create one Solver per goroutine.
type Solver struct {
	graph   *core.Graph
	opts    DFSOptions
	last    *DFSResult
	elapsed time.Duration
}

// New returns a Solver over g configured by opts.
func New(g *core.Graph, opts ...Option) *Solver {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	return &Solver{graph: g, opts: dopts, last: &DFSResult{Path: core.Path{}}}
}

// Name identifies the algorithm in reports.
func (s *Solver) Name() string { return "DFS" }

// Solve returns a path from start to goal, or an empty path if the goal is
// unreachable or either index is outside [0, NodeCount).
func (s *Solver) Solve(start, goal int) core.Path {
	res, _ := s.Search(start, goal)
	if res == nil {
		return core.Path{}
	}

	return res.Path
}

// Search performs depth-first search from start and stops as soon as goal
// is entered. Returns ErrGraphNil for a nil graph and a wrapped
// core.ErrInvalidIndex for out-of-range indices (with an empty result).
//
// Complexity: O(V + E) time, O(V) memory.
func (s *Solver) Search(start, goal int) (*DFSResult, error) {
	// 1. Validate input graph
	if s.graph == nil {
		s.last, s.elapsed = &DFSResult{Path: core.Path{}}, 0
		return nil, ErrGraphNil
	}
	began := s.opts.Clock()
	defer func() { s.elapsed = s.opts.Clock().Sub(began) }()

	// 2. Validate indices
	n := s.graph.NodeCount()
	if !s.graph.Valid(start) || !s.graph.Valid(goal) {
		s.last = &DFSResult{Path: core.Path{}}
		return s.last, fmt.Errorf("dfs: start %d, goal %d (nodes %d): %w", start, goal, n, core.ErrInvalidIndex)
	}

	// 3. Initialize per-search state
	res := &DFSResult{
		Order:  make([]int, 0, 64),
		Parent: core.NewParents(n),
		Depth:  make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}
	w := &dfsWalker{graph: s.graph, opts: s.opts, goal: goal, visited: make([]bool, n), res: res}

	// 4. Traverse
	if s.opts.Recursive {
		w.recurse(start, 0)
	} else {
		w.iterate(start)
	}

	// 5. Reconstruct
	res.Path = core.Reconstruct(res.Parent, goal, w.found)
	s.last = res

	return res, nil
}

// Visited returns the node count of the most recent search.
func (s *Solver) Visited() int { return s.last.Visited }

// Elapsed returns the duration of the most recent search.
func (s *Solver) Elapsed() time.Duration { return s.elapsed }

// Last returns the full result of the most recent search.
func (s *Solver) Last() *DFSResult { return s.last }

// enter marks node visited, counts it and runs the pre-order hook.
// Reports whether node is the goal.
func (w *dfsWalker) enter(node, depth int) bool {
	w.visited[node] = true
	w.res.Visited++
	w.res.Depth[node] = depth
	w.res.Order = append(w.res.Order, node)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(node, depth)
	}
	if node == w.goal {
		w.found = true
	}

	return w.found
}

// iterate is the explicit-stack traversal. Each frame resumes its neighbor
// scan where the child returned, so nodes are entered and parents recorded
// in exactly the order of recurse.
func (w *dfsWalker) iterate(start int) {
	if w.enter(start, 0) {
		return
	}
	stack := []frame{{node: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := w.graph.Neighbors(top.node)

		child := core.NoNode
		for top.next < len(nbrs) {
			nid := nbrs[top.next]
			top.next++
			if !w.visited[nid] {
				child = nid
				break
			}
		}
		if child == core.NoNode {
			stack = stack[:len(stack)-1] // all neighbors done: backtrack
			continue
		}

		// Parent is recorded on discovery, before descending
		w.res.Parent[child] = top.node
		depth := top.depth + 1
		if w.enter(child, depth) {
			return
		}
		stack = append(stack, frame{node: child, depth: depth})
	}
}
