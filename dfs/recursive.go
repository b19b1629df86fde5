package dfs

// recurse is the call-stack traversal. Recursion depth is bounded by the
// number of reachable nodes, so large open mazes should use iterate.
func (w *dfsWalker) recurse(node, depth int) {
	if w.enter(node, depth) {
		return
	}

	for _, nid := range w.graph.Neighbors(node) {
		if w.found {
			return
		}
		if !w.visited[nid] {
			w.res.Parent[nid] = node
			w.recurse(nid, depth+1)
		}
	}
}
