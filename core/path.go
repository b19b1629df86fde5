package core

// Reconstruct walks parent pointers from goal back to the node whose parent
// is NoNode, then reverses the walk into start→goal order.
//
// If found is false the result is empty: callers must treat that as
// "no path", distinct from the single-node path of a start==goal search.
// The walk is capped at len(parent) steps so a corrupt parent slice cannot
// loop forever; in that case the result is empty as well.
//
// Complexity: O(len(path)).
func Reconstruct(parent []int, goal int, found bool) Path {
	if !found || goal < 0 || goal >= len(parent) {
		return Path{}
	}

	path := make(Path, 0)
	for cur := goal; cur != NoNode; cur = parent[cur] {
		if len(path) >= len(parent) {
			return Path{}
		}
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// NewParents returns a parent slice of length n filled with NoNode.
func NewParents(n int) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = NoNode
	}

	return parent
}
