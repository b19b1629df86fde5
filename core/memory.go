package core

import "strconv"

const (
	intBytes         = strconv.IntSize / 8
	sliceHeaderBytes = 3 * intBytes // pointer, len, cap
)

// MemoryStats compares the footprint of a dense rows×cols int matrix with
// the adjacency list held by a Graph. Sizes are estimates from element
// sizes, not allocator measurements.
type MemoryStats struct {
	MatrixBytes    int
	AdjacencyBytes int
}

// Saved returns MatrixBytes - AdjacencyBytes; negative when the adjacency
// list is the larger of the two.
func (m MemoryStats) Saved() int {
	return m.MatrixBytes - m.AdjacencyBytes
}

// Efficiency returns Saved as a percentage of MatrixBytes, 0 for an empty matrix.
func (m MemoryStats) Efficiency() float64 {
	if m.MatrixBytes == 0 {
		return 0
	}

	return float64(m.Saved()) * 100 / float64(m.MatrixBytes)
}

// Memory estimates the graph's memory use against an occupancy matrix.
// Each node costs one slice header plus one int per neighbor entry.
func (g *Graph) Memory() MemoryStats {
	n := len(g.adj)

	return MemoryStats{
		MatrixBytes:    n * intBytes,
		AdjacencyBytes: n*sliceHeaderBytes + g.edges*intBytes,
	}
}
