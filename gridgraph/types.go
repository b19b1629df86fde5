// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/mazepath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid loading. Every *LoadError matches exactly one of them
// through errors.Is.
var (
	// ErrFormat indicates the maze description could not be parsed.
	ErrFormat = errors.New("gridgraph: invalid maze format")
	// ErrOutOfRange indicates the start or goal coordinate lies outside the grid.
	ErrOutOfRange = errors.New("gridgraph: coordinate out of range")
	// ErrBlockedEndpoint indicates the start or goal coordinate lies on a wall.
	ErrBlockedEndpoint = errors.New("gridgraph: endpoint lies on a wall")
)

// ErrorKind classifies a LoadError.
type ErrorKind int

const (
	// KindFormat: short, garbled or non-rectangular input.
	KindFormat ErrorKind = iota
	// KindOutOfRange: start or goal outside the grid bounds.
	KindOutOfRange
	// KindBlockedEndpoint: start or goal on a wall cell.
	KindBlockedEndpoint
)

// String returns a short lowercase name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindOutOfRange:
		return "out of range"
	case KindBlockedEndpoint:
		return "blocked endpoint"
	default:
		return "unknown"
	}
}

// LoadError reports why a maze could not be turned into a Grid.
// Callers are expected to report it and abort the run.
type LoadError struct {
	Kind   ErrorKind
	Detail string
	Err    error // underlying parse/IO error, if any
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("gridgraph: load %s: %s", e.Kind, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is match a LoadError against the sentinel of its kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrFormat:
		return e.Kind == KindFormat
	case ErrOutOfRange:
		return e.Kind == KindOutOfRange
	case ErrBlockedEndpoint:
		return e.Kind == KindBlockedEndpoint
	}

	return false
}

func formatErr(err error, format string, args ...any) *LoadError {
	return &LoadError{Kind: KindFormat, Detail: fmt.Sprintf(format, args...), Err: err}
}

// Cell is the occupancy state of a single grid cell.
type Cell int

const (
	// Path is a walkable cell (input value 0).
	Path Cell = iota
	// Wall is a blocked cell (any nonzero input value).
	Wall
)

// String returns "path" or "wall".
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}

	return "path"
}

// Coord is a (row, column) position in the grid.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(r,c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rectangular occupancy matrix with a start and a goal cell.
// It is immutable once built: NewGrid deep-copies its input.
// Start and Goal are guaranteed to be in bounds and walkable.
type Grid struct {
	rows, cols int
	cells      [][]Cell
	start      Coord
	goal       Coord
}
