package gridgraph

import "errors"

// ErrComponentIndex indicates a requested coordinate does not belong to any
// walkable component (it is a wall or out of range).
var ErrComponentIndex = errors.New("gridgraph: coordinate is not part of any component")
