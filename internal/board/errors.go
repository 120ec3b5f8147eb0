package board

import "errors"

var (
	// ErrNotAdjacent is returned when two edges do not share exactly one
	// node, or two nodes are not joined by an edge.
	ErrNotAdjacent = errors.New("board: not adjacent")

	// ErrOutOfBounds is returned when a coordinate, or one derived from it,
	// lies outside the board extent.
	ErrOutOfBounds = errors.New("board: out of bounds")

	// ErrInvalidSize is returned by NewExtent for unusable board sizes.
	ErrInvalidSize = errors.New("board: invalid size")
)
