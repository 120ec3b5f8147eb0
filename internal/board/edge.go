package board

import "github.com/lox/hexboard/internal/coord"

// Orientation is the direction an edge runs in.
type Orientation int

const (
	Vertical   Orientation = iota // "|", odd row
	DiagonalNE                    // "/", even row, rising to the right
	DiagonalSE                    // "\", even row, falling to the right
)

// String returns the edge's glyph.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "|"
	case DiagonalNE:
		return "/"
	case DiagonalSE:
		return "\\"
	default:
		return "?"
	}
}

// Name returns a word for the orientation, for logs and JSON.
func (o Orientation) Name() string {
	switch o {
	case Vertical:
		return "vertical"
	case DiagonalNE:
		return "northeast"
	case DiagonalSE:
		return "southeast"
	default:
		return "unknown"
	}
}

// IsDiagonal reports whether the edge joins two nodes in the same row.
func (o Orientation) IsDiagonal() bool {
	return o == DiagonalNE || o == DiagonalSE
}

// Classify returns the orientation of an edge coordinate.
// The slant only affects drawing; both diagonals connect (r,c) to (r,c+1).
func Classify(edge coord.Coord) Orientation {
	r, c := edge.Decode()
	if r&1 == 1 {
		return Vertical
	}
	// The left endpoint is the upper one when it heads a hex below.
	if isUpperNode(r, c) {
		return DiagonalSE
	}
	return DiagonalNE
}

// Endpoints returns the two nodes at the ends of an edge, lower coordinate
// first. No bounds checking is done.
func Endpoints(edge coord.Coord) [2]coord.Coord {
	r1, c1, r2, c2 := endpointsRC(edge.Decode())
	return [2]coord.Coord{coord.Encode(r1, c1), coord.Encode(r2, c2)}
}

func endpointsRC(r, c int) (r1, c1, r2, c2 int) {
	if r&1 == 1 {
		return r - 1, c, r + 1, c
	}
	return r, c, r, c + 1
}

// EdgeOnBoard reports whether both ends of edge are inside the extent.
// Odd-row hex coordinates are not edges and report false.
func (e Extent) EdgeOnBoard(edge coord.Coord) bool {
	if edge < 0 {
		return false
	}
	r, c := edge.Decode()
	return e.edgeOnBoardRC(r, c)
}

func (e Extent) edgeOnBoardRC(r, c int) bool {
	if r&1 == 1 && isHexRC(r, c) {
		return false
	}
	r1, c1, r2, c2 := endpointsRC(r, c)
	return e.ContainsRC(r1, c1) && e.ContainsRC(r2, c2)
}

// Edges lists every edge on the board in ascending order.
func (e Extent) Edges() []coord.Coord {
	var edges []coord.Coord
	for r := 0; r <= e.height; r++ {
		for c := 0; c <= e.width; c++ {
			if e.edgeOnBoardRC(r, c) {
				edges = append(edges, coord.Encode(r, c))
			}
		}
	}
	return edges
}
