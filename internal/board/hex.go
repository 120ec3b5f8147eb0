package board

import (
	"fmt"

	"github.com/lox/hexboard/internal/coord"
)

// IsHex reports whether c names a hex rather than a vertical edge.
// Hexes sit on odd rows: even columns in rows 1, 5, 9..., odd columns in
// rows 3, 7, 11...
func IsHex(c coord.Coord) bool {
	return isHexRC(c.Decode())
}

func isHexRC(r, c int) bool {
	return r&1 == 1 && c&1 == (r>>1)&1
}

// HexNodes returns the six corners of a hex, clockwise from the top.
func HexNodes(hex coord.Coord) [6]coord.Coord {
	r, c := hex.Decode()
	return [6]coord.Coord{
		coord.Encode(r-1, c),
		coord.Encode(r-1, c+1),
		coord.Encode(r+1, c+1),
		coord.Encode(r+1, c),
		coord.Encode(r+1, c-1),
		coord.Encode(r-1, c-1),
	}
}

// HexEdges returns the six sides of a hex, clockwise from the upper right.
func HexEdges(hex coord.Coord) [6]coord.Coord {
	r, c := hex.Decode()
	return [6]coord.Coord{
		coord.Encode(r-1, c),
		coord.Encode(r, c+1),
		coord.Encode(r+1, c),
		coord.Encode(r+1, c-1),
		coord.Encode(r, c-1),
		coord.Encode(r-1, c-1),
	}
}

// NodeHexes returns the hexes that have node as a corner. No bounds
// checking is done.
func NodeHexes(node coord.Coord) []coord.Coord {
	r, c := node.Decode()
	if isUpperNode(r, c) {
		return []coord.Coord{
			coord.Encode(r-1, c-1),
			coord.Encode(r-1, c+1),
			coord.Encode(r+1, c),
		}
	}
	return []coord.Coord{
		coord.Encode(r-1, c),
		coord.Encode(r+1, c-1),
		coord.Encode(r+1, c+1),
	}
}

// HexOnBoard reports whether hex is a hex with all six corners inside the
// extent.
func (e Extent) HexOnBoard(hex coord.Coord) bool {
	if hex < 0 {
		return false
	}
	return e.hexOnBoardRC(hex.Decode())
}

func (e Extent) hexOnBoardRC(r, c int) bool {
	return isHexRC(r, c) && r >= 1 && r <= e.height-1 && c >= 1 && c <= e.width-1
}

// NodeHexes returns the on-board hexes that have node as a corner.
func (e Extent) NodeHexes(node coord.Coord) ([]coord.Coord, error) {
	if err := e.Check(node); err != nil {
		return nil, err
	}
	var hexes []coord.Coord
	for _, h := range NodeHexes(node) {
		if h >= 0 && e.hexOnBoardRC(h.Decode()) {
			hexes = append(hexes, h)
		}
	}
	return hexes, nil
}

// HexNodes is HexNodes for a hex checked against the extent.
func (e Extent) HexNodes(hex coord.Coord) ([6]coord.Coord, error) {
	if !e.HexOnBoard(hex) {
		return [6]coord.Coord{}, fmt.Errorf("%w: hex %s not on %dx%d board", ErrOutOfBounds, hex, e.height, e.width)
	}
	return HexNodes(hex), nil
}

// HexEdges is HexEdges for a hex checked against the extent.
func (e Extent) HexEdges(hex coord.Coord) ([6]coord.Coord, error) {
	if !e.HexOnBoard(hex) {
		return [6]coord.Coord{}, fmt.Errorf("%w: hex %s not on %dx%d board", ErrOutOfBounds, hex, e.height, e.width)
	}
	return HexEdges(hex), nil
}

// Hexes lists every hex on the board in ascending order.
func (e Extent) Hexes() []coord.Coord {
	var hexes []coord.Coord
	for r := 1; r < e.height; r += 2 {
		for c := 1; c < e.width; c++ {
			if isHexRC(r, c) {
				hexes = append(hexes, coord.Encode(r, c))
			}
		}
	}
	return hexes
}
