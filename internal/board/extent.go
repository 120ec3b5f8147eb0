package board

import (
	"fmt"

	"github.com/lox/hexboard/internal/coord"
)

// Board sizes, packed as (height << 8) | width.
const (
	// DefaultSize is the large board for up to four players.
	DefaultSize = 0x1014

	// DefaultSize6Player is the large board for five or six players.
	DefaultSize6Player = 0x1016

	maxDimension = 0xFE
)

// SizeFor returns the board size used for a game with maxPlayers seats.
func SizeFor(maxPlayers int) int {
	if maxPlayers > 4 {
		return DefaultSize6Player
	}
	return DefaultSize
}

// ComputeSize derives the coordinate bounds for a packed board size.
// spaceSize is the length of an array indexed directly by any on-board
// coordinate.
func ComputeSize(size int) (maxRow, maxCol, spaceSize int) {
	maxRow = size >> 8
	maxCol = size & 0xFF
	spaceSize = int(coord.Encode(maxRow, maxCol)) + 1
	return maxRow, maxCol, spaceSize
}

// Extent is the bounds of one board. It is fixed when the board is built
// and passed by value to every bounds-checked query.
type Extent struct {
	height int
	width  int
}

// NewExtent validates a packed board size and returns its extent.
// Height must be even so the bottom row is a node row.
func NewExtent(size int) (Extent, error) {
	if size < 0 {
		return Extent{}, fmt.Errorf("%w: 0x%x", ErrInvalidSize, size)
	}
	h, w := size>>8, size&0xFF
	if h < 2 || h > maxDimension || h%2 != 0 {
		return Extent{}, fmt.Errorf("%w: height %d must be even and between 2 and %d", ErrInvalidSize, h, maxDimension)
	}
	if w < 2 || w > maxDimension {
		return Extent{}, fmt.Errorf("%w: width %d must be between 2 and %d", ErrInvalidSize, w, maxDimension)
	}
	return Extent{height: h, width: w}, nil
}

// MustExtent is like NewExtent but panics on error.
func MustExtent(size int) Extent {
	e, err := NewExtent(size)
	if err != nil {
		panic(err)
	}
	return e
}

// DefaultExtent returns the extent for a game with maxPlayers seats.
func DefaultExtent(maxPlayers int) Extent {
	return MustExtent(SizeFor(maxPlayers))
}

func (e Extent) Height() int { return e.height }
func (e Extent) Width() int { return e.width }

// MaxRow is the last node row.
func (e Extent) MaxRow() int { return e.height }

// MaxCol is the last node column.
func (e Extent) MaxCol() int { return e.width }

// Size returns the packed size the extent was built from.
func (e Extent) Size() int { return e.height<<8 | e.width }

// SpaceSize is the length of an array indexed by on-board coordinates.
func (e Extent) SpaceSize() int {
	_, _, n := ComputeSize(e.Size())
	return n
}

// ContainsRC reports whether (row, col) is inside the extent.
func (e Extent) ContainsRC(row, col int) bool {
	return row >= 0 && row <= e.height && col >= 0 && col <= e.width
}

// Contains reports whether c is inside the extent.
func (e Extent) Contains(c coord.Coord) bool {
	if c < 0 {
		return false
	}
	return e.ContainsRC(c.Decode())
}

// Check returns ErrOutOfBounds for the first coordinate outside the extent.
func (e Extent) Check(cs ...coord.Coord) error {
	for _, c := range cs {
		if !e.Contains(c) {
			return fmt.Errorf("%w: %s not within %dx%d board", ErrOutOfBounds, c, e.height, e.width)
		}
	}
	return nil
}

func (e Extent) String() string {
	return fmt.Sprintf("0x%04x", e.Size())
}
