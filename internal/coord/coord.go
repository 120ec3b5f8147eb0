// Package coord packs board positions into single integers.
//
// A coordinate is (row << 8) | column. The same packing names hexes, edges
// and nodes; which one a value means depends on the caller. See package
// board for the geometry built on top of it.
package coord

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is a packed (row, column) board coordinate.
type Coord int

const (
	rowShift = 8
	colMask  = 0xFF
)

// Encode packs row and col. No bounds checking is done here; use
// board.Extent for that.
func Encode(row, col int) Coord {
	return Coord(row<<rowShift | col)
}

// Decode unpacks c into its row and column.
func Decode(c Coord) (row, col int) {
	return c.Decode()
}

// Decode unpacks the coordinate. Bits above the column byte all belong to
// the row.
func (c Coord) Decode() (row, col int) {
	return int(c) >> rowShift, int(c) & colMask
}

// Row returns the row half of the coordinate.
func (c Coord) Row() int {
	return int(c) >> rowShift
}

// Col returns the column half of the coordinate.
func (c Coord) Col() int {
	return int(c) & colMask
}

// String returns the coordinate in hex, e.g. "0x505".
func (c Coord) String() string {
	if c < 0 {
		return "-0x" + strconv.FormatInt(-int64(c), 16)
	}
	return "0x" + strconv.FormatInt(int64(c), 16)
}

// Parse reads a coordinate written in hex, with or without a 0x prefix.
func Parse(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return 0, fmt.Errorf("invalid coordinate %q: no digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return Coord(v), nil
}

// MustParse is like Parse but panics on error (for tests and tables).
func MustParse(s string) Coord {
	c, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse coordinate '%s': %v", s, err))
	}
	return c
}

// Sort orders a pair so the smaller coordinate comes first.
func Sort(a, b Coord) (Coord, Coord) {
	if b < a {
		return b, a
	}
	return a, b
}
