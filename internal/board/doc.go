// Package board implements the integer geometry of the large hex board.
//
// Hexes, edges and nodes share one packed coordinate space (see package
// coord). Nodes sit on even rows. An odd-row coordinate is either a hex or
// a vertical "|" edge, depending on column parity; an even-row coordinate
// doubles as the diagonal edge running right from the node with the same
// value.
//
// # Layout
//
// Node rows alternate between two phases. In rows 0, 4, 8... even columns
// are the top vertices of hexes below them; in rows 2, 6, 10... odd columns
// are. Such a node has its vertical edge above it (NodeUp), the other nodes
// have it below (NodeDown):
//
//	row 3:        |   (0x308, between hexes 0x307 and 0x309)
//	row 4:  0x407 / 0x408 \ 0x409
//	row 5:    |  (0x507)
//
// # Bounds
//
// The package-level functions are pure formulas and never look at bounds:
// they give the same answer for every board size. Extent wraps them with
// bounds checks for one concrete board and reports ErrOutOfBounds.
//
// All functions are safe for concurrent use; Extent is an immutable value.
package board
