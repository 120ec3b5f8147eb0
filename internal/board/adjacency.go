package board

import (
	"fmt"

	"github.com/lox/hexboard/internal/coord"
)

// AdjacentNodes returns the two nodes at the ends of edge, lower first.
func AdjacentNodes(edge coord.Coord) (coord.Coord, coord.Coord) {
	n := Endpoints(edge)
	return coord.Sort(n[0], n[1])
}

// CommonNode returns the node shared by two adjacent edges. The result does
// not depend on argument order. Edges with no node in common, and an edge
// paired with itself, return ErrNotAdjacent.
func CommonNode(edgeA, edgeB coord.Coord) (coord.Coord, error) {
	a := Endpoints(edgeA)
	b := Endpoints(edgeB)

	var shared []coord.Coord
	for _, na := range a {
		for _, nb := range b {
			if na == nb {
				shared = append(shared, na)
			}
		}
	}
	if len(shared) != 1 {
		return 0, fmt.Errorf("%w: edges %s and %s share %d nodes", ErrNotAdjacent, edgeA, edgeB, len(shared))
	}
	return shared[0], nil
}

// CommonNode is CommonNode with both edges checked against the extent.
func (e Extent) CommonNode(edgeA, edgeB coord.Coord) (coord.Coord, error) {
	for _, edge := range []coord.Coord{edgeA, edgeB} {
		if !e.EdgeOnBoard(edge) {
			return 0, fmt.Errorf("%w: edge %s not on %dx%d board", ErrOutOfBounds, edge, e.height, e.width)
		}
	}
	return CommonNode(edgeA, edgeB)
}

// EdgeBetweenNodes returns the edge joining two nodes, or ErrNotAdjacent
// when they are not one edge apart.
func EdgeBetweenNodes(nodeA, nodeB coord.Coord) (coord.Coord, error) {
	lo, hi := coord.Sort(nodeA, nodeB)
	lr, lc := lo.Decode()
	hr, hc := hi.Decode()

	switch {
	case lr == hr && hc == lc+1:
		return lo, nil
	case lc == hc && hr == lr+2 && isUpperNode(hr, hc):
		return coord.Encode(lr+1, lc), nil
	}
	return 0, fmt.Errorf("%w: nodes %s and %s", ErrNotAdjacent, nodeA, nodeB)
}

// AdjacentEdgesToEdge returns the edges sharing exactly one node with edge.
// No bounds checking is done.
func AdjacentEdgesToEdge(edge coord.Coord) []coord.Coord {
	var edges []coord.Coord
	for _, n := range Endpoints(edge) {
		for _, other := range IncidentEdges(n) {
			if other != edge {
				edges = append(edges, other)
			}
		}
	}
	return edges
}

// AdjacentEdgesToEdge returns the on-board edges sharing exactly one node
// with edge.
func (e Extent) AdjacentEdgesToEdge(edge coord.Coord) ([]coord.Coord, error) {
	if !e.EdgeOnBoard(edge) {
		return nil, fmt.Errorf("%w: edge %s not on %dx%d board", ErrOutOfBounds, edge, e.height, e.width)
	}
	var edges []coord.Coord
	for _, n := range Endpoints(edge) {
		incident, err := e.IncidentEdges(n)
		if err != nil {
			return nil, err
		}
		for _, other := range incident {
			if other != edge {
				edges = append(edges, other)
			}
		}
	}
	return edges, nil
}
