package board

import "github.com/lox/hexboard/internal/coord"

// NodeShape tells which way a node's vertical edge goes.
type NodeShape int

const (
	// NodeUp nodes are the top vertex of the hex below them; their
	// vertical edge runs up.
	NodeUp NodeShape = iota
	// NodeDown nodes are the bottom vertex of the hex above them; their
	// vertical edge runs down.
	NodeDown
)

func (s NodeShape) String() string {
	if s == NodeUp {
		return "up"
	}
	return "down"
}

// isUpperNode reports whether node (r, c) heads the hex at (r+1, c).
func isUpperNode(r, c int) bool {
	return c&1 == (r>>1)&1
}

// Shape returns the shape of a node coordinate.
func Shape(node coord.Coord) NodeShape {
	if isUpperNode(node.Decode()) {
		return NodeUp
	}
	return NodeDown
}

// verticalRC returns the node's vertical edge and the node at its far end.
func verticalRC(r, c int) (edgeRow, farRow int) {
	if isUpperNode(r, c) {
		return r - 1, r - 2
	}
	return r + 1, r + 2
}

// IncidentEdges returns the edges touching a node: the diagonal to the
// left, the diagonal to the right and the node's one vertical edge. The
// other odd-row position next to a node is a hex, not an edge. No bounds
// checking is done.
func IncidentEdges(node coord.Coord) []coord.Coord {
	r, c := node.Decode()
	vr, _ := verticalRC(r, c)
	return []coord.Coord{
		coord.Encode(r, c-1),
		coord.Encode(r, c),
		coord.Encode(vr, c),
	}
}

// IncidentEdges returns the on-board edges touching node. Nodes on the
// rim of the board have fewer than three.
func (e Extent) IncidentEdges(node coord.Coord) ([]coord.Coord, error) {
	if err := e.Check(node); err != nil {
		return nil, err
	}
	r, c := node.Decode()
	vr, _ := verticalRC(r, c)
	edges := make([]coord.Coord, 0, 3)
	for _, rc := range [3][2]int{{r, c - 1}, {r, c}, {vr, c}} {
		if e.edgeOnBoardRC(rc[0], rc[1]) {
			edges = append(edges, coord.Encode(rc[0], rc[1]))
		}
	}
	return edges, nil
}

// AdjacentNodesToNode returns the nodes one edge away from node. No bounds
// checking is done.
func AdjacentNodesToNode(node coord.Coord) []coord.Coord {
	r, c := node.Decode()
	_, fr := verticalRC(r, c)
	return []coord.Coord{
		coord.Encode(r, c-1),
		coord.Encode(r, c+1),
		coord.Encode(fr, c),
	}
}

// AdjacentNodesToNode returns the on-board nodes one edge away from node.
func (e Extent) AdjacentNodesToNode(node coord.Coord) ([]coord.Coord, error) {
	if err := e.Check(node); err != nil {
		return nil, err
	}
	r, c := node.Decode()
	_, fr := verticalRC(r, c)
	nodes := make([]coord.Coord, 0, 3)
	for _, rc := range [3][2]int{{r, c - 1}, {r, c + 1}, {fr, c}} {
		if e.ContainsRC(rc[0], rc[1]) {
			nodes = append(nodes, coord.Encode(rc[0], rc[1]))
		}
	}
	return nodes, nil
}

// Nodes lists every node on the board in ascending order.
func (e Extent) Nodes() []coord.Coord {
	var nodes []coord.Coord
	for r := 0; r <= e.height; r += 2 {
		for c := 0; c <= e.width; c++ {
			nodes = append(nodes, coord.Encode(r, c))
		}
	}
	return nodes
}
