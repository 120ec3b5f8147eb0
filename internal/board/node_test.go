package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hexboard/internal/coord"
)

func TestShape(t *testing.T) {
	assert.Equal(t, NodeDown, Shape(0x405))
	assert.Equal(t, NodeUp, Shape(0x408))
	assert.Equal(t, NodeUp, Shape(0x605))
	assert.Equal(t, NodeUp, Shape(0x000))
	assert.Equal(t, NodeDown, Shape(0x001))
	assert.Equal(t, "up", NodeUp.String())
	assert.Equal(t, "down", NodeDown.String())
}

func TestIncidentEdges(t *testing.T) {
	tests := []struct {
		node     coord.Coord
		expected []coord.Coord
	}{
		{0x405, []coord.Coord{0x404, 0x405, 0x505}},
		{0x408, []coord.Coord{0x407, 0x408, 0x308}},
		{0x605, []coord.Coord{0x604, 0x605, 0x505}},
		{0x206, []coord.Coord{0x205, 0x206, 0x306}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IncidentEdges(tt.node), "IncidentEdges(%s)", tt.node)
	}
}

func TestIncidentEdgesBoundary(t *testing.T) {
	e := DefaultExtent(4)

	tests := []struct {
		name     string
		node     coord.Coord
		expected []coord.Coord
	}{
		{name: "top left corner", node: 0x000, expected: []coord.Coord{0x000}},
		{name: "top row", node: 0x001, expected: []coord.Coord{0x000, 0x001, 0x101}},
		{name: "bottom right corner", node: 0x1014, expected: []coord.Coord{0x1013, 0x0f14}},
		{name: "interior", node: 0x405, expected: []coord.Coord{0x404, 0x405, 0x505}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.IncidentEdges(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := e.IncidentEdges(0x1100)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = e.IncidentEdges(0x1015)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestIncidentEdgesTouchNode(t *testing.T) {
	e := DefaultExtent(6)
	for _, node := range e.Nodes() {
		edges, err := e.IncidentEdges(node)
		require.NoError(t, err)
		require.NotEmpty(t, edges, "node %s", node)
		require.LessOrEqual(t, len(edges), 3)

		for _, edge := range edges {
			ends := Endpoints(edge)
			require.Contains(t, ends[:], node, "edge %s of node %s", edge, node)
		}
	}
}

func TestAdjacentNodesToNode(t *testing.T) {
	assert.Equal(t, []coord.Coord{0x404, 0x406, 0x605}, AdjacentNodesToNode(0x405))
	assert.Equal(t, []coord.Coord{0x407, 0x409, 0x208}, AdjacentNodesToNode(0x408))

	e := DefaultExtent(4)
	nodes, err := e.AdjacentNodesToNode(0x000)
	require.NoError(t, err)
	assert.Equal(t, []coord.Coord{0x001}, nodes)

	_, err = e.AdjacentNodesToNode(0x1200)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	for _, node := range e.Nodes() {
		neighbours, err := e.AdjacentNodesToNode(node)
		require.NoError(t, err)
		for _, n := range neighbours {
			_, err := EdgeBetweenNodes(node, n)
			require.NoError(t, err, "%s to %s", node, n)
		}
	}
}

func TestNodesCount(t *testing.T) {
	assert.Len(t, DefaultExtent(4).Nodes(), 9*21)
	assert.Len(t, DefaultExtent(6).Nodes(), 9*23)
}
