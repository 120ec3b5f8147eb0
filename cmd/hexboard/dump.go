package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lox/hexboard/internal/board"
	"github.com/lox/hexboard/internal/coord"
	"github.com/lox/hexboard/internal/fileutil"
)

// DumpCmd writes every edge, node and hex with its neighbours so other
// tools can use the geometry without linking this module.
type DumpCmd struct {
	Out    string `short:"o" help:"Output file" default:"adjacency.json" type:"path"`
	Indent bool   `help:"Indent the JSON output"`
}

type adjacencyTable struct {
	Size      int         `json:"size"`
	MaxRow    int         `json:"max_row"`
	MaxCol    int         `json:"max_col"`
	SpaceSize int         `json:"space_size"`
	Edges     []edgeEntry `json:"edges"`
	Nodes     []nodeEntry `json:"nodes"`
	Hexes     []hexEntry  `json:"hexes"`
}

type edgeEntry struct {
	Edge        coord.Coord    `json:"edge"`
	Orientation string         `json:"orientation"`
	Nodes       [2]coord.Coord `json:"nodes"`
	Adjacent    []coord.Coord  `json:"adjacent_edges"`
}

type nodeEntry struct {
	Node  coord.Coord   `json:"node"`
	Shape string        `json:"shape"`
	Edges []coord.Coord `json:"edges"`
	Nodes []coord.Coord `json:"nodes"`
	Hexes []coord.Coord `json:"hexes"`
}

type hexEntry struct {
	Hex   coord.Coord    `json:"hex"`
	Nodes [6]coord.Coord `json:"nodes"`
	Edges [6]coord.Coord `json:"edges"`
}

func (c *DumpCmd) Run(g *Globals) error {
	_, e, logger, err := g.setup()
	if err != nil {
		return err
	}

	table, err := buildTable(e)
	if err != nil {
		return err
	}

	err = fileutil.WriteAtomic(c.Out, 0644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		if c.Indent {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(table)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}

	logger.Info("Wrote adjacency table",
		"file", c.Out,
		"edges", len(table.Edges),
		"nodes", len(table.Nodes),
		"hexes", len(table.Hexes))
	return nil
}

func buildTable(e board.Extent) (*adjacencyTable, error) {
	table := &adjacencyTable{
		Size:      e.Size(),
		MaxRow:    e.MaxRow(),
		MaxCol:    e.MaxCol(),
		SpaceSize: e.SpaceSize(),
	}

	for _, edge := range e.Edges() {
		adjacent, err := e.AdjacentEdgesToEdge(edge)
		if err != nil {
			return nil, err
		}
		table.Edges = append(table.Edges, edgeEntry{
			Edge:        edge,
			Orientation: board.Classify(edge).Name(),
			Nodes:       board.Endpoints(edge),
			Adjacent:    adjacent,
		})
	}

	for _, node := range e.Nodes() {
		edges, err := e.IncidentEdges(node)
		if err != nil {
			return nil, err
		}
		nodes, err := e.AdjacentNodesToNode(node)
		if err != nil {
			return nil, err
		}
		hexes, err := e.NodeHexes(node)
		if err != nil {
			return nil, err
		}
		table.Nodes = append(table.Nodes, nodeEntry{
			Node:  node,
			Shape: board.Shape(node).String(),
			Edges: edges,
			Nodes: nodes,
			Hexes: hexes,
		})
	}

	for _, hex := range e.Hexes() {
		table.Hexes = append(table.Hexes, hexEntry{
			Hex:   hex,
			Nodes: board.HexNodes(hex),
			Edges: board.HexEdges(hex),
		})
	}

	return table, nil
}
