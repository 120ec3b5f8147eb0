package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/coder/quartz"

	"github.com/lox/hexboard/internal/board"
	"github.com/lox/hexboard/internal/coord"
	"github.com/lox/hexboard/internal/verify"
)

// ExtentCmd prints the board bounds and how many of each position it has.
type ExtentCmd struct{}

func (c *ExtentCmd) Run(g *Globals) error {
	_, e, _, err := g.setup()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(g.out, 0, 0, 2, ' ', 0)
	printField(w, "size", coordStyle.Render(e.String()))
	printField(w, "max row", fmt.Sprint(e.MaxRow()))
	printField(w, "max col", fmt.Sprint(e.MaxCol()))
	printField(w, "space size", fmt.Sprint(e.SpaceSize()))
	printField(w, "nodes", fmt.Sprint(len(e.Nodes())))
	printField(w, "edges", fmt.Sprint(len(e.Edges())))
	printField(w, "hexes", fmt.Sprint(len(e.Hexes())))
	return w.Flush()
}

// ClassifyCmd explains what a coordinate names.
type ClassifyCmd struct {
	Coord coordArg `arg:"" help:"Coordinate, e.g. 0x505"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	_, e, _, err := g.setup()
	if err != nil {
		return err
	}

	at := c.Coord.Coord()
	row, col := at.Decode()

	w := tabwriter.NewWriter(g.out, 0, 0, 2, ' ', 0)
	printField(w, "coord", coordStyle.Render(at.String()))
	printField(w, "row", fmt.Sprint(row))
	printField(w, "col", fmt.Sprint(col))
	printField(w, "on board", fmt.Sprint(e.Contains(at)))

	switch {
	case row%2 == 0:
		o := board.Classify(at)
		printField(w, "node", board.Shape(at).String())
		printField(w, "edge", glyphStyle.Render(o.String())+" "+o.Name())
	case board.IsHex(at):
		printField(w, "hex", fmt.Sprint(e.HexOnBoard(at)))
	default:
		printField(w, "edge", glyphStyle.Render(board.Vertical.String())+" "+board.Vertical.Name())
	}
	return w.Flush()
}

// EndpointsCmd prints the nodes at either end of an edge.
type EndpointsCmd struct {
	Edge coordArg `arg:"" help:"Edge coordinate"`
}

func (c *EndpointsCmd) Run(g *Globals) error {
	_, e, _, err := g.setup()
	if err != nil {
		return err
	}

	edge := c.Edge.Coord()
	if !e.EdgeOnBoard(edge) {
		return fmt.Errorf("%w: edge %s", board.ErrOutOfBounds, edge)
	}
	lo, hi := board.AdjacentNodes(edge)
	fmt.Fprintf(g.out, "%s %s %s\n",
		coordStyle.Render(edge.String()),
		glyphStyle.Render(board.Classify(edge).String()),
		formatCoords([]coord.Coord{lo, hi}))
	return nil
}

// IncidentCmd prints the edges touching a node.
type IncidentCmd struct {
	Node coordArg `arg:"" help:"Node coordinate"`
}

func (c *IncidentCmd) Run(g *Globals) error {
	_, e, _, err := g.setup()
	if err != nil {
		return err
	}

	edges, err := e.IncidentEdges(c.Node.Coord())
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, formatCoords(edges))
	return nil
}

// CommonCmd prints the node two adjacent edges share.
type CommonCmd struct {
	EdgeA coordArg `arg:"" help:"First edge"`
	EdgeB coordArg `arg:"" help:"Second edge"`
}

func (c *CommonCmd) Run(g *Globals) error {
	_, e, logger, err := g.setup()
	if err != nil {
		return err
	}

	a, b := c.EdgeA.Coord(), c.EdgeB.Coord()
	node, err := e.CommonNode(a, b)
	if errors.Is(err, board.ErrNotAdjacent) {
		logger.Debug("Edges not adjacent", "a", a, "b", b)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, coordStyle.Render(node.String()))
	return nil
}

// NeighborsCmd prints the edges sharing one node with an edge.
type NeighborsCmd struct {
	Edge coordArg `arg:"" help:"Edge coordinate"`
}

func (c *NeighborsCmd) Run(g *Globals) error {
	_, e, _, err := g.setup()
	if err != nil {
		return err
	}

	edges, err := e.AdjacentEdgesToEdge(c.Edge.Coord())
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, formatCoords(edges))
	return nil
}

// HexCmd prints a hex's corners and sides.
type HexCmd struct {
	Hex coordArg `arg:"" help:"Hex coordinate"`
}

func (c *HexCmd) Run(g *Globals) error {
	_, e, _, err := g.setup()
	if err != nil {
		return err
	}

	hex := c.Hex.Coord()
	nodes, err := e.HexNodes(hex)
	if err != nil {
		return err
	}
	edges, err := e.HexEdges(hex)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(g.out, 0, 0, 2, ' ', 0)
	printField(w, "nodes", formatCoords(nodes[:]))
	printField(w, "edges", formatCoords(edges[:]))
	return w.Flush()
}

// VerifyCmd runs the property sweep.
type VerifyCmd struct {
	Workers int    `help:"Worker goroutines (overrides config)"`
	Samples int    `help:"Random edge pairs to test (overrides config)"`
	Seed    *int64 `help:"Sampling seed (overrides config)"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	cfg, e, logger, err := g.setup()
	if err != nil {
		return err
	}

	opts := verify.Options{
		Workers: cfg.Verify.Workers,
		Samples: cfg.Verify.Samples,
		Seed:    cfg.Verify.Seed,
		Clock:   quartz.NewReal(),
		Logger:  logger,
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	if c.Samples > 0 {
		opts.Samples = c.Samples
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := verify.Run(ctx, e, opts)
	if err != nil {
		return err
	}
	return printReport(g, report)
}

func printReport(g *Globals, report *verify.Report) error {
	w := tabwriter.NewWriter(g.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("property"), labelStyle.Render("checks"))
	for _, p := range verify.Properties {
		fmt.Fprintf(w, "%s\t%d\n", p, report.Checks[p])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, f := range report.Failures {
		fmt.Fprintln(g.out, failStyle.Render(f.String()))
	}
	if report.Dropped > 0 {
		fmt.Fprintf(g.out, "%s\n", failStyle.Render(fmt.Sprintf("... and %d more", report.Dropped)))
	}

	fmt.Fprintf(g.out, "\n%d checks on %s board in %v\n", report.Total(), report.Extent, report.Elapsed)
	if !report.OK() {
		return fmt.Errorf("%d properties violated", len(report.Failures)+report.Dropped)
	}
	fmt.Fprintln(g.out, okStyle.Render("ok"))
	return nil
}
