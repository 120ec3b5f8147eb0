package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/hexboard/internal/board"
	"github.com/lox/hexboard/internal/config"
	"github.com/lox/hexboard/internal/coord"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config  string `help:"Path to HCL config file" default:"hexboard.hcl" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable coloured output"`
	Players int    `short:"p" help:"Number of players, picks the default board size (overrides config)"`
	Size    string `help:"Packed board size as (height<<8)|width, e.g. 0x1014 (overrides config and --players)"`

	out io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Extent    ExtentCmd        `cmd:"" help:"Show the board bounds"`
	Classify  ClassifyCmd      `cmd:"" help:"Describe what a coordinate names"`
	Endpoints EndpointsCmd     `cmd:"" help:"Show the two nodes at the ends of an edge"`
	Incident  IncidentCmd      `cmd:"" help:"Show the edges touching a node"`
	Common    CommonCmd        `cmd:"" help:"Show the node shared by two adjacent edges"`
	Neighbors NeighborsCmd     `cmd:"" help:"Show the edges adjacent to an edge"`
	Hex       HexCmd           `cmd:"" help:"Show the corners and sides of a hex"`
	Verify    VerifyCmd        `cmd:"" help:"Check the geometry's contracts across the whole board"`
	Dump      DumpCmd          `cmd:"" help:"Write the full adjacency table as JSON"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hexboard"),
		kong.Description("Coordinate geometry for the large hex board"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	cli.Globals.out = os.Stdout
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads configuration, applies flag overrides and builds the logger
// and board extent every command works against.
func (g *Globals) setup() (*config.Config, board.Extent, *log.Logger, error) {
	if g.out == nil {
		g.out = os.Stdout
	}
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, board.Extent{}, nil, err
	}
	if g.Players != 0 {
		cfg.Board.MaxPlayers = g.Players
	}
	if g.Size != "" {
		cfg.Board.Size = g.Size
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, board.Extent{}, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, board.Extent{}, nil, err
	}

	e, err := cfg.Extent()
	if err != nil {
		return nil, board.Extent{}, nil, err
	}
	logger.Debug("Board ready", "size", e, "max_row", e.MaxRow(), "max_col", e.MaxCol())
	return cfg, e, logger, nil
}

func newLogger(settings *config.LogSettings) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	if settings.File != "" {
		f, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "hexboard",
	}), nil
}

// coordArg lets kong parse hex coordinates such as 0x505 directly.
type coordArg coord.Coord

func (c *coordArg) Decode(ctx *kong.DecodeContext) error {
	var s string
	if err := ctx.Scan.PopValueInto("coordinate", &s); err != nil {
		return err
	}
	v, err := coord.Parse(s)
	if err != nil {
		return err
	}
	*c = coordArg(v)
	return nil
}

func (c coordArg) Coord() coord.Coord {
	return coord.Coord(c)
}
