// Package config loads the hexboard HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hexboard/internal/board"
	"github.com/lox/hexboard/internal/coord"
)

// Config is the complete hexboard configuration.
type Config struct {
	Board  *BoardSettings  `hcl:"board,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Verify *VerifySettings `hcl:"verify,block"`
}

// BoardSettings chooses the board extent. Size, when set, overrides the
// size derived from MaxPlayers.
type BoardSettings struct {
	MaxPlayers int    `hcl:"max_players,optional"`
	Size       string `hcl:"size,optional"`
}

// LogSettings configures the charmbracelet logger.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// VerifySettings tunes the property sweep.
type VerifySettings struct {
	Workers int   `hcl:"workers,optional"`
	Samples int   `hcl:"samples,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Board: &BoardSettings{
			MaxPlayers: 4,
		},
		Log: &LogSettings{
			Level: "info",
		},
		Verify: &VerifySettings{
			Workers: 4,
			Samples: 20000,
			Seed:    1,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; missing blocks and attributes are filled from them.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Board == nil {
		c.Board = def.Board
	}
	if c.Board.MaxPlayers == 0 {
		c.Board.MaxPlayers = def.Board.MaxPlayers
	}

	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}

	if c.Verify == nil {
		c.Verify = def.Verify
	}
	if c.Verify.Workers == 0 {
		c.Verify.Workers = def.Verify.Workers
	}
	if c.Verify.Samples == 0 {
		c.Verify.Samples = def.Verify.Samples
	}
}

// Validate checks the configuration for values the tools cannot use.
func (c *Config) Validate() error {
	if c.Board.MaxPlayers < 2 || c.Board.MaxPlayers > 6 {
		return fmt.Errorf("board: max players must be between 2 and 6, got %d", c.Board.MaxPlayers)
	}
	if _, err := c.Extent(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Verify.Workers < 1 {
		return fmt.Errorf("verify: workers must be positive, got %d", c.Verify.Workers)
	}
	if c.Verify.Samples < 0 {
		return fmt.Errorf("verify: samples cannot be negative, got %d", c.Verify.Samples)
	}
	return nil
}

// BoardSize returns the packed board size: the explicit size if set,
// otherwise the default for the player count.
func (c *Config) BoardSize() (int, error) {
	if c.Board.Size == "" {
		return board.SizeFor(c.Board.MaxPlayers), nil
	}
	size, err := coord.Parse(c.Board.Size)
	if err != nil {
		return 0, fmt.Errorf("invalid size: %w", err)
	}
	return int(size), nil
}

// Extent builds the board extent described by the configuration.
func (c *Config) Extent() (board.Extent, error) {
	size, err := c.BoardSize()
	if err != nil {
		return board.Extent{}, err
	}
	return board.NewExtent(size)
}
