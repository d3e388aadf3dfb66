// Package config loads the pokereval HCL configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokereval/equity"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "pokereval.hcl"

// Config is the complete CLI configuration.
type Config struct {
	Defaults EvalDefaults
	Log      LogSettings
}

// file is the on-disk shape; both blocks are optional.
type file struct {
	Defaults *fileDefaults `hcl:"defaults,block"`
	Log      *LogSettings  `hcl:"log,block"`
}

// fileDefaults mirrors EvalDefaults; a nil Iterations means the attribute was
// absent, so an explicit 0 survives.
type fileDefaults struct {
	Game        string `hcl:"game,optional"`
	Iterations  *int   `hcl:"iterations,optional"`
	Mode        string `hcl:"mode,optional"`
	Workers     int    `hcl:"workers,optional"`
	TimeLimit   string `hcl:"time_limit,optional"`
	FillPockets bool   `hcl:"fill_pockets,optional"`
}

// EvalDefaults are applied to evaluations unless overridden by flags.
type EvalDefaults struct {
	Game        string
	Iterations  int
	Mode        string
	Workers     int
	TimeLimit   string
	FillPockets bool
}

// LogSettings configures logging output.
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: EvalDefaults{
			Game:       "holdem",
			Iterations: 100000,
			Mode:       "auto",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(hclFile.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}

	def := Default()
	cfg := *def
	if d := raw.Defaults; d != nil {
		cfg.Defaults = EvalDefaults{
			Game:        d.Game,
			Iterations:  def.Defaults.Iterations,
			Mode:        d.Mode,
			Workers:     d.Workers,
			TimeLimit:   d.TimeLimit,
			FillPockets: d.FillPockets,
		}
		if d.Iterations != nil {
			cfg.Defaults.Iterations = *d.Iterations
		}
	}
	if raw.Log != nil {
		cfg.Log = *raw.Log
	}
	if cfg.Defaults.Game == "" {
		cfg.Defaults.Game = def.Defaults.Game
	}
	if cfg.Defaults.Mode == "" {
		cfg.Defaults.Mode = def.Defaults.Mode
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := equity.LookupGame(c.Defaults.Game); err != nil {
		return err
	}
	if c.Defaults.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative: %d", c.Defaults.Iterations)
	}
	if _, err := equity.ParseMode(c.Defaults.Mode); err != nil {
		return err
	}
	if c.Defaults.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Defaults.Workers)
	}
	if _, err := c.Defaults.Limit(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// Limit parses the time limit; zero means none.
func (d EvalDefaults) Limit() (time.Duration, error) {
	if d.TimeLimit == "" {
		return 0, nil
	}
	limit, err := time.ParseDuration(d.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("invalid time_limit %q: %w", d.TimeLimit, err)
	}
	if limit < 0 {
		return 0, fmt.Errorf("time_limit must not be negative: %s", limit)
	}
	return limit, nil
}
