package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/lox/pokereval/cmd/pokereval/shared"
	"github.com/lox/pokereval/equity"
	"github.com/lox/pokereval/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command, plus the state built from them.
type Globals struct {
	Config    string `help:"Path to HCL configuration file" default:"${config_file}" type:"path"`
	Debug     bool   `help:"Enable debug logging"`
	LogFormat string `help:"Log format: console or json (defaults to the config file)"`
	Color     string `help:"Colorize output: auto, always or never" enum:"auto,always,never" default:"auto"`

	cfg    *config.Config
	logger zerolog.Logger
	out    io.Writer
}

func (g *Globals) setup() error {
	if err := shared.ConfigureColor(g.Color); err != nil {
		return err
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	format := cfg.Log.Format
	if g.LogFormat != "" {
		format = g.LogFormat
	}
	logger, err := shared.NewLogger(format, cfg.Log.Level, g.Debug)
	if err != nil {
		return err
	}
	g.cfg, g.logger, g.out = cfg, logger, os.Stdout
	return nil
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Compute showdown equity for a deal"`
	Best    BestCmd          `cmd:"" help:"Show the best five-card hand of a set of cards"`
	Batch   BatchCmd         `cmd:"" help:"Evaluate every scenario in a TOML file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokereval"),
		kong.Description("Poker hand evaluator and equity calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
			"games":       strings.Join(equity.Games(), ", "),
		},
	)
	ctx.FatalIfErrorf(cli.Globals.setup())
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
