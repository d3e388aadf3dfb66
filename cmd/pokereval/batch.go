package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lox/pokereval/cmd/pokereval/shared"
	"github.com/lox/pokereval/equity"
)

// BatchCmd evaluates the scenarios of a TOML file.
type BatchCmd struct {
	File   string `arg:"" name:"file" help:"TOML file with [[scenario]] tables" type:"existingfile"`
	JSON   bool   `help:"Print the results as JSON"`
	Output string `short:"o" help:"Write the results to a file instead of stdout" type:"path"`
}

type batchFile struct {
	Scenarios []batchScenario `toml:"scenario"`
}

type batchScenario struct {
	Name        string     `toml:"name"`
	Game        string     `toml:"game"`
	Board       []string   `toml:"board"`
	Pockets     [][]string `toml:"pockets"`
	Dead        []string   `toml:"dead"`
	Iterations  *int       `toml:"iterations"`
	Mode        string     `toml:"mode"`
	Seed        *int64     `toml:"seed"`
	FillPockets bool       `toml:"fill_pockets"`
}

type batchRun struct {
	Name   string         `json:"name"`
	Game   string         `json:"game"`
	Result *equity.Result `json:"result,omitempty"`
	Err    string         `json:"error,omitempty"`
}

func (cmd *BatchCmd) Run(g *Globals) error {
	scenarios, err := loadBatch(cmd.File)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandlerWithLogger(g.logger)
	defer stop()

	runs := make([]batchRun, 0, len(scenarios))
	failed := 0
	for i, sc := range scenarios {
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		req := equity.Request{
			Game:        sc.Game,
			Board:       sc.Board,
			Pockets:     sc.Pockets,
			Dead:        sc.Dead,
			Iterations:  g.cfg.Defaults.Iterations,
			FillPockets: sc.FillPockets,
		}
		if req.Game == "" {
			req.Game = g.cfg.Defaults.Game
		}
		if sc.Iterations != nil {
			req.Iterations = *sc.Iterations
		}

		run := batchRun{Name: sc.Name, Game: req.Game}
		res, err := evaluateScenario(ctx, g, sc, req)
		switch {
		case err != nil && ctx.Err() != nil:
			return err
		case err != nil:
			g.logger.Warn().Err(err).Str("scenario", sc.Name).Msg("Scenario failed")
			run.Err = err.Error()
			failed++
		default:
			run.Result = res
		}
		runs = append(runs, run)
	}

	err = emit(g.out, cmd.Output, func(w io.Writer) error {
		if cmd.JSON {
			return writeJSON(w, runs)
		}
		renderBatch(w, runs)
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(runs))
	}
	return nil
}

func evaluateScenario(ctx context.Context, g *Globals, sc batchScenario, req equity.Request) (*equity.Result, error) {
	modeName := sc.Mode
	if modeName == "" {
		modeName = g.cfg.Defaults.Mode
	}
	mode, err := equity.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	limit, err := g.cfg.Defaults.Limit()
	if err != nil {
		return nil, err
	}
	opts := []equity.Option{
		equity.WithLogger(g.logger.With().Str("scenario", sc.Name).Logger()),
		equity.WithMode(mode),
		equity.WithWorkers(g.cfg.Defaults.Workers),
		equity.WithTimeLimit(limit),
	}
	if sc.Seed != nil {
		opts = append(opts, equity.WithSeed(*sc.Seed))
	}
	return equity.New(opts...).Evaluate(ctx, req)
}

// loadBatch decodes a TOML batch file.
func loadBatch(path string) ([]batchScenario, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var f batchFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios found in %s", path)
	}
	return f.Scenarios, nil
}
