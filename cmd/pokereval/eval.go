package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sanity-io/litter"

	"github.com/lox/pokereval/cmd/pokereval/shared"
	"github.com/lox/pokereval/equity"
	"github.com/lox/pokereval/internal/fileutil"
	"github.com/lox/pokereval/internal/schema"
	"github.com/lox/pokereval/poker"
)

// EvalCmd computes equity for one deal given on the command line or as a JSON request.
type EvalCmd struct {
	Pockets     []string      `arg:"" name:"pocket" optional:"" help:"Pocket cards per seat, e.g. 'AsKs' or '____' for hidden cards; '-' for a folded seat"`
	Game        string        `short:"g" help:"Game variant (${games})"`
	Board       string        `short:"b" help:"Board cards, e.g. 'Td7s8h'"`
	Dead        string        `short:"d" help:"Dead cards removed from the deck"`
	Iterations  *int          `short:"i" help:"Iteration budget; 0 enumerates every completion"`
	Mode        string        `short:"m" help:"Evaluation mode: auto, exhaustive or monte-carlo"`
	Seed        *int64        `help:"Random seed for reproducible results"`
	Workers     int           `short:"w" help:"Parallel workers (0 = default)"`
	TimeLimit   time.Duration `help:"Abort evaluations running longer than this"`
	FillPockets bool          `help:"Deal fully hidden pockets instead of excluding them"`
	JSON        bool          `help:"Print the result as JSON"`
	Request     string        `help:"Read the request from a JSON file ('-' for stdin)" type:"path"`
	Output      string        `short:"o" help:"Write the result to a file instead of stdout" type:"path"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	req, err := cmd.request(g)
	if err != nil {
		return err
	}
	if g.Debug {
		g.logger.Debug().Msg("Request: " + litter.Sdump(req))
	}

	ev, err := cmd.evaluator(g)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandlerWithLogger(g.logger)
	defer stop()

	res, err := ev.Evaluate(ctx, req)
	if err != nil {
		return err
	}

	return emit(g.out, cmd.Output, func(w io.Writer) error {
		if cmd.JSON {
			return writeJSON(w, res)
		}
		renderResult(w, req, res)
		return nil
	})
}

// request builds the equity request from flags, or from --request.
func (cmd *EvalCmd) request(g *Globals) (equity.Request, error) {
	if cmd.Request != "" {
		return loadRequest(cmd.Request)
	}
	if len(cmd.Pockets) == 0 {
		return equity.Request{}, fmt.Errorf("at least one pocket is required")
	}

	req := equity.Request{
		Game:        g.cfg.Defaults.Game,
		Iterations:  g.cfg.Defaults.Iterations,
		FillPockets: g.cfg.Defaults.FillPockets || cmd.FillPockets,
	}
	if cmd.Game != "" {
		req.Game = cmd.Game
	}
	if cmd.Iterations != nil {
		req.Iterations = *cmd.Iterations
	}

	var err error
	if req.Board, err = cardTokens(cmd.Board); err != nil {
		return req, fmt.Errorf("board: %w", err)
	}
	if req.Dead, err = cardTokens(cmd.Dead); err != nil {
		return req, fmt.Errorf("dead cards: %w", err)
	}
	req.Pockets, err = parsePockets(cmd.Pockets)
	return req, err
}

func (cmd *EvalCmd) evaluator(g *Globals) (*equity.Evaluator, error) {
	modeName := g.cfg.Defaults.Mode
	if cmd.Mode != "" {
		modeName = cmd.Mode
	}
	mode, err := equity.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	limit, err := g.cfg.Defaults.Limit()
	if err != nil {
		return nil, err
	}
	if cmd.TimeLimit > 0 {
		limit = cmd.TimeLimit
	}
	workers := g.cfg.Defaults.Workers
	if cmd.Workers > 0 {
		workers = cmd.Workers
	}

	opts := []equity.Option{
		equity.WithLogger(g.logger),
		equity.WithMode(mode),
		equity.WithWorkers(workers),
		equity.WithTimeLimit(limit),
	}
	if cmd.Seed != nil {
		opts = append(opts, equity.WithSeed(*cmd.Seed))
	}
	return equity.New(opts...), nil
}

// parsePockets converts compact pocket arguments to card tokens. "-" is a
// folded seat.
func parsePockets(args []string) ([][]string, error) {
	pockets := make([][]string, len(args))
	for i, arg := range args {
		if arg == "-" {
			pockets[i] = []string{}
			continue
		}
		tokens, err := cardTokens(arg)
		if err != nil {
			return nil, fmt.Errorf("pocket %d: %w", i+1, err)
		}
		pockets[i] = tokens
	}
	return pockets, nil
}

func cardTokens(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	cards, err := poker.ParseCards(s)
	if err != nil {
		return nil, err
	}
	return poker.Strings(cards), nil
}

func loadRequest(path string) (equity.Request, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return equity.Request{}, err
	}

	v, err := schema.NewValidator()
	if err != nil {
		return equity.Request{}, err
	}
	req, err := v.DecodeRequest(data)
	if err != nil {
		return equity.Request{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// emit writes output to out, or atomically to path when one is given.
func emit(out io.Writer, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(out)
	}
	return fileutil.WriteAtomic(path, 0o644, fn)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
