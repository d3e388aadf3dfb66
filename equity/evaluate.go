// Package equity computes showdown equity for poker deals with unknown cards,
// by exhaustive enumeration or Monte Carlo sampling, and reports the best
// hand of a single set of cards.
package equity

import (
	"context"
	"errors"
	"fmt"
	"iter"
	rand "math/rand/v2"
	"runtime"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokereval/internal/enumerate"
	"github.com/lox/pokereval/internal/randutil"
)

// ErrTimeLimit is the cancellation cause when WithTimeLimit expires.
var ErrTimeLimit = errors.New("evaluation time limit exceeded")

const (
	maxWorkers = 8
	// below this many completions a single worker is used
	parallelThreshold = 500
	// completions between context checks
	pollInterval = 1024
)

// Mode selects how completions are produced.
type Mode uint8

const (
	// ModeAuto enumerates when the exhaustive count fits within the iteration
	// budget (or no budget is given) and samples otherwise.
	ModeAuto Mode = iota
	ModeExhaustive
	ModeMonteCarlo
)

func (m Mode) String() string {
	switch m {
	case ModeExhaustive:
		return "exhaustive"
	case ModeMonteCarlo:
		return "monte-carlo"
	default:
		return "auto"
	}
}

// ParseMode parses "auto", "exhaustive" or "monte-carlo".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ModeAuto, nil
	case "exhaustive", "exact":
		return ModeExhaustive, nil
	case "monte-carlo", "montecarlo", "mc", "sample":
		return ModeMonteCarlo, nil
	}
	return ModeAuto, fmt.Errorf("unknown mode %q", s)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers sets the number of parallel workers. Values below 1 select the default.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithSeed makes Monte Carlo runs reproducible for a given worker count.
func WithSeed(seed int64) Option {
	return func(e *Evaluator) {
		e.seed = &seed
	}
}

// WithMode forces exhaustive or Monte Carlo evaluation.
func WithMode(m Mode) Option {
	return func(e *Evaluator) {
		e.mode = m
	}
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithClock sets the clock used for time limits and elapsed time.
func WithClock(clock quartz.Clock) Option {
	return func(e *Evaluator) {
		e.clock = clock
	}
}

// WithTimeLimit cancels evaluations that run longer than d.
func WithTimeLimit(d time.Duration) Option {
	return func(e *Evaluator) {
		e.timeLimit = d
	}
}

// Evaluator runs equity evaluations. It holds configuration only and is safe
// for concurrent use.
type Evaluator struct {
	workers   int
	seed      *int64
	mode      Mode
	logger    zerolog.Logger
	clock     quartz.Clock
	timeLimit time.Duration
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		workers: min(runtime.NumCPU(), maxWorkers),
		logger:  zerolog.Nop(),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate computes equity with the default evaluator.
func Evaluate(ctx context.Context, game string, board []string, pockets [][]string, iterations int) (*Result, error) {
	return New().Evaluate(ctx, Request{Game: game, Board: board, Pockets: pockets, Iterations: iterations})
}

// Evaluate validates the request, deals every completion and tallies the
// outcome of each evaluated pocket. Invalid input is reported before any
// dealing; a cancelled run returns the cancellation cause and no result.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (*Result, error) {
	d, err := req.prepare()
	if err != nil {
		return nil, err
	}
	en, err := enumerate.New(d.board, d.pockets, d.dead)
	if err != nil {
		return nil, err
	}
	mode, samples, err := e.plan(en, req.Iterations)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := e.logger.With().Str("run_id", runID).Str("game", d.rules.Name).Logger()

	workers := e.workers
	if samples < parallelThreshold {
		workers = 1
	}
	workers = int(min(uint64(workers), max(samples, 1)))

	log.Debug().
		Str("mode", mode.String()).
		Uint64("samples", samples).
		Int("pockets", len(d.pockets)).
		Int("unknown", en.Needed()).
		Int("workers", workers).
		Msg("Starting evaluation")

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	if e.timeLimit > 0 {
		timer := e.clock.AfterFunc(e.timeLimit, func() {
			cancel(ErrTimeLimit)
		})
		defer timer.Stop()
	}

	start := e.clock.Now()
	tallies := make([]*tally, workers)
	var rngs []*rand.Rand
	if mode == ModeMonteCarlo {
		seed := randutil.Seed(e.seed, e.clock.Now())
		log.Debug().Int64("seed", seed).Msg("Seeded sampler")
		rngs = randutil.Split(randutil.New(seed), workers)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		t := newTally(d.rules, len(d.pockets))
		tallies[w] = t

		var seq iter.Seq[enumerate.Completion]
		if mode == ModeMonteCarlo {
			n := samples / uint64(workers)
			if uint64(w) < samples%uint64(workers) {
				n++
			}
			seq = en.MonteCarlo(rngs[w], int(n))
		} else {
			seq = en.ExhaustivePart(w, workers)
		}

		g.Go(func() error {
			i := 0
			for c := range seq {
				if i%pollInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				t.add(c)
				i++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if cause := context.Cause(ctx); cause != nil {
			err = cause
		}
		log.Debug().Err(err).Msg("Evaluation cancelled")
		return nil, err
	}

	total := tallies[0]
	for _, t := range tallies[1:] {
		total.merge(t)
	}
	res := newResult(d, total, mode)
	res.Info.RunID = runID
	res.Info.Elapsed = e.clock.Now().Sub(start)

	log.Debug().
		Uint64("samples", res.Info.Samples).
		Bool("has_lo_pot", res.Info.HasLoPot).
		Dur("elapsed", res.Info.Elapsed).
		Msg("Evaluation complete")
	return res, nil
}

// plan picks the evaluation mode and sample count.
func (e *Evaluator) plan(en *enumerate.Enumerator, iterations int) (Mode, uint64, error) {
	count, fits := en.Count()
	exhaustive := func() (Mode, uint64, error) {
		if !fits {
			return 0, 0, fmt.Errorf("%w: too many completions to enumerate, use monte carlo", ErrInvalidIterations)
		}
		return ModeExhaustive, count, nil
	}

	switch e.mode {
	case ModeExhaustive:
		return exhaustive()
	case ModeMonteCarlo:
		if iterations <= 0 {
			return 0, 0, fmt.Errorf("%w: monte carlo needs a positive iteration count", ErrInvalidIterations)
		}
		return ModeMonteCarlo, uint64(iterations), nil
	}
	if iterations <= 0 || (fits && count <= uint64(iterations)) {
		return exhaustive()
	}
	return ModeMonteCarlo, uint64(iterations), nil
}
