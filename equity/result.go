package equity

import (
	"encoding/json"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EVScale is the reporting unit of expected value: the whole pot.
const EVScale = 1000

// PotStats counts the outcomes of one pot over all samples.
type PotStats struct {
	Win  uint64
	Tie  uint64
	Lose uint64
}

// Total returns Win+Tie+Lose, which equals the number of samples.
func (p PotStats) Total() uint64 {
	return p.Win + p.Tie + p.Lose
}

// PocketStats holds the aggregate outcome of one evaluated pocket.
type PocketStats struct {
	// Seat is the pocket's position in the request.
	Seat int
	// Hi is nil when the game has no high pot.
	Hi *PotStats
	// Lo is nil unless a low pot was awarded at least once in the run.
	Lo    *PotStats
	Scoop uint64
	// EV is the average share of the pot, in units of EVScale.
	EV float64

	samples uint64
	exact   bool
	dist    []shareBucket
}

type shareBucket struct {
	fraction float64
	count    uint64
}

// ConfidenceInterval returns the two-sided interval of EV at the given level
// (for example 0.95). Exhaustive runs are exact and return [EV, EV].
func (p PocketStats) ConfidenceInterval(level float64) (lo, hi float64) {
	if p.exact || p.samples < 2 || level <= 0 || level >= 1 {
		return p.EV, p.EV
	}
	xs := make([]float64, len(p.dist))
	ws := make([]float64, len(p.dist))
	for i, b := range p.dist {
		xs[i], ws[i] = b.fraction, float64(b.count)
	}
	mean, variance := stat.MeanVariance(xs, ws)
	se := math.Sqrt(variance / float64(p.samples))
	z := distuv.UnitNormal.Quantile(0.5 + level/2)
	lo = math.Max(0, mean-z*se) * EVScale
	hi = math.Min(1, mean+z*se) * EVScale
	return lo, hi
}

// RunInfo describes an evaluation run.
type RunInfo struct {
	Game     string
	Mode     Mode
	Samples  uint64
	HasLoPot bool
	HasHiPot bool
	RunID    string
	Elapsed  time.Duration
}

// Result is the immutable outcome of an evaluation.
type Result struct {
	Info RunInfo
	// Eval holds the evaluated pockets in seat order. Excluded seats have no entry.
	Eval  []PocketStats
	Seats SeatMap
}

// ForSeat returns the stats of a seat, false when the seat was not evaluated.
func (r *Result) ForSeat(seat int) (PocketStats, bool) {
	i, ok := r.Seats.Index(seat)
	if !ok {
		return PocketStats{}, false
	}
	return r.Eval[i], true
}

func newResult(d *deal, t *tally, mode Mode) *Result {
	res := &Result{
		Info: RunInfo{
			Game:     d.rules.Name,
			Mode:     mode,
			Samples:  t.samples,
			HasHiPot: d.rules.HiPot,
			HasLoPot: d.rules.HasLow() && t.loPots > 0,
		},
		Eval:  make([]PocketStats, len(d.pockets)),
		Seats: d.seats,
	}
	for i := range res.Eval {
		ps := PocketStats{
			Seat:    d.seats.Seat(i),
			Scoop:   t.scoop[i],
			samples: t.samples,
			exact:   mode == ModeExhaustive,
			dist:    distribution(t.shares[i], t.samples),
		}
		if res.Info.HasHiPot {
			ps.Hi = &PotStats{Win: t.hi[i].win, Tie: t.hi[i].tie, Lose: t.hi[i].lose}
		}
		if res.Info.HasLoPot {
			ps.Lo = &PotStats{Win: t.lo[i].win, Tie: t.lo[i].tie, Lose: t.lo[i].lose}
		}
		if t.samples > 0 {
			xs := make([]float64, len(ps.dist))
			ws := make([]float64, len(ps.dist))
			for j, b := range ps.dist {
				xs[j], ws[j] = b.fraction, float64(b.count)
			}
			ps.EV = stat.Mean(xs, ws) * EVScale
		}
		res.Eval[i] = ps
	}
	return res
}

// distribution flattens a share histogram in a fixed order so that float
// sums do not depend on map iteration.
func distribution(shares map[shareKey]uint64, samples uint64) []shareBucket {
	keys := make([]shareKey, 0, len(shares))
	var counted uint64
	for k, n := range shares {
		keys = append(keys, k)
		counted += n
	}
	slices.SortFunc(keys, func(a, b shareKey) int {
		if a.pots != b.pots {
			return int(a.pots) - int(b.pots)
		}
		if a.hi != b.hi {
			return int(a.hi) - int(b.hi)
		}
		return int(a.lo) - int(b.lo)
	})
	out := make([]shareBucket, 0, len(keys)+1)
	if samples > counted {
		out = append(out, shareBucket{fraction: 0, count: samples - counted})
	}
	for _, k := range keys {
		out = append(out, shareBucket{fraction: k.fraction(), count: shares[k]})
	}
	return out
}

type jsonInfo struct {
	Samples  uint64 `json:"samples"`
	HasLoPot int    `json:"haslopot"`
	HasHiPot int    `json:"hashipot"`
	Game     string `json:"game,omitempty"`
	Mode     string `json:"mode,omitempty"`
}

type jsonPocket struct {
	Seat   int     `json:"seat"`
	Scoop  uint64  `json:"scoop"`
	WinHi  *uint64 `json:"winhi,omitempty"`
	TieHi  *uint64 `json:"tiehi,omitempty"`
	LoseHi *uint64 `json:"losehi,omitempty"`
	WinLo  *uint64 `json:"winlo,omitempty"`
	TieLo  *uint64 `json:"tielo,omitempty"`
	LoseLo *uint64 `json:"loselo,omitempty"`
	EV     int64   `json:"ev"`
}

type jsonResult struct {
	Info jsonInfo     `json:"info"`
	Eval []jsonPocket `json:"eval"`
}

// MarshalJSON encodes the result with the flat per-pocket keys winhi, tiehi,
// losehi, winlo, tielo, loselo, scoop and ev. Pot keys are omitted for pots
// the run did not have; ev is rounded to an integer.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		Info: jsonInfo{
			Samples:  r.Info.Samples,
			HasLoPot: boolInt(r.Info.HasLoPot),
			HasHiPot: boolInt(r.Info.HasHiPot),
			Game:     r.Info.Game,
			Mode:     r.Info.Mode.String(),
		},
		Eval: make([]jsonPocket, len(r.Eval)),
	}
	for i, p := range r.Eval {
		jp := jsonPocket{Seat: p.Seat, Scoop: p.Scoop, EV: int64(math.Round(p.EV))}
		if p.Hi != nil {
			jp.WinHi, jp.TieHi, jp.LoseHi = &p.Hi.Win, &p.Hi.Tie, &p.Hi.Lose
		}
		if p.Lo != nil {
			jp.WinLo, jp.TieLo, jp.LoseLo = &p.Lo.Win, &p.Lo.Tie, &p.Lo.Lose
		}
		out.Eval[i] = jp
	}
	return json.Marshal(out)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
