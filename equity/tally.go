package equity

import (
	"github.com/lox/pokereval/internal/enumerate"
	"github.com/lox/pokereval/poker"
)

const (
	hiAwarded uint8 = 1 << iota
	loAwarded
)

// shareKey identifies a pot fraction: which pots were awarded in the
// completion and how many pockets split each pot the pocket took part in
// (0 when it had no share).
type shareKey struct {
	pots   uint8
	hi, lo uint8
}

// fraction returns the share of the whole pot, from 0 to 1.
func (k shareKey) fraction() float64 {
	per := 1.0
	if k.pots == hiAwarded|loAwarded {
		per = 0.5
	}
	var f float64
	if k.hi > 0 {
		f += per / float64(k.hi)
	}
	if k.lo > 0 {
		f += per / float64(k.lo)
	}
	return f
}

type potCounts struct {
	win, tie, lose uint64
}

// tally accumulates outcomes for the pockets of one evaluation. A tally is
// owned by one worker; partial tallies are combined with merge.
type tally struct {
	rules   Rules
	samples uint64
	loPots  uint64
	hi, lo  []potCounts
	scoop   []uint64
	shares  []map[shareKey]uint64

	hiVals, loVals []poker.HandValue
	loOK           []bool
	buf            []poker.Card
}

func newTally(rules Rules, pockets int) *tally {
	t := &tally{
		rules:  rules,
		hi:     make([]potCounts, pockets),
		lo:     make([]potCounts, pockets),
		scoop:  make([]uint64, pockets),
		shares: make([]map[shareKey]uint64, pockets),
		hiVals: make([]poker.HandValue, pockets),
		loVals: make([]poker.HandValue, pockets),
		loOK:   make([]bool, pockets),
		buf:    make([]poker.Card, 0, 12),
	}
	for i := range t.shares {
		t.shares[i] = make(map[shareKey]uint64)
	}
	return t
}

// add scores one completion.
func (t *tally) add(c enumerate.Completion) {
	r := t.rules
	t.samples++

	var (
		bestHi, bestLo   poker.HandValue
		hiShare, loShare uint8
		loFound          bool
	)
	for i, pocket := range c.Pockets {
		hi, lo, ok := r.score(pocket, c.Board, t.buf)
		t.hiVals[i], t.loVals[i], t.loOK[i] = hi, lo, ok
		if r.HiPot {
			switch {
			case hiShare == 0 || hi > bestHi:
				bestHi, hiShare = hi, 1
			case hi == bestHi:
				hiShare++
			}
		}
		if ok {
			switch {
			case !loFound || lo > bestLo:
				bestLo, loShare, loFound = lo, 1, true
			case lo == bestLo:
				loShare++
			}
		}
	}

	var pots uint8
	if r.HiPot {
		pots |= hiAwarded
	}
	if loFound {
		pots |= loAwarded
		t.loPots++
	}

	for i := range c.Pockets {
		key := shareKey{pots: pots}
		if r.HiPot {
			if t.hiVals[i] == bestHi {
				key.hi = hiShare
				countWin(&t.hi[i], hiShare)
			} else {
				t.hi[i].lose++
			}
		}
		if r.HasLow() {
			if loFound && t.loOK[i] && t.loVals[i] == bestLo {
				key.lo = loShare
				countWin(&t.lo[i], loShare)
			} else {
				t.lo[i].lose++
			}
		}
		if pots != 0 && (pots&hiAwarded == 0 || key.hi == 1) && (pots&loAwarded == 0 || key.lo == 1) {
			t.scoop[i]++
		}
		if key.hi > 0 || key.lo > 0 {
			t.shares[i][key]++
		}
	}
}

func countWin(p *potCounts, share uint8) {
	if share == 1 {
		p.win++
	} else {
		p.tie++
	}
}

// merge folds other into t.
func (t *tally) merge(other *tally) {
	t.samples += other.samples
	t.loPots += other.loPots
	for i := range t.hi {
		t.hi[i].win += other.hi[i].win
		t.hi[i].tie += other.hi[i].tie
		t.hi[i].lose += other.hi[i].lose
		t.lo[i].win += other.lo[i].win
		t.lo[i].tie += other.lo[i].tie
		t.lo[i].lose += other.lo[i].lose
		t.scoop[i] += other.scoop[i]
		for k, n := range other.shares[i] {
			t.shares[i][k] += n
		}
	}
}
