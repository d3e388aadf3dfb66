package poker

import (
	"fmt"
	"math/bits"
)

// LowDiscipline selects how low hands are ranked.
type LowDiscipline uint8

const (
	// NoLow means the game has no low pot.
	NoLow LowDiscipline = iota
	// AceToFive ranks aces low and ignores straights and flushes; every hand qualifies.
	AceToFive
	// EightOrBetter is ace-to-five restricted to five distinct ranks of eight or lower.
	EightOrBetter
	// DeuceToSeven ranks aces high and counts straights and flushes against the hand.
	DeuceToSeven
)

func (d LowDiscipline) String() string {
	switch d {
	case NoLow:
		return "none"
	case AceToFive:
		return "ace-to-five"
	case EightOrBetter:
		return "8-or-better"
	case DeuceToSeven:
		return "deuce-to-seven"
	default:
		return "unknown"
	}
}

// eightOrBetterMask covers low ranks ace through eight.
const eightOrBetterMask = 0xFF

// EvaluateLow ranks the best five-card low among 5 to 7 cards. The boolean is
// false when no five cards qualify, which is a normal outcome.
func EvaluateLow(cards []Card, d LowDiscipline) (HandValue, bool, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return 0, false, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}
	hand, err := handFromCards(cards)
	if err != nil {
		return 0, false, err
	}
	v, ok := EvaluateLowMask(hand, d)
	return v, ok, nil
}

// EvaluateLowMask ranks the best low in a set of at least five cards.
func EvaluateLowMask(hand Hand, d LowDiscipline) (HandValue, bool) {
	switch d {
	case EightOrBetter:
		mask := lowRankMask(hand) & eightOrBetterMask
		if bits.OnesCount16(mask) < 5 {
			return 0, false
		}
		return LowCeiling - encode(NoPair, lowestRanksDesc(mask)...), true
	case AceToFive:
		mask := lowRankMask(hand)
		if bits.OnesCount16(mask) >= 5 {
			return LowCeiling - encode(NoPair, lowestRanksDesc(mask)...), true
		}
		best := LowCeiling
		eachFive(hand, func(five Hand) {
			best = min(best, aceToFiveRaw(five))
		})
		return LowCeiling - best, true
	case DeuceToSeven:
		best := LowCeiling
		eachFive(hand, func(five Hand) {
			best = min(best, deuceToSevenRaw(five))
		})
		return LowCeiling - best, true
	default:
		return 0, false
	}
}

// lowRank maps a rank to ace-low order: ace 0, deuce 1 ... king 12.
func lowRank(rank uint8) uint8 {
	return (rank + 1) % 13
}

// lowRankMask returns the distinct ranks of the hand in ace-low order.
func lowRankMask(hand Hand) uint16 {
	var ranks uint16
	for _, m := range hand.suitMasks() {
		ranks |= m
	}
	// rotate the ace (bit 12) down to bit 0
	return (ranks<<1)&suitBits | ranks>>12
}

// lowestRanksDesc returns the five lowest ranks of mask, highest first.
func lowestRanksDesc(mask uint16) []uint8 {
	out := make([]uint8, 5)
	for i := 4; i >= 0; i-- {
		r := bits.TrailingZeros16(mask)
		out[i] = uint8(r)
		mask &^= 1 << r
	}
	return out
}

// aceToFiveRaw encodes exactly five cards as an ace-to-five low, lower is better.
func aceToFiveRaw(five Hand) HandValue {
	var counts [13]uint8
	for _, c := range five.Cards() {
		counts[lowRank(c.Rank())]++
	}
	return encodeGroups(&counts)
}

// deuceToSevenRaw encodes exactly five cards as a high hand where the ace only
// plays high, so A-2-3-4-5 is ace high rather than a straight.
func deuceToSevenRaw(five Hand) HandValue {
	v := EvaluateHighMask(five)
	if t := v.Type(); (t == Straight || t == StraightFlush) && v.Ranks()[0] == Five {
		if t == StraightFlush {
			return encode(Flush, Ace, Five, Four, Three, Two)
		}
		return encode(NoPair, Ace, Five, Four, Three, Two)
	}
	return v
}

// eachFive calls fn for every five-card subset of hand.
func eachFive(hand Hand, fn func(Hand)) {
	cards := hand.Cards()
	n := len(cards)
	if n < 5 {
		return
	}
	var idx [5]int
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(NewHand(cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]))
		i := 4
		for i >= 0 && idx[i] == n-5+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < 5; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
