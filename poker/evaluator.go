package poker

import (
	"fmt"
	"math/bits"
)

// EvaluateHigh ranks the best five-card high hand among 5 to 7 cards.
func EvaluateHigh(cards []Card) (HandValue, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return 0, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}
	hand, err := handFromCards(cards)
	if err != nil {
		return 0, err
	}
	return EvaluateHighMask(hand), nil
}

// EvaluateHighMask ranks the best five-card high hand in a set of at least
// five cards. The result for fewer than five cards is meaningless.
func EvaluateHighMask(hand Hand) HandValue {
	suitMasks := hand.suitMasks()
	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	rankMask := s0 | s1 | s2 | s3

	flushSuit := -1
	for suit, mask := range suitMasks {
		if bits.OnesCount16(mask) < 5 {
			continue
		}
		if high := straightHighMask(mask); high > 0 {
			return encode(StraightFlush, high)
		}
		if flushSuit < 0 || mask > suitMasks[flushSuit] {
			flushSuit = suit
		}
	}

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		kicker := highestRank(rankMask &^ (1 << quad))
		return encode(Quads, uint8(quad), uint8(max(kicker, 0)))
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestRank(pairCandidates); pair >= 0 {
			return encode(FullHouse, uint8(trip), uint8(pair))
		}
	}

	if flushSuit >= 0 {
		return encode(Flush, findOrderedKickers(suitMasks[flushSuit], 0, 5)...)
	}

	if high := straightHighMask(rankMask); high > 0 {
		return encode(Straight, high)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		kickers := findOrderedKickers(rankMask, 1<<trip, 2)
		return encode(Trips, uint8(trip), kickers[0], kickers[1])
	}

	if high := highestRank(pairsMask); high >= 0 {
		if low := highestRank(pairsMask &^ (1 << high)); low >= 0 {
			kicker := findOrderedKickers(rankMask, 1<<high|1<<low, 1)
			return encode(TwoPair, uint8(high), uint8(low), kicker[0])
		}
		kickers := findOrderedKickers(rankMask, 1<<high, 3)
		return encode(OnePair, uint8(high), kickers[0], kickers[1], kickers[2])
	}

	return encode(NoPair, findOrderedKickers(rankMask, 0, 5)...)
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// findOrderedKickers finds the top n ranks in descending order, excluding used ranks.
func findOrderedKickers(mask, used uint16, n int) []uint8 {
	available := mask &^ used
	kickers := make([]uint8, 0, n)
	for len(kickers) < n {
		if available == 0 {
			kickers = append(kickers, 0)
			continue
		}
		top := uint8(bits.Len16(available) - 1)
		kickers = append(kickers, top)
		available &^= 1 << top
	}
	return kickers
}

// straightHighMask returns the high-card rank of the best straight present in the mask (0 if none).
// A wheel (A-2-3-4-5) reports the five as its high card.
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= suitBits

	// Bitwise cascade identifies consecutive sequences in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return uint8(bits.Len16(seq)-1) + 4
	}
	if mask&wheelMask == wheelMask {
		return Five
	}
	return 0
}
