package poker

import (
	"fmt"
	"sort"
)

// Side selects which pot a hand is ranked for.
type Side uint8

const (
	Hi Side = iota
	Lo
)

func (s Side) String() string {
	if s == Lo {
		return "lo"
	}
	return "hi"
}

// ParseSide parses "hi" or "lo".
func ParseSide(s string) (Side, error) {
	switch s {
	case "hi", "high":
		return Hi, nil
	case "lo", "low":
		return Lo, nil
	}
	return Hi, fmt.Errorf("unknown side %q (want hi or lo)", s)
}

// Best describes the best five-card hand of one side.
type Best struct {
	Value HandValue
	Type  HandType
	// Cards holds the five cards, category-defining cards first.
	Cards []Card
}

// Qualified reports whether a hand was found.
func (b Best) Qualified() bool {
	return b.Type != Nothing
}

// Combination returns the category label followed by the card strings.
func (b Best) Combination() []string {
	out := make([]string, 0, 1+len(b.Cards))
	out = append(out, b.Type.String())
	return append(out, Strings(b.Cards)...)
}

// BestHand returns the best high hand, or the best 8-or-better low for Lo.
func BestHand(cards []Card, side Side) (Best, error) {
	if side == Lo {
		return BestLow(cards, EightOrBetter)
	}
	if len(cards) < 5 || len(cards) > 7 {
		return Best{}, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}
	hand, err := handFromCards(cards)
	if err != nil {
		return Best{}, err
	}
	best, five := bestHigh(hand)
	return Best{Value: best, Type: best.Type(), Cards: orderHigh(five, best)}, nil
}

// BestLow returns the best low hand for a discipline; Type is Nothing when
// nothing qualifies.
func BestLow(cards []Card, d LowDiscipline) (Best, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return Best{}, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}
	hand, err := handFromCards(cards)
	if err != nil {
		return Best{}, err
	}
	var (
		best  HandValue
		found bool
		five  Hand
	)
	eachFive(hand, func(h Hand) {
		if v, ok := EvaluateLowMask(h, d); ok && (!found || v > best) {
			best, found, five = v, true, h
		}
	})
	return bestLowResult(best, found, five, d), nil
}

// BestOmaha returns the best Omaha hand of one side using exactly two pocket
// cards and three board cards.
func BestOmaha(pocket, board []Card, side Side) (Best, error) {
	if _, err := EvaluateOmaha(pocket, board, NoLow); err != nil {
		return Best{}, err
	}
	var (
		best  HandValue
		found bool
		five  Hand
	)
	eachOmahaFive(pocket, board, func(h Hand) {
		if side == Hi {
			if v := EvaluateHighMask(h); !found || v > best {
				best, found, five = v, true, h
			}
			return
		}
		if v, ok := EvaluateLowMask(h, EightOrBetter); ok && (!found || v > best) {
			best, found, five = v, true, h
		}
	})
	if side == Hi {
		return Best{Value: best, Type: best.Type(), Cards: orderHigh(five, best)}, nil
	}
	return bestLowResult(best, found, five, EightOrBetter), nil
}

func bestHigh(hand Hand) (HandValue, Hand) {
	var (
		best HandValue
		five Hand
	)
	eachFive(hand, func(h Hand) {
		if v := EvaluateHighMask(h); five == 0 || v > best {
			best, five = v, h
		}
	})
	return best, five
}

func bestLowResult(v HandValue, found bool, five Hand, d LowDiscipline) Best {
	if !found {
		return Best{Type: Nothing}
	}
	raw := v.LowRaw()
	if d == DeuceToSeven {
		return Best{Value: v, Type: raw.Type(), Cards: orderHigh(five, raw)}
	}
	return Best{Value: v, Type: raw.Type(), Cards: orderByGroups(five, lowRank)}
}

// orderHigh orders five cards for display: straights from the top card down
// (a wheel ends with its ace), everything else by group size then rank.
func orderHigh(five Hand, v HandValue) []Card {
	cards := orderByGroups(five, func(r uint8) uint8 { return r })
	if t := v.Type(); (t == Straight || t == StraightFlush) && v.Ranks()[0] == Five {
		// ace sorted first, move it behind the five
		cards = append(cards[1:], cards[0])
	}
	return cards
}

// orderByGroups sorts by rank multiplicity, then rank (under order), then
// suit, all descending.
func orderByGroups(five Hand, order func(uint8) uint8) []Card {
	cards := five.Cards()
	var counts [13]uint8
	for _, c := range cards {
		counts[c.Rank()]++
	}
	sort.Slice(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if counts[a.Rank()] != counts[b.Rank()] {
			return counts[a.Rank()] > counts[b.Rank()]
		}
		if order(a.Rank()) != order(b.Rank()) {
			return order(a.Rank()) > order(b.Rank())
		}
		return a.Suit() > b.Suit()
	})
	return cards
}
