package equity

import (
	"fmt"

	"github.com/lox/pokereval/poker"
)

// HandReport is the best five-card hand of a set of cards.
type HandReport struct {
	// Value orders hands of the same side; higher is better.
	Value uint32 `json:"value"`
	// Combination is the category label followed by the five cards,
	// category-defining cards first. A low that does not qualify is
	// reported as ["Nothing"].
	Combination []string `json:"combination"`
}

// BestHand reports the best high hand ("hi") or 8-or-better low ("lo") of 5
// to 7 cards.
func BestHand(cards []string, side string) (HandReport, error) {
	s, err := parseSide(side)
	if err != nil {
		return HandReport{}, err
	}
	cs, err := poker.ParseCardList(cards)
	if err != nil {
		return HandReport{}, err
	}
	best, err := poker.BestHand(cs, s)
	if err != nil {
		return HandReport{}, err
	}
	return report(best), nil
}

// BestHandOmaha reports the best Omaha hand using exactly two pocket cards and
// three board cards.
func BestHandOmaha(pocket, board []string, side string) (HandReport, error) {
	s, err := parseSide(side)
	if err != nil {
		return HandReport{}, err
	}
	p, err := poker.ParseCardList(pocket)
	if err != nil {
		return HandReport{}, fmt.Errorf("pocket: %w", err)
	}
	b, err := poker.ParseCardList(board)
	if err != nil {
		return HandReport{}, fmt.Errorf("board: %w", err)
	}
	best, err := poker.BestOmaha(p, b, s)
	if err != nil {
		return HandReport{}, err
	}
	return report(best), nil
}

func parseSide(side string) (poker.Side, error) {
	s, err := poker.ParseSide(side)
	if err != nil {
		return s, fmt.Errorf("%w: %q (want hi or lo)", ErrInvalidSide, side)
	}
	return s, nil
}

func report(b poker.Best) HandReport {
	return HandReport{Value: uint32(b.Value), Combination: b.Combination()}
}
