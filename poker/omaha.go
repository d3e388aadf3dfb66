package poker

import "fmt"

// OmahaResult holds the best high and, when one qualifies, the best low of an
// Omaha hand.
type OmahaResult struct {
	High     HandValue
	Low      HandValue
	LowFound bool
}

// EvaluateOmaha ranks an Omaha hand: every five-card hand uses exactly two
// pocket cards and three board cards.
func EvaluateOmaha(pocket, board []Card, low LowDiscipline) (OmahaResult, error) {
	if len(pocket) < 2 || len(board) < 3 {
		return OmahaResult{}, fmt.Errorf("%w: omaha needs at least 2 pocket and 3 board cards, got %d and %d",
			ErrInvalidHand, len(pocket), len(board))
	}
	all := make([]Card, 0, len(pocket)+len(board))
	all = append(all, pocket...)
	all = append(all, board...)
	if _, err := handFromCards(all); err != nil {
		return OmahaResult{}, err
	}
	return EvaluateOmahaCards(pocket, board, low), nil
}

// EvaluateOmahaCards is EvaluateOmaha without input validation.
func EvaluateOmahaCards(pocket, board []Card, low LowDiscipline) OmahaResult {
	var res OmahaResult
	eachOmahaFive(pocket, board, func(five Hand) {
		res.High = max(res.High, EvaluateHighMask(five))
		if low == NoLow {
			return
		}
		if v, ok := EvaluateLowMask(five, low); ok && (!res.LowFound || v > res.Low) {
			res.Low, res.LowFound = v, true
		}
	})
	return res
}

// eachOmahaFive calls fn for every combination of two pocket and three board cards.
func eachOmahaFive(pocket, board []Card, fn func(Hand)) {
	for a := 0; a < len(pocket); a++ {
		for b := a + 1; b < len(pocket); b++ {
			two := NewHand(pocket[a], pocket[b])
			for c := 0; c < len(board); c++ {
				for d := c + 1; d < len(board); d++ {
					for e := d + 1; e < len(board); e++ {
						fn(two | NewHand(board[c], board[d], board[e]))
					}
				}
			}
		}
	}
}
