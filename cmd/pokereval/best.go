package main

import (
	"fmt"

	"github.com/lox/pokereval/equity"
)

// BestCmd reports the best five-card hand.
type BestCmd struct {
	Cards string `arg:"" help:"Five to seven cards, e.g. 'AcAsTd7s7h3s2c'; the Omaha pocket when --board is set"`
	Side  string `short:"s" enum:"hi,lo" default:"hi" help:"Rank for the high pot or the 8-or-better low pot"`
	Board string `short:"b" help:"Omaha board; the hand must use exactly two pocket and three board cards"`
	JSON  bool   `help:"Print the result as JSON"`
}

func (cmd *BestCmd) Run(g *Globals) error {
	cards, err := cardTokens(cmd.Cards)
	if err != nil {
		return fmt.Errorf("cards: %w", err)
	}

	var report equity.HandReport
	if cmd.Board != "" {
		board, err := cardTokens(cmd.Board)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
		report, err = equity.BestHandOmaha(cards, board, cmd.Side)
		if err != nil {
			return err
		}
	} else {
		report, err = equity.BestHand(cards, cmd.Side)
		if err != nil {
			return err
		}
	}

	g.logger.Debug().Strs("cards", cards).Str("side", cmd.Side).Uint32("value", report.Value).Msg("Best hand")
	if cmd.JSON {
		return writeJSON(g.out, report)
	}
	renderBest(g.out, cmd.Side, report)
	return nil
}
