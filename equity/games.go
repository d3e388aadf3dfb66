package equity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokereval/poker"
)

// Rules describes how a game is dealt and which pots it plays for.
type Rules struct {
	Name       string
	BoardSize  int
	PocketSize int
	HiPot      bool
	Low        poker.LowDiscipline
	// Omaha hands must use exactly two pocket cards and three board cards.
	Omaha bool
}

// HasLow reports whether the game contests a low pot.
func (r Rules) HasLow() bool {
	return r.Low != poker.NoLow
}

var games = map[string]Rules{
	"holdem":    {Name: "holdem", BoardSize: 5, PocketSize: 2, HiPot: true},
	"holdem8":   {Name: "holdem8", BoardSize: 5, PocketSize: 2, HiPot: true, Low: poker.EightOrBetter},
	"omaha":     {Name: "omaha", BoardSize: 5, PocketSize: 4, HiPot: true, Omaha: true},
	"omaha8":    {Name: "omaha8", BoardSize: 5, PocketSize: 4, HiPot: true, Low: poker.EightOrBetter, Omaha: true},
	"7stud":     {Name: "7stud", PocketSize: 7, HiPot: true},
	"7stud8":    {Name: "7stud8", PocketSize: 7, HiPot: true, Low: poker.EightOrBetter},
	"7studnsq":  {Name: "7studnsq", PocketSize: 7, HiPot: true, Low: poker.AceToFive},
	"razz":      {Name: "razz", PocketSize: 7, Low: poker.AceToFive},
	"5draw":     {Name: "5draw", PocketSize: 5, HiPot: true},
	"5draw8":    {Name: "5draw8", PocketSize: 5, HiPot: true, Low: poker.EightOrBetter},
	"5drawnsq":  {Name: "5drawnsq", PocketSize: 5, HiPot: true, Low: poker.AceToFive},
	"lowball":   {Name: "lowball", PocketSize: 5, Low: poker.AceToFive},
	"lowball27": {Name: "lowball27", PocketSize: 5, Low: poker.DeuceToSeven},
}

// LookupGame returns the rules for a game name such as "holdem" or "omaha8".
func LookupGame(name string) (Rules, error) {
	r, ok := games[strings.ToLower(name)]
	if !ok {
		return Rules{}, fmt.Errorf("%w: %q", ErrUnsupportedGame, name)
	}
	return r, nil
}

// Games lists the supported game names in sorted order.
func Games() []string {
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// score ranks one pocket for both pots. lo is meaningful only when loOK.
func (r Rules) score(pocket, board []poker.Card, buf []poker.Card) (hi, lo poker.HandValue, loOK bool) {
	if r.Omaha {
		res := poker.EvaluateOmahaCards(pocket, board, r.Low)
		return res.High, res.Low, res.LowFound
	}
	buf = append(buf[:0], pocket...)
	buf = append(buf, board...)
	hand := poker.NewHand(buf...)
	if r.HiPot {
		hi = poker.EvaluateHighMask(hand)
	}
	if r.HasLow() {
		lo, loOK = poker.EvaluateLowMask(hand, r.Low)
	}
	return hi, lo, loOK
}
