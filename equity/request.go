package equity

import (
	"errors"
	"fmt"

	"github.com/lox/pokereval/poker"
)

var (
	ErrUnsupportedGame   = errors.New("unsupported game")
	ErrInvalidPocket     = errors.New("invalid pocket")
	ErrInvalidBoard      = errors.New("invalid board")
	ErrNoActivePockets   = errors.New("no active pockets")
	ErrInvalidIterations = errors.New("invalid iterations")
	ErrInvalidSide       = errors.New("invalid side")
)

// Request is one equity evaluation. Cards use two-character strings; "__"
// marks a card still to be dealt. An empty pocket is a folded seat.
type Request struct {
	Game       string     `json:"game"`
	Board      []string   `json:"board,omitempty"`
	Pockets    [][]string `json:"pockets"`
	Dead       []string   `json:"dead,omitempty"`
	Iterations int        `json:"iterations,omitempty"`
	// FillPockets deals fully hidden pockets instead of excluding them.
	FillPockets bool `json:"fill_pockets,omitempty"`
}

// SeatMap maps input seats to evaluated pocket indices and back.
type SeatMap struct {
	seats   []int // evaluated index -> seat
	indices []int // seat -> evaluated index, -1 when excluded
}

func newSeatMap(total int) SeatMap {
	m := SeatMap{indices: make([]int, total)}
	for i := range m.indices {
		m.indices[i] = -1
	}
	return m
}

func (m *SeatMap) add(seat int) {
	m.indices[seat] = len(m.seats)
	m.seats = append(m.seats, seat)
}

// Seat returns the input seat of an evaluated pocket.
func (m SeatMap) Seat(index int) int {
	return m.seats[index]
}

// Index returns the evaluated index of a seat, false when the seat was excluded.
func (m SeatMap) Index(seat int) (int, bool) {
	if seat < 0 || seat >= len(m.indices) || m.indices[seat] < 0 {
		return 0, false
	}
	return m.indices[seat], true
}

// Len returns the number of evaluated pockets.
func (m SeatMap) Len() int { return len(m.seats) }

// Seats returns the evaluated seats in order.
func (m SeatMap) Seats() []int {
	return append([]int(nil), m.seats...)
}

// Total returns the number of seats in the request.
func (m SeatMap) Total() int { return len(m.indices) }

// deal is a validated request.
type deal struct {
	rules   Rules
	board   []poker.Card
	pockets [][]poker.Card
	dead    []poker.Card
	seats   SeatMap
}

func (r Request) prepare() (*deal, error) {
	rules, err := LookupGame(r.Game)
	if err != nil {
		return nil, err
	}
	if r.Iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, r.Iterations)
	}
	if len(r.Board) > rules.BoardSize {
		return nil, fmt.Errorf("%w: %s takes at most %d board cards, got %d",
			ErrInvalidBoard, rules.Name, rules.BoardSize, len(r.Board))
	}

	d := &deal{rules: rules, seats: newSeatMap(len(r.Pockets))}
	var seen poker.Hand
	track := func(cards []poker.Card, where string) error {
		for _, c := range cards {
			if c == poker.Unknown {
				continue
			}
			if seen.HasCard(c) {
				return fmt.Errorf("%w: %s in %s", poker.ErrDuplicateCard, c, where)
			}
			seen.AddCard(c)
		}
		return nil
	}

	board, err := poker.ParseCardList(r.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	for len(board) < rules.BoardSize {
		board = append(board, poker.Unknown)
	}
	if err := track(board, "board"); err != nil {
		return nil, err
	}
	d.board = board

	for seat, tokens := range r.Pockets {
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) != rules.PocketSize {
			return nil, fmt.Errorf("%w: seat %d has %d cards, %s needs %d",
				ErrInvalidPocket, seat, len(tokens), rules.Name, rules.PocketSize)
		}
		pocket, err := poker.ParseCardList(tokens)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
		if !r.FillPockets && allUnknown(pocket) {
			continue
		}
		if err := track(pocket, fmt.Sprintf("seat %d", seat)); err != nil {
			return nil, err
		}
		d.seats.add(seat)
		d.pockets = append(d.pockets, pocket)
	}
	if len(d.pockets) == 0 {
		return nil, ErrNoActivePockets
	}

	dead, err := poker.ParseCardList(r.Dead)
	if err != nil {
		return nil, fmt.Errorf("dead cards: %w", err)
	}
	for _, c := range dead {
		if c == poker.Unknown {
			return nil, fmt.Errorf("%w: dead cards must be known", poker.ErrInvalidCardFormat)
		}
	}
	if err := track(dead, "dead cards"); err != nil {
		return nil, err
	}
	d.dead = dead
	return d, nil
}

func allUnknown(cards []poker.Card) bool {
	for _, c := range cards {
		if c != poker.Unknown {
			return false
		}
	}
	return true
}
