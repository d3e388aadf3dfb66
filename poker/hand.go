package poker

import (
	"fmt"
	"math/bits"
)

// Hand is a bitset of cards, bit n set when card index n is present.
type Hand uint64

const suitBits = 0x1FFF

// NewHand creates a hand from concrete cards; Unknown cards are ignored.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// AddCard adds a concrete card to the hand.
func (h *Hand) AddCard(c Card) {
	if c.Valid() {
		*h |= 1 << c
	}
}

// HasCard reports whether the card is in the hand.
func (h Hand) HasCard(c Card) bool {
	return c.Valid() && h&(1<<c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the 13-bit rank mask of one suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(uint64(h)>>(uint(suit)*13)) & suitBits
}

// suitMasks returns the rank masks of all four suits.
func (h Hand) suitMasks() [4]uint16 {
	return [4]uint16{
		h.GetSuitMask(Hearts),
		h.GetSuitMask(Diamonds),
		h.GetSuitMask(Clubs),
		h.GetSuitMask(Spades),
	}
}

// Cards lists the cards of the hand in ascending index order.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.CountCards())
	for m := uint64(h); m != 0; m &= m - 1 {
		out = append(out, Card(bits.TrailingZeros64(m)))
	}
	return out
}

// String renders the hand's cards.
func (h Hand) String() string {
	return FormatCards(h.Cards())
}

// handFromCards builds a hand and rejects unknown or duplicate cards.
func handFromCards(cards []Card) (Hand, error) {
	var h Hand
	for _, c := range cards {
		if !c.Valid() {
			return 0, fmt.Errorf("%w: card %s is not a concrete card", ErrInvalidHand, c)
		}
		if h.HasCard(c) {
			return 0, fmt.Errorf("%w: %s appears twice", ErrInvalidHand, c)
		}
		h.AddCard(c)
	}
	return h, nil
}
