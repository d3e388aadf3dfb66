package poker

import (
	rand "math/rand/v2"
)

// Deck holds the cards that can still be dealt.
type Deck struct {
	cards [NumCards]Card // Fixed size array, live cards in cards[:size]
	size  int
	rng   *rand.Rand // Random source for deterministic sampling
}

// NewDeckWithout creates an unshuffled deck of every card not in used, in
// ascending index order.
func NewDeckWithout(used Hand, rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for c := Card(0); c < NumCards; c++ {
		if !used.HasCard(c) {
			d.cards[d.size] = c
			d.size++
		}
	}
	return d
}

// Sample returns n uniformly chosen distinct cards using a partial
// Fisher-Yates shuffle. The returned slice aliases the deck and is only valid
// until the next call.
func (d *Deck) Sample(n int) []Card {
	if n > d.size {
		return nil
	}
	for i := 0; i < n; i++ {
		j := i + d.intN(d.size-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d.cards[:n]
}

// Cards returns a copy of the live cards in their current order.
func (d *Deck) Cards() []Card {
	out := make([]Card, d.size)
	copy(out, d.cards[:d.size])
	return out
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}
