package poker

import (
	"fmt"
	"strings"
)

// Card is a compact card index: rank + suit*13, with ranks 0-12 (deuce through
// ace) and suits 0-3 (hearts, diamonds, clubs, spades). Unknown marks a card
// that is still to be dealt.
type Card uint8

// Unknown is the sentinel for a card that has not been revealed yet.
const Unknown Card = 255

// UnknownString is the textual form of Unknown.
const UnknownString = "__"

// NumCards is the size of a standard deck.
const NumCards = 52

// Suit constants, in index order.
const (
	Hearts uint8 = iota
	Diamonds
	Clubs
	Spades
)

// Rank constants, in index order.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "hdcs"
)

// rankIndex and suitIndex map ASCII bytes to rank/suit, or 0xFF when invalid.
var rankIndex, suitIndex = func() (r, s [256]uint8) {
	for i := range r {
		r[i], s[i] = 0xFF, 0xFF
	}
	for i := 0; i < len(rankChars); i++ {
		r[rankChars[i]] = uint8(i)
		r[strings.ToLower(rankChars[i : i+1])[0]] = uint8(i)
	}
	for i := 0; i < len(suitChars); i++ {
		s[suitChars[i]] = uint8(i)
		s[strings.ToUpper(suitChars[i : i+1])[0]] = uint8(i)
	}
	return r, s
}()

// NewCard creates a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(rank + suit*13)
}

// Rank returns the card rank, 0 (deuce) through 12 (ace).
func (c Card) Rank() uint8 {
	return uint8(c) % 13
}

// Suit returns the card suit, 0 (hearts) through 3 (spades).
func (c Card) Suit() uint8 {
	return uint8(c) / 13
}

// Valid reports whether c is a concrete card.
func (c Card) Valid() bool {
	return c < NumCards
}

// String returns the two-character form, "__" for Unknown and "??" for
// anything else out of range.
func (c Card) String() string {
	s, err := Decode(c)
	if err != nil {
		return "??"
	}
	return s
}

// Encode maps a rank and suit character to a card.
func Encode(rank, suit byte) (Card, error) {
	r, s := rankIndex[rank], suitIndex[suit]
	if r == 0xFF {
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCardFormat, rank)
	}
	if s == 0xFF {
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCardFormat, suit)
	}
	return NewCard(r, s), nil
}

// Decode returns the two-character form of a card index.
func Decode(c Card) (string, error) {
	if c == Unknown {
		return UnknownString, nil
	}
	if !c.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidCardIndex, uint8(c))
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]}), nil
}

// ParseCard parses a single card such as "As", "tc" or "__".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be two characters", ErrInvalidCardFormat, s)
	}
	if s == UnknownString {
		return Unknown, nil
	}
	return Encode(s[0], s[1])
}

// MustParseCard parses a card and panics on error (for tests and tables).
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCardList parses a list of card tokens.
func ParseCardList(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseCards parses a compact card string such as "AsKd" or "As Kd __".
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string %q has odd length", ErrInvalidCardFormat, s)
	}
	tokens := make([]string, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		tokens = append(tokens, s[i:i+2])
	}
	return ParseCardList(tokens)
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards renders cards as space separated tokens.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Strings converts cards to their string tokens.
func Strings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
