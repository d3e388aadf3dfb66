package poker

import "errors"

var (
	// ErrInvalidCardFormat is returned for malformed card tokens.
	ErrInvalidCardFormat = errors.New("invalid card format")
	// ErrInvalidCardIndex is returned when decoding an index outside 0-51 other than Unknown.
	ErrInvalidCardIndex = errors.New("invalid card index")
	// ErrInvalidHand is returned when a ranker receives the wrong number of cards,
	// a duplicate, or an unknown card.
	ErrInvalidHand = errors.New("invalid hand")
	// ErrDuplicateCard is returned when the same concrete card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)
