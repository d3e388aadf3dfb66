package poker

import "fmt"

// HandType enumerates hand categories from weakest to strongest.
type HandType uint8

const (
	NoPair HandType = iota
	OnePair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

// Nothing is reported for a low side that does not qualify.
const Nothing HandType = 0xFF

var handTypeNames = [...]string{
	NoPair:        "NoPair",
	OnePair:       "OnePair",
	TwoPair:       "TwoPair",
	Trips:         "Trips",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "FlHouse",
	Quads:         "Quads",
	StraightFlush: "StFlush",
}

// String returns the short category label used in reports.
func (t HandType) String() string {
	if t == Nothing {
		return "Nothing"
	}
	if int(t) < len(handTypeNames) {
		return handTypeNames[t]
	}
	return "Unknown"
}

// HandValue is a totally ordered hand strength; higher is better.
//
// High hands use the layout type<<24 | r1<<16 | r2<<12 | r3<<8 | r4<<4 | r5
// where r1..r5 are the significant ranks in comparison order. Low hands store
// LowCeiling minus the same layout computed over low-ordered ranks, so that
// the better low also compares higher.
type HandValue uint32

const (
	typeShift = 24
	rankShift = 16
	// LowCeiling is strictly greater than any raw low encoding.
	LowCeiling HandValue = 1 << 28
)

// Type returns the category of a high hand value.
func (v HandValue) Type() HandType {
	return HandType(v >> typeShift)
}

// Ranks returns the five significant rank nibbles in comparison order.
func (v HandValue) Ranks() [5]uint8 {
	return [5]uint8{
		uint8(v>>16) & 0xF,
		uint8(v>>12) & 0xF,
		uint8(v>>8) & 0xF,
		uint8(v>>4) & 0xF,
		uint8(v) & 0xF,
	}
}

// significantRanks is the number of rank nibbles each category encodes.
var significantRanks = [...]int{
	NoPair:        5,
	OnePair:       4,
	TwoPair:       3,
	Trips:         3,
	Straight:      1,
	Flush:         5,
	FullHouse:     2,
	Quads:         2,
	StraightFlush: 1,
}

// lowRankChars renders ranks in ace-low order.
const lowRankChars = "A23456789TJQK"

// String describes a high hand value. Values outside the high layout, such
// as stored lows, are printed numerically.
func (v HandValue) String() string {
	if s, ok := describe(v, rankChars); ok {
		return s
	}
	return fmt.Sprintf("HandValue(%d)", uint32(v))
}

// LowString describes a low value produced under discipline d.
func (v HandValue) LowString(d LowDiscipline) string {
	if v == 0 || v > LowCeiling {
		return fmt.Sprintf("HandValue(%d)", uint32(v))
	}
	chars := lowRankChars
	switch d {
	case DeuceToSeven:
		chars = rankChars
	case AceToFive, EightOrBetter:
	default:
		return v.String()
	}
	if s, ok := describe(v.LowRaw(), chars); ok {
		return s
	}
	return fmt.Sprintf("HandValue(%d)", uint32(v))
}

func describe(v HandValue, chars string) (string, bool) {
	t := v.Type()
	if int(t) >= len(significantRanks) {
		return "", false
	}
	ranks := v.Ranks()
	out := make([]byte, 0, 5)
	for i, r := range ranks {
		if int(r) >= len(chars) {
			return "", false
		}
		if i < significantRanks[t] {
			out = append(out, chars[r])
		} else if r != 0 {
			return "", false
		}
	}
	return t.String() + " " + string(out), true
}

// Compare returns 1 if v beats other, -1 if it loses and 0 on a tie.
func (v HandValue) Compare(other HandValue) int {
	switch {
	case v > other:
		return 1
	case v < other:
		return -1
	}
	return 0
}

// LowRaw recovers the raw low encoding (lower is better) from a low value.
func (v HandValue) LowRaw() HandValue {
	return LowCeiling - v
}

func encode(t HandType, ranks ...uint8) HandValue {
	v := HandValue(t) << typeShift
	shift := rankShift
	for _, r := range ranks {
		v |= HandValue(r) << shift
		shift -= 4
	}
	return v
}

// encodeGroups encodes exactly five cards, given as per-rank counts indexed
// by rank order, ignoring straights and flushes. Ranks are ordered by group
// size then rank, both descending.
func encodeGroups(counts *[13]uint8) HandValue {
	var ranks [5]uint8
	var shape [5]uint8
	groups := 0
	for size := uint8(4); size >= 1; size-- {
		for r := 12; r >= 0; r-- {
			if counts[r] != size {
				continue
			}
			ranks[groups] = uint8(r)
			shape[groups] = size
			groups++
		}
	}
	var t HandType
	switch {
	case shape[0] == 4:
		t = Quads
	case shape[0] == 3 && shape[1] == 2:
		t = FullHouse
	case shape[0] == 3:
		t = Trips
	case shape[0] == 2 && shape[1] == 2:
		t = TwoPair
	case shape[0] == 2:
		t = OnePair
	default:
		t = NoPair
	}
	return encode(t, ranks[:groups]...)
}
