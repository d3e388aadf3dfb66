package poker

// StartingHand is the canonical name of a two-card hold'em pocket: the higher
// rank first, then "s" for suited or "o" for offsuit, e.g. "AKs", "T9o", "QQ".
type StartingHand string

// Tier is a coarse preflop strength bucket.
type Tier string

const (
	TierPremium Tier = "premium"
	TierStrong  Tier = "strong"
	TierMedium  Tier = "medium"
	TierWeak    Tier = "weak"
	TierTrash   Tier = "trash"
)

// NameStartingHand names a pocket of two concrete cards; ok is false for any
// other pocket.
func NameStartingHand(pocket []Card) (StartingHand, bool) {
	if len(pocket) != 2 || !pocket[0].Valid() || !pocket[1].Valid() || pocket[0] == pocket[1] {
		return "", false
	}
	hi, lo := pocket[0], pocket[1]
	if lo.Rank() > hi.Rank() {
		hi, lo = lo, hi
	}
	name := []byte{rankChars[hi.Rank()], rankChars[lo.Rank()]}
	switch {
	case hi.Rank() == lo.Rank():
	case hi.Suit() == lo.Suit():
		name = append(name, 's')
	default:
		name = append(name, 'o')
	}
	return StartingHand(name), true
}

func (h StartingHand) ranks() (hi, lo uint8, suited, pair bool) {
	if len(h) < 2 {
		return 0, 0, false, false
	}
	hi, lo = rankIndex[h[0]], rankIndex[h[1]]
	return hi, lo, len(h) == 3 && h[2] == 's', hi == lo
}

// Tier buckets the hand: premium is JJ+ and AK, strong is TT, AQ and AJ,
// medium is 77-99 and suited broadway, weak is small pairs and suited
// connectors or one-gappers.
func (h StartingHand) Tier() Tier {
	hi, lo, suited, pair := h.ranks()
	switch {
	case pair && lo >= Jack, hi == Ace && lo == King:
		return TierPremium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return TierStrong
	case pair && lo >= Seven, suited && lo >= Ten:
		return TierMedium
	case pair, suited && hi-lo <= 2:
		return TierWeak
	}
	return TierTrash
}
