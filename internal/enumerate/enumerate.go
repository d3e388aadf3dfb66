// Package enumerate produces the completions of a partially known deal: every
// unknown board or pocket card replaced by a distinct card from the rest of
// the deck, either exhaustively or by Monte Carlo sampling.
package enumerate

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	rand "math/rand/v2"

	"github.com/lox/pokereval/poker"
)

// ErrDeckExhausted is returned when more cards are unknown than remain in the deck.
var ErrDeckExhausted = errors.New("not enough cards left to deal")

// Completion is one fully resolved deal.
type Completion struct {
	Board   []poker.Card
	Pockets [][]poker.Card
}

// Clone returns a deep copy; yielded completions reuse their buffers.
func (c Completion) Clone() Completion {
	out := Completion{
		Board:   append([]poker.Card(nil), c.Board...),
		Pockets: make([][]poker.Card, len(c.Pockets)),
	}
	for i, p := range c.Pockets {
		out.Pockets[i] = append([]poker.Card(nil), p...)
	}
	return out
}

// Cards returns every card of the completion, board first.
func (c Completion) Cards() []poker.Card {
	out := append([]poker.Card(nil), c.Board...)
	for _, p := range c.Pockets {
		out = append(out, p...)
	}
	return out
}

func (c Completion) slot(target int) []poker.Card {
	if target == 0 {
		return c.Board
	}
	return c.Pockets[target-1]
}

// group is a run of unknown positions dealt together: the board (target 0)
// or one pocket (target i+1).
type group struct {
	target    int
	positions []int
}

// Enumerator deals the unknown cards of a deal.
type Enumerator struct {
	template Completion
	groups   []group
	used     poker.Hand
	deck     []poker.Card
	needed   int
}

// New prepares an enumerator. Board and pockets may contain poker.Unknown;
// dead cards are excluded from dealing. Concrete duplicates are rejected.
func New(board []poker.Card, pockets [][]poker.Card, dead []poker.Card) (*Enumerator, error) {
	e := &Enumerator{template: Completion{
		Board:   append([]poker.Card(nil), board...),
		Pockets: make([][]poker.Card, len(pockets)),
	}}

	add := func(c poker.Card, where string) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %s holds card index %d", poker.ErrInvalidCardIndex, where, uint8(c))
		}
		if e.used.HasCard(c) {
			return fmt.Errorf("%w: %s in %s", poker.ErrDuplicateCard, c, where)
		}
		e.used.AddCard(c)
		return nil
	}

	var unknown []int
	collect := func(target int, cards []poker.Card, where string) error {
		unknown = unknown[:0]
		for i, c := range cards {
			if c == poker.Unknown {
				unknown = append(unknown, i)
				continue
			}
			if err := add(c, where); err != nil {
				return err
			}
		}
		if len(unknown) > 0 {
			e.groups = append(e.groups, group{target: target, positions: append([]int(nil), unknown...)})
			e.needed += len(unknown)
		}
		return nil
	}

	if err := collect(0, e.template.Board, "board"); err != nil {
		return nil, err
	}
	for i, p := range pockets {
		e.template.Pockets[i] = append([]poker.Card(nil), p...)
		if err := collect(i+1, e.template.Pockets[i], fmt.Sprintf("pocket %d", i)); err != nil {
			return nil, err
		}
	}
	for _, c := range dead {
		if err := add(c, "dead cards"); err != nil {
			return nil, err
		}
	}

	e.deck = poker.NewDeckWithout(e.used, nil).Cards()
	if e.needed > len(e.deck) {
		return nil, fmt.Errorf("%w: %d unknown cards, %d left", ErrDeckExhausted, e.needed, len(e.deck))
	}
	return e, nil
}

// Needed returns the number of unknown cards to deal per completion.
func (e *Enumerator) Needed() int { return e.needed }

// Remaining returns the number of cards available for dealing.
func (e *Enumerator) Remaining() int { return len(e.deck) }

// Count returns the number of exhaustive completions; false when it does not
// fit in a uint64.
func (e *Enumerator) Count() (uint64, bool) {
	total := uint64(1)
	remaining := len(e.deck)
	for _, g := range e.groups {
		k := len(g.positions)
		hi, lo := bits.Mul64(total, binomial(remaining, k))
		if hi != 0 {
			return 0, false
		}
		total = lo
		remaining -= k
	}
	return total, true
}

// Exhaustive yields every distinct completion in a fixed order. With nothing
// unknown it yields exactly one. The sequence can be iterated repeatedly.
func (e *Enumerator) Exhaustive() iter.Seq[Completion] {
	return e.ExhaustivePart(0, 1)
}

// ExhaustivePart yields the completions whose first-group combination index
// is congruent to part modulo parts, in the same order as Exhaustive. The
// parts 0..parts-1 are disjoint and together cover Exhaustive; only the
// combinations of the first group are walked by every part.
func (e *Enumerator) ExhaustivePart(part, parts int) iter.Seq[Completion] {
	parts = max(parts, 1)
	return func(yield func(Completion) bool) {
		if part < 0 || part >= parts {
			return
		}
		if len(e.groups) == 0 && part != 0 {
			return
		}
		c := e.template.Clone()
		e.fill(c, 0, e.used, part, parts, yield)
	}
}

func (e *Enumerator) fill(c Completion, g int, used poker.Hand, part, parts int, yield func(Completion) bool) bool {
	if g == len(e.groups) {
		return yield(c)
	}
	grp := e.groups[g]
	avail := make([]poker.Card, 0, len(e.deck))
	for _, card := range e.deck {
		if !used.HasCard(card) {
			avail = append(avail, card)
		}
	}
	dst := c.slot(grp.target)
	n := -1
	return combinations(len(avail), len(grp.positions), func(idx []int) bool {
		n++
		if n%parts != part {
			return true
		}
		picked := used
		for i, j := range idx {
			dst[grp.positions[i]] = avail[j]
			picked.AddCard(avail[j])
		}
		return e.fill(c, g+1, picked, 0, 1, yield)
	})
}

// MonteCarlo yields n independent uniformly random completions drawn with
// rng. Every sample is dealt without replacement from the remaining deck.
func (e *Enumerator) MonteCarlo(rng *rand.Rand, n int) iter.Seq[Completion] {
	return func(yield func(Completion) bool) {
		c := e.template.Clone()
		deck := poker.NewDeckWithout(e.used, rng)
		for range n {
			drawn := deck.Sample(e.needed)
			k := 0
			for _, grp := range e.groups {
				dst := c.slot(grp.target)
				for _, p := range grp.positions {
					dst[p] = drawn[k]
					k++
				}
			}
			if !yield(c) {
				return
			}
		}
	}
}

// combinations calls fn with every k-subset of 0..n-1 in lexicographic order
// until fn returns false.
func combinations(n, k int, fn func([]int) bool) bool {
	if k > n {
		return true
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return false
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := uint64(1)
	for i := 0; i < k; i++ {
		r = r * uint64(n-i) / uint64(i+1)
	}
	return r
}
