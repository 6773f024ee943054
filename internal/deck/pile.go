package deck

import (
	"slices"

	"github.com/arcanaland/cardtrick/internal/card"
)

// Pile is an ordered stack of cards. The top of the pile is the last element.
type Pile []card.Card

// NewPile creates a pile holding the given cards, bottom first
func NewPile(cards ...card.Card) Pile {
	return Pile(slices.Clone(cards))
}

// Push places a card on top of the pile
func (p *Pile) Push(c card.Card) {
	*p = append(*p, c)
}

// Pop removes and returns the top card. It panics on an empty pile.
func (p *Pile) Pop() card.Card {
	old := *p
	c := old[len(old)-1]
	*p = old[:len(old)-1]
	return c
}

// PopN removes the top n cards and returns them as a block, keeping their
// relative order.
func (p *Pile) PopN(n int) []card.Card {
	old := *p
	block := slices.Clone(old[len(old)-n:])
	*p = old[:len(old)-n]
	return block
}

// PushAll places the cards on top of the pile in order
func (p *Pile) PushAll(cards []card.Card) {
	*p = append(*p, cards...)
}

// Len returns the number of cards in the pile
func (p Pile) Len() int {
	return len(p)
}

// IsEmpty reports whether the pile has no cards
func (p Pile) IsEmpty() bool {
	return len(p) == 0
}

// Clone returns an independent copy of the pile's cards
func (p Pile) Clone() []card.Card {
	if p == nil {
		return []card.Card{}
	}
	return slices.Clone([]card.Card(p))
}

// Count returns the number of cards of the given color
func (p Pile) Count(color card.Color) int {
	n := 0
	for _, c := range p {
		if c.Color() == color {
			n++
		}
	}
	return n
}

// Shuffle permutes the pile in place using a Fisher-Yates shuffle driven by
// intn, which must return a uniform integer in [0, n).
func (p Pile) Shuffle(intn func(n int) int) {
	for i := len(p) - 1; i > 0; i-- {
		j := intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}
