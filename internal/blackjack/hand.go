package blackjack

import (
	"github.com/arcanaland/cardtrick/internal/card"
)

const (
	// Target is the best total a hand can reach without busting
	Target = 21
	// Natural is the score given to a two-card 21, so it beats any other 21
	Natural = Target + 1
	// DealerStand is the total at which the dealer stops drawing
	DealerStand = 17
)

// Hand is a blackjack hand. The zero value is an empty hand.
type Hand struct {
	cards    []card.Card
	rawValue int
	aces     int
}

// Add adds a card to the hand
func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
	h.rawValue += min(10, c.Rank.Value())
	if c.Rank == card.Ace {
		h.aces++
	}
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []card.Card {
	return append([]card.Card(nil), h.cards...)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value scores the hand. A bust scores 0, one ace counts 11 when that does
// not bust, and a two-card 21 scores Natural.
func (h *Hand) Value() int {
	value := h.rawValue
	if h.rawValue > Target {
		value = 0
	} else if h.rawValue <= Target-10 && h.aces > 0 {
		value += 10
	}
	if value == Target && len(h.cards) == 2 {
		value = Natural
	}
	return value
}

// Bust reports whether the hand has gone over 21
func (h *Hand) Bust() bool {
	return h.rawValue > Target
}

// Compare returns a positive number if h beats other, negative if other
// wins, and 0 on a push.
func (h *Hand) Compare(other *Hand) int {
	return h.Value() - other.Value()
}
