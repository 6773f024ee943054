// Package trick implements the mind-boggling card trick: a shuffled deck is
// dealt into a red pile, a black pile and a discard pile, then random blocks
// of cards are swapped between the red and black piles. However the deal and
// the swaps fall, the number of red cards in the red pile always equals the
// number of black cards in the black pile.
package trick

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/arcanaland/cardtrick/internal/card"
	"github.com/arcanaland/cardtrick/internal/deck"
)

var (
	// ErrInvalidArgument is returned by SwapN for an out-of-range count
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPreconditionViolation is returned by Deal for a deck that cannot keep the
	// color invariant: odd size, duplicate cards or unequal red and black counts
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrInvariantViolated is returned by Verify when the color counts diverge
	ErrInvariantViolated = errors.New("color invariant violated")
)

// Source supplies uniformly distributed integers in [0, n). *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

// PileID names one of the three piles cards are dealt to. The zero value is
// the discard pile.
type PileID int

const (
	DiscardPile PileID = iota
	RedPile
	BlackPile
)

// PileFor returns the pile associated with a color
func PileFor(color card.Color) PileID {
	if color == card.Red {
		return RedPile
	}
	return BlackPile
}

func (p PileID) String() string {
	switch p {
	case RedPile:
		return "Red"
	case BlackPile:
		return "Black"
	default:
		return "Discard"
	}
}

// Trick holds the deck and piles of a single run of the trick. It is not safe
// for concurrent use.
type Trick struct {
	rng       Source
	deck      deck.Pile
	discard   deck.Pile
	redPile   deck.Pile
	blackPile deck.Pile
}

// New creates a trick over an unshuffled standard deck, seeded from the clock
func New() *Trick {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSource creates a trick over an unshuffled standard deck using rng
func NewWithSource(rng Source) *Trick {
	return NewWithDeck(rng, deck.Standard())
}

// NewWithDeck creates a trick over the given cards, bottom first. The caller
// keeps ownership of cards.
func NewWithDeck(rng Source, cards []card.Card) *Trick {
	return &Trick{
		rng:  rng,
		deck: deck.NewPile(cards...),
	}
}

// Shuffle independently permutes the deck, the red pile and the black pile.
// The discard pile keeps its deal order.
func (t *Trick) Shuffle() {
	t.deck.Shuffle(t.rng.Intn)
	t.redPile.Shuffle(t.rng.Intn)
	t.blackPile.Shuffle(t.rng.Intn)
}

// CheckDeck reports whether cards can be dealt so that the color invariant
// holds: an even number of distinct cards, as many red as black.
func CheckDeck(cards []card.Card) error {
	if len(cards)%2 != 0 {
		return fmt.Errorf("%w: deck has %d cards, deal needs an even number", ErrPreconditionViolation, len(cards))
	}

	seen := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrPreconditionViolation, c)
		}
		seen[c] = true
	}

	pile := deck.Pile(cards)
	if red, black := pile.Count(card.Red), pile.Count(card.Black); red != black {
		return fmt.Errorf("%w: deck has %d red and %d black cards", ErrPreconditionViolation, red, black)
	}
	return nil
}

// Deal empties the deck two cards at a time. The first card drawn selects the
// pile: the second goes to the red pile if the selector is red, otherwise to
// the black pile. Selectors go to the discard pile in deal order. The deck
// must pass CheckDeck; otherwise nothing is dealt.
func (t *Trick) Deal() error {
	if err := CheckDeck(t.deck); err != nil {
		return err
	}

	for !t.deck.IsEmpty() {
		selector := t.deck.Pop()
		dealt := t.deck.Pop()
		if selector.Color() == card.Red {
			t.redPile.Push(dealt)
		} else {
			t.blackPile.Push(dealt)
		}
		t.discard.Push(selector)
	}
	return nil
}

// Swap exchanges a random number of cards, drawn uniformly from
// [0, min(|red|, |black|)], between the red and black piles. It returns the
// number of cards swapped.
func (t *Trick) Swap() int {
	n := t.rng.Intn(t.maxSwap() + 1)
	t.swap(n)
	return n
}

// SwapN removes the top n cards from each of the red and black piles and
// places each block on top of the opposite pile.
func (t *Trick) SwapN(n int) error {
	if limit := t.maxSwap(); n < 0 || n > limit {
		return fmt.Errorf("%w: swap count %d outside [0, %d]", ErrInvalidArgument, n, limit)
	}
	t.swap(n)
	return nil
}

func (t *Trick) swap(n int) {
	fromRed := t.redPile.PopN(n)
	fromBlack := t.blackPile.PopN(n)
	t.redPile.PushAll(fromBlack)
	t.blackPile.PushAll(fromRed)
}

func (t *Trick) maxSwap() int {
	return min(t.redPile.Len(), t.blackPile.Len())
}

// Deck returns a copy of the deck, bottom first
func (t *Trick) Deck() []card.Card {
	return t.deck.Clone()
}

// Pile returns a copy of the requested pile, bottom first
func (t *Trick) Pile(id PileID) []card.Card {
	return t.pile(id).Clone()
}

// Count returns the number of cards of cardColor in the requested pile
func (t *Trick) Count(cardColor card.Color, id PileID) int {
	return t.pile(id).Count(cardColor)
}

func (t *Trick) pile(id PileID) deck.Pile {
	switch id {
	case RedPile:
		return t.redPile
	case BlackPile:
		return t.blackPile
	default:
		return t.discard
	}
}

// Verify checks that the red pile holds as many red cards as the black pile
// holds black cards.
func (t *Trick) Verify() error {
	red := t.Count(card.Red, PileFor(card.Red))
	black := t.Count(card.Black, PileFor(card.Black))
	if red != black {
		return fmt.Errorf("%w: %d red cards in red pile, %d black cards in black pile", ErrInvariantViolated, red, black)
	}
	return nil
}
