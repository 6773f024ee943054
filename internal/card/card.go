package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Color is the color of a suit
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Suit represents one of the four suits of a standard deck
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in declaration order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = [...]string{"C", "D", "H", "S"}

// Color returns the color permanently associated with the suit
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Symbol returns the single-letter display symbol
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (s Suit) String() string {
	return s.Symbol()
}

// Rank represents a card rank, Ace (1) through King (13)
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

// Ranks lists every rank in ascending order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankSymbols = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Value returns the numeric value of the rank (1-13)
func (r Rank) Value() int {
	return int(r)
}

// Symbol returns the display symbol (A, 2..10, J, Q, K)
func (r Rank) Symbol() string {
	return rankSymbols[r]
}

func (r Rank) String() string {
	return r.Symbol()
}

// Card represents a playing card. Cards are comparable values.
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Color returns the color of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// String renders the card as <rank-symbol><suit-symbol>, e.g. AS, 10H
func (c Card) String() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// Compare orders cards by suit, then by rank
func (c Card) Compare(other Card) int {
	if c.Suit != other.Suit {
		return int(c.Suit) - int(other.Suit)
	}
	return int(c.Rank) - int(other.Rank)
}

// ByColor compares two cards by suit color only, red first
func ByColor(a, b Card) int {
	return int(a.Color()) - int(b.Color())
}

// Parse parses a card in <rank><suit> form, e.g. "AS", "10h", "kc"
func Parse(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rankStr, suitStr := s[:len(s)-1], s[len(s)-1:]

	var rank Rank
	for _, r := range Ranks {
		if r.Symbol() == rankStr {
			rank = r
			break
		}
	}
	if rank == 0 {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, rankStr)
	}

	for _, suit := range Suits {
		if suit.Symbol() == suitStr {
			return New(rank, suit), nil
		}
	}
	return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suitStr)
}

// MustParse is like Parse but panics on error
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
