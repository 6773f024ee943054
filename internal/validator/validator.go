package validator

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardtrick/internal/card"
	"github.com/arcanaland/cardtrick/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no errors
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	config *deck.DeckConfig
	cards  []card.Card
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck file. The returned error is only set when the file
// cannot be read or decoded; rule violations are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckToml(); err != nil {
		return v.Results, err
	}

	v.validateCards()
	v.validateDuplicates()
	v.validateSize()
	v.validateColorBalance()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckToml() error {
	if _, err := os.Stat(v.DeckPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", deck.ErrDeckNotFound, v.DeckPath)
	}

	config, err := deck.DecodeDeckFile(v.DeckPath)
	if err != nil {
		return err
	}
	v.config = config

	if config.Deck.ID == "" {
		v.errorf("deck.id is required")
	}
	if config.Deck.Name == "" {
		v.errorf("deck.name is required")
	}
	return nil
}

// validateCards parses every card, recording one error per bad entry
func (v *Validator) validateCards() {
	if len(v.config.Deck.Cards) == 0 {
		v.errorf("deck.cards is empty")
		return
	}

	for i, s := range v.config.Deck.Cards {
		c, err := card.Parse(s)
		if err != nil {
			v.errorf("card %d: %v", i+1, err)
			continue
		}
		v.cards = append(v.cards, c)
	}
}

func (v *Validator) validateDuplicates() {
	seen := make(map[card.Card]int)
	for _, c := range v.cards {
		seen[c]++
		if seen[c] == 2 {
			v.errorf("duplicate card: %s", c)
		}
	}
}

// validateSize checks the deck can be fully dealt in pairs
func (v *Validator) validateSize() {
	n := len(v.config.Deck.Cards)
	if n == 0 {
		return
	}
	if n%2 != 0 {
		v.errorf("deck has %d cards; dealing requires an even number", n)
	}
	if full := len(card.Suits) * len(card.Ranks); n != full {
		v.warnf("deck has %d cards (a standard deck has %d)", n, full)
	}
}

func (v *Validator) validateColorBalance() {
	pile := deck.NewPile(v.cards...)
	red, black := pile.Count(card.Red), pile.Count(card.Black)
	if red != black {
		v.errorf("deck has %d red and %d black cards; the trick needs equal counts", red, black)
	}
}
