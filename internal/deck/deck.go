package deck

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardtrick/internal/card"
)

// ErrDeckNotFound is returned when a deck file does not exist
var ErrDeckNotFound = errors.New("deck not found")

// Deck represents a named, ordered set of playing cards loaded from a deck file
type Deck struct {
	ID          string
	Name        string
	Description string
	Path        string

	// Cards in bottom-to-top order
	Cards []card.Card

	// Raw config data
	config *DeckConfig
}

// Standard returns the 52 cards of a standard deck, one per (suit, rank),
// suit-major and bottom first.
func Standard() []card.Card {
	cards := make([]card.Card, 0, len(card.Suits)*len(card.Ranks))
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// StandardDeck returns the built-in standard deck
func StandardDeck() *Deck {
	return &Deck{
		ID:          "standard",
		Name:        "Standard 52-card deck",
		Description: "One card for every suit and rank",
		Cards:       Standard(),
	}
}

// LoadDeck loads a deck from a TOML deck file
func LoadDeck(deckPath string) (*Deck, error) {
	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deckPath)
	}

	config, err := DecodeDeckFile(deckPath)
	if err != nil {
		return nil, err
	}

	cards, err := config.ParseCards()
	if err != nil {
		return nil, fmt.Errorf("error loading cards from %s: %w", deckPath, err)
	}

	return &Deck{
		ID:          config.Deck.ID,
		Name:        config.Deck.Name,
		Description: config.Deck.Description,
		Path:        deckPath,
		Cards:       cards,
		config:      config,
	}, nil
}

// Size returns the number of cards in the deck
func (d *Deck) Size() int {
	return len(d.Cards)
}

// Save writes the deck to path as a TOML deck file
func (d *Deck) Save(path string) error {
	config := DeckConfig{
		Deck: DeckSection{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
		},
	}
	if d.config != nil {
		config.Deck.Tags = d.config.Deck.Tags
	}
	for _, c := range d.Cards {
		config.Deck.Cards = append(config.Deck.Cards, c.String())
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating deck file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding deck: %w", err)
	}
	return nil
}

// DecodeDeckFile decodes a deck file without interpreting its cards
func DecodeDeckFile(path string) (*DeckConfig, error) {
	var config DeckConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return &config, nil
}

// ParseCards parses every card string listed in the deck section
func (c *DeckConfig) ParseCards() ([]card.Card, error) {
	cards := make([]card.Card, 0, len(c.Deck.Cards))
	for i, s := range c.Deck.Cards {
		parsed, err := card.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, parsed)
	}
	return cards, nil
}

// Deck file structures
type DeckConfig struct {
	Deck DeckSection `toml:"deck"`
}

type DeckSection struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Description string   `toml:"description,omitempty"`
	Tags        []string `toml:"tags,omitempty"`
	Cards       []string `toml:"cards"`
}
