package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cardtrick/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeckFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestStandard(t *testing.T) {
	cards := Standard()

	require.Len(t, cards, 52)
	seen := make(map[card.Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Equal(t, 26, NewPile(cards...).Count(card.Red))
	assert.Equal(t, 26, NewPile(cards...).Count(card.Black))
}

func TestLoadDeck(t *testing.T) {
	path := writeDeckFile(t, `
[deck]
id = "reduced"
name = "Reduced deck"
description = "Four aces"
cards = ["AC", "AD", "AH", "AS"]
`)

	d, err := LoadDeck(path)
	require.NoError(t, err)

	assert.Equal(t, "reduced", d.ID)
	assert.Equal(t, "Reduced deck", d.Name)
	assert.Equal(t, "Four aces", d.Description)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, 4, d.Size())
	assert.Equal(t, card.MustParse("AS"), d.Cards[3])
}

func TestLoadDeck_Errors(t *testing.T) {
	_, err := LoadDeck(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrDeckNotFound)

	_, err = LoadDeck(writeDeckFile(t, "[deck\nid ="))
	assert.Error(t, err)

	_, err = LoadDeck(writeDeckFile(t, `
[deck]
id = "bad"
name = "Bad"
cards = ["AS", "XX"]
`))
	assert.ErrorIs(t, err, card.ErrInvalidCard)
}

func TestDeck_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standard.toml")
	require.NoError(t, StandardDeck().Save(path))

	d, err := LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, "standard", d.ID)
	assert.Equal(t, Standard(), d.Cards)
}
