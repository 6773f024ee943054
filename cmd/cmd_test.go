package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtrick/internal/card"
	"github.com/arcanaland/cardtrick/internal/deck"
	"github.com/arcanaland/cardtrick/internal/trick"
)

var pileLine = regexp.MustCompile(`^(Red|Black) pile: \[(.*)\]$`)

// execute runs the root command with args against a private XDG tree,
// returning stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func setXDG(t *testing.T) (dataHome string) {
	t.Helper()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", dataHome)
	return dataHome
}

func parsePiles(t *testing.T, out string) map[string][]card.Card {
	t.Helper()
	piles := make(map[string][]card.Card)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		m := pileLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var cards []card.Card
		if m[2] != "" {
			for _, s := range strings.Split(m[2], ", ") {
				c, err := card.Parse(s)
				require.NoError(t, err)
				cards = append(cards, c)
			}
		}
		piles[m[1]] = cards
	}
	return piles
}

func countColor(cards []card.Card, color card.Color) int {
	n := 0
	for _, c := range cards {
		if c.Color() == color {
			n++
		}
	}
	return n
}

func writeReducedDeck(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "reduced.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[deck]
id = "reduced"
name = "Reduced deck"
cards = ["8C", "4S", "7D", "3S", "6H", "2D", "5C", "AD"]
`), 0644))
	return path
}

func TestRun_PrintsSortedPiles(t *testing.T) {
	setXDG(t)

	stdout, _, err := execute(t, "run", "--seed", "42", "--color", "never")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Red pile: ["))
	assert.True(t, strings.HasPrefix(lines[1], "Black pile: ["))

	piles := parsePiles(t, stdout)
	assert.Equal(t, 26, len(piles["Red"])+len(piles["Black"]))
	assert.Equal(t, countColor(piles["Red"], card.Red), countColor(piles["Black"], card.Black))

	for _, pile := range piles {
		seenBlack := false
		for _, c := range pile {
			if c.Color() == card.Black {
				seenBlack = true
			}
			assert.False(t, seenBlack && c.Color() == card.Red, "Expected red cards before black cards")
		}
	}
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	setXDG(t)

	first, _, err := execute(t, "run", "--seed", "7", "--color", "never")
	require.NoError(t, err)
	second, _, err := execute(t, "run", "--seed", "7", "--color", "never")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_Times(t *testing.T) {
	setXDG(t)

	stdout, _, err := execute(t, "run", "--seed", "3", "--times", "3", "--color", "never")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(stdout, "Red pile: "))
	assert.Equal(t, 3, strings.Count(stdout, "Black pile: "))
	assert.Contains(t, stdout, "Invariant held: 3/3 runs")

	_, _, err = execute(t, "run", "--times", "0")
	assert.Error(t, err)
}

func TestRun_DeckFileAndExplicitSwap(t *testing.T) {
	setXDG(t)
	path := writeReducedDeck(t, t.TempDir())

	stdout, _, err := execute(t, "run", "--deck", path, "--swap", "0", "--seed", "1", "--color", "never")
	require.NoError(t, err)

	piles := parsePiles(t, stdout)
	assert.Equal(t, 4, len(piles["Red"])+len(piles["Black"]))

	_, _, err = execute(t, "run", "--deck", path, "--swap", "5", "--color", "never")
	assert.ErrorIs(t, err, trick.ErrInvalidArgument)
}

func TestRun_RejectsUntrickableDeckFiles(t *testing.T) {
	testCases := []struct {
		name  string
		cards string
	}{
		{name: "unbalanced", cards: `["AS", "2S", "3S", "4H"]`},
		{name: "duplicate", cards: `["AS", "AS", "AS", "AS"]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setXDG(t)
			path := filepath.Join(t.TempDir(), tc.name+".toml")
			require.NoError(t, os.WriteFile(path, []byte("[deck]\nid = \""+tc.name+"\"\nname = \""+tc.name+"\"\ncards = "+tc.cards+"\n"), 0644))

			stdout, _, err := execute(t, "run", "--deck", path, "--swap", "0", "--color", "never")

			assert.ErrorIs(t, err, trick.ErrPreconditionViolation)
			assert.NotErrorIs(t, err, trick.ErrInvariantViolated)
			assert.Empty(t, stdout)

			stdout, _, err = execute(t, "validate", path)
			assert.Error(t, err)
			assert.NotContains(t, stdout, "is valid")
		})
	}
}

func TestRun_MissingDeck(t *testing.T) {
	setXDG(t)

	_, _, err := execute(t, "run", "--deck", "nowhere")

	assert.ErrorIs(t, err, deck.ErrDeckNotFound)
}

func TestRun_VerboseLogsRunID(t *testing.T) {
	setXDG(t)

	_, stderr, err := execute(t, "run", "--seed", "9", "--verbose", "--color", "never")
	require.NoError(t, err)

	assert.Regexp(t, `\[[0-9a-f]{8}\] `, stderr)
	assert.Contains(t, stderr, "swapped")
}

func TestRun_InvalidColor(t *testing.T) {
	setXDG(t)

	_, _, err := execute(t, "run", "--color", "sometimes")
	assert.Error(t, err)
}

func TestPerformTrick_OddDeck(t *testing.T) {
	tr := trick.NewWithDeck(trick.NewScriptedSource(), []card.Card{card.MustParse("AS")})

	err := performTrick(tr, -1, log.New(io.Discard, "", 0))

	assert.ErrorIs(t, err, trick.ErrPreconditionViolation)
}

func TestBlackjack(t *testing.T) {
	setXDG(t)

	stdout, _, err := execute(t, "blackjack", "--seed", "5", "--color", "never")
	require.NoError(t, err)

	assert.Regexp(t, `(?m)^Player: \[.+\] \(.+\)$`, stdout)
	assert.Regexp(t, `(?m)^Dealer: \[.+\] \(.+\)$`, stdout)
	assert.Regexp(t, `(?m)^Winner: (player|dealer|push)$`, stdout)
}

func TestDeckCommands(t *testing.T) {
	dataHome := setXDG(t)

	stdout, _, err := execute(t, "deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "does not exist")

	_, _, err = execute(t, "deck", "init")
	require.NoError(t, err)
	writeReducedDeck(t, filepath.Join(dataHome, "cardtrick", "decks"))

	stdout, _, err = execute(t, "deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  standard (Standard 52-card deck, 52 cards)")
	assert.Contains(t, stdout, "  reduced (Reduced deck, 8 cards)")

	stdout, _, err = execute(t, "deck", "set-default", "reduced")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Default deck set to: reduced")

	stdout, _, err = execute(t, "deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* reduced (Reduced deck, 8 cards)")

	stdout, _, err = execute(t, "run", "--seed", "2", "--color", "never")
	require.NoError(t, err)
	piles := parsePiles(t, stdout)
	assert.Equal(t, 4, len(piles["Red"])+len(piles["Black"]), "Expected default deck to be used")

	_, _, err = execute(t, "deck", "set-default", "missing")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	setXDG(t)
	dir := t.TempDir()

	stdout, _, err := execute(t, "validate", writeReducedDeck(t, dir))
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")
	assert.Contains(t, stdout, "deck has 8 cards (a standard deck has 52)")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[deck]\nid = \"b\"\nname = \"Bad\"\ncards = [\"AS\"]\n"), 0644))
	stdout, _, err = execute(t, "validate", bad)
	assert.Error(t, err)
	assert.Contains(t, stdout, "1. deck has 1 cards; dealing requires an even number")
}
