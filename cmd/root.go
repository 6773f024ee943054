package cmd

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtrick/internal/config"
	"github.com/arcanaland/cardtrick/internal/deck"
	"github.com/arcanaland/cardtrick/internal/report"
	"github.com/arcanaland/cardtrick/internal/trick"
)

// cfg holds the loaded config with command-line overrides applied
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardtrick",
	Short: "Simulate the mind-boggling card trick",
	Long: `Cardtrick deals a shuffled deck into red and black piles, swaps a random
number of cards between them, and shows that the red pile always holds as many
red cards as the black pile holds black cards.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("color") {
			loaded.Color, _ = flags.GetString("color")
		}
		if flags.Changed("verbose") {
			loaded.Verbose, _ = flags.GetBool("verbose")
		}
		if flags.Changed("seed") {
			loaded.Seed, _ = flags.GetInt64("seed")
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		cfg = loaded
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	RootCmd.PersistentFlags().String("color", config.ColorAuto, "Color output: auto, always or never")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each step to stderr")
	RootCmd.PersistentFlags().Int64("seed", 0, "Seed for the random source (0 seeds from the clock)")
}

// newSource returns the random source for this invocation
func newSource() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newPrinter(cmd *cobra.Command) *report.Printer {
	return report.NewPrinter(cmd.OutOrStdout(), cfg.Color)
}

// newLogger returns a step logger tagged with a fresh run ID. It discards
// output unless verbose logging is on.
func newLogger(cmd *cobra.Command) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	runID := uuid.New()
	return log.New(cmd.ErrOrStderr(), fmt.Sprintf("[%s] ", runID.String()[:8]), log.Ltime|log.Lmsgprefix)
}

// resolveDeck loads the deck named by the --deck flag or the config. An empty
// name selects the standard deck.
func resolveDeck(name string) (*deck.Deck, error) {
	if name == "" {
		name = cfg.DefaultDeck
	}
	if name == "" || name == "standard" {
		return deck.StandardDeck(), nil
	}

	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		return nil, err
	}
	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}
	if err := trick.CheckDeck(d.Cards); err != nil {
		return nil, fmt.Errorf("deck %q cannot be used: %w", d.Name, err)
	}
	return d, nil
}

var _ trick.Source = (*rand.Rand)(nil)
