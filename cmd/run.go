package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtrick/internal/card"
	"github.com/arcanaland/cardtrick/internal/report"
	"github.com/arcanaland/cardtrick/internal/trick"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Perform the card trick",
	Long: `Run shuffles the deck, deals it into red and black piles, checks the color
invariant, swaps cards between the piles, checks the invariant again, and prints
both piles sorted by color.

Examples:
  cardtrick run
  cardtrick run --seed 42 --swap 5
  cardtrick run --deck reduced --times 100`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		swap, _ := cmd.Flags().GetInt("swap")
		times, _ := cmd.Flags().GetInt("times")
		if times < 1 {
			return fmt.Errorf("--times must be at least 1, got %d", times)
		}

		d, err := resolveDeck(deckFlag)
		if err != nil {
			return err
		}

		rng := newSource()
		printer := newPrinter(cmd)
		for i := 0; i < times; i++ {
			logger := newLogger(cmd)
			logger.Printf("run %d/%d with deck %q (%d cards)", i+1, times, d.Name, d.Size())

			tr := trick.NewWithDeck(rng, d.Cards)
			if err := performTrick(tr, swap, logger); err != nil {
				return err
			}
			printPiles(printer, tr)
		}

		if times > 1 {
			printer.Field("Invariant held", fmt.Sprintf("%d/%d runs", times, times))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("deck", "d", "", "Deck from your deck library or a path to a deck file")
	runCmd.Flags().IntP("swap", "n", -1, "Number of cards to swap (-1 picks a random number)")
	runCmd.Flags().Int("times", 1, "Number of times to perform the trick")
}

// performTrick runs shuffle, deal, swap on tr, verifying the color invariant
// after the deal and after the swap. A negative swap picks a random count.
func performTrick(tr *trick.Trick, swap int, logger *log.Logger) error {
	tr.Shuffle()
	logger.Printf("shuffled deck: %v", tr.Deck())

	if err := tr.Deal(); err != nil {
		return fmt.Errorf("error dealing: %w", err)
	}
	logger.Printf("dealt: %d discarded, %d red pile, %d black pile",
		len(tr.Pile(trick.DiscardPile)), len(tr.Pile(trick.RedPile)), len(tr.Pile(trick.BlackPile)))
	if err := tr.Verify(); err != nil {
		return fmt.Errorf("after deal: %w", err)
	}

	if swap < 0 {
		swap = tr.Swap()
	} else if err := tr.SwapN(swap); err != nil {
		return fmt.Errorf("error swapping: %w", err)
	}
	logger.Printf("swapped %d cards", swap)
	if err := tr.Verify(); err != nil {
		return fmt.Errorf("after swap: %w", err)
	}

	logger.Printf("red cards in red pile: %d, black cards in black pile: %d",
		tr.Count(card.Red, trick.PileFor(card.Red)), tr.Count(card.Black, trick.PileFor(card.Black)))
	return nil
}

func printPiles(printer *report.Printer, tr *trick.Trick) {
	for _, color := range []card.Color{card.Red, card.Black} {
		printer.Pile(color.String(), report.SortByColor(tr.Pile(trick.PileFor(color))))
	}
}
