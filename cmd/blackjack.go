package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtrick/internal/blackjack"
	"github.com/arcanaland/cardtrick/internal/deck"
)

var blackjackCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Deal a round of blackjack against the dealer",
	Long: `Blackjack shuffles a standard deck, deals two cards each to the player and the
dealer, and draws for both until they reach 17 or bust. A two-card 21 beats any
other 21.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newSource()
		logger := newLogger(cmd)

		shoe := deck.NewPile(deck.Standard()...)
		shoe.Shuffle(rng.Intn)
		logger.Printf("shuffled shoe: %v", shoe)

		round, err := blackjack.PlayRound(&shoe)
		if err != nil {
			return fmt.Errorf("error playing round: %w", err)
		}

		printer := newPrinter(cmd)
		printer.Field("Player", fmt.Sprintf("%s (%s)", printer.Cards(round.Player.Cards()), describe(round.Player)))
		printer.Field("Dealer", fmt.Sprintf("%s (%s)", printer.Cards(round.Dealer.Cards()), describe(round.Dealer)))
		printer.Field("Winner", round.Winner())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(blackjackCmd)
}

func describe(h *blackjack.Hand) string {
	switch {
	case h.Bust():
		return "bust"
	case h.Value() == blackjack.Natural:
		return "blackjack"
	default:
		return fmt.Sprintf("%d", h.Value())
	}
}
