package cmd

import (
	"fmt"

	"github.com/arcanaland/cardtrick/internal/config"
	"github.com/arcanaland/cardtrick/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck]",
	Short: "Validate a deck file",
	Long: `Validate checks that a deck file can be used for the card trick: every card
parses, no card appears twice, and the deck has an even number of cards.
The deck may be a name in your deck library or a path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		v := validator.NewValidator(deckPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Deck '%s' is valid.\n", deckPath)
		} else {
			fmt.Fprintf(out, "❌ Deck '%s' has %d validation errors:\n", deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
