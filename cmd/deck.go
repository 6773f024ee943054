package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cardtrick/internal/config"
	"github.com/arcanaland/cardtrick/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing deck files in your deck library.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'cardtrick deck init' to create it.")
			return nil
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		listed := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			d, err := deck.LoadDeck(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid deck, skip
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".toml")
			marker := " "
			if name == cfg.DefaultDeck || entry.Name() == cfg.DefaultDeck {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s (%s, %d cards)\n", marker, name, d.Name, d.Size())
			listed++
		}

		if listed == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add deck files to:", libraryPath)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}

		if _, err := deck.LoadDeck(deckPath); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library with the standard deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		standardPath := filepath.Join(libraryPath, "standard.toml")
		if _, err := os.Stat(standardPath); os.IsNotExist(err) {
			if err := deck.StandardDeck().Save(standardPath); err != nil {
				return err
			}
		}

		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)
		fmt.Fprintln(out, "Config file at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
