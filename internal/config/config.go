package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardtrick/internal/deck"
)

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	// DefaultDeck is a deck name in the library or a path; empty means the standard deck
	DefaultDeck string `toml:"default_deck"`
	// Seed for the randomness source; 0 seeds from the clock
	Seed    int64  `toml:"seed"`
	Color   string `toml:"color"`
	Verbose bool   `toml:"verbose"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		Color: ColorAuto,
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardtrick", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardtrick", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.Color == "" {
		config.Color = ColorAuto
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return config, nil
}

func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetDeckPath resolves a deck name in the deck library, with or without the
// .toml extension, falling back to treating it as a path
func GetDeckPath(deckName string) (string, error) {
	libraryPath := GetDeckLibraryPath()
	candidates := []string{filepath.Join(libraryPath, deckName)}
	if !strings.HasSuffix(deckName, ".toml") {
		candidates = append(candidates, filepath.Join(libraryPath, deckName+".toml"))
	}
	candidates = append(candidates, deckName)

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s", deck.ErrDeckNotFound, deckName)
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return writeConfig(config)
}
