package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	GameID    string
	GameFile  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SUDOKU_SERVER", "http://localhost:8080"),
		GameID:    os.Getenv("SUDOKU_GAME"),
		GameFile:  getEnvOrDefault("SUDOKU_GAME_FILE", defaultGameFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadGameID loads the remembered game ID from file if not already set
func (c *Config) LoadGameID() error {
	if c.GameID != "" {
		return nil
	}

	data, err := os.ReadFile(c.GameFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No current game is fine
		}
		return err
	}

	c.GameID = strings.TrimSpace(string(data))
	return nil
}

// SaveGameID remembers a game ID as the current game
func (c *Config) SaveGameID(id string) error {
	c.GameID = id

	dir := filepath.Dir(c.GameFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.GameFile, []byte(id), 0600)
}

// ClearGameID forgets the current game
func (c *Config) ClearGameID() error {
	c.GameID = ""

	if err := os.Remove(c.GameFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultGameFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sudoku/current_game"
	}
	return filepath.Join(home, ".sudoku", "current_game")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
