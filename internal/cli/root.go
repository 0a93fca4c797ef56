package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "sudoku",
		Short: "CLI tool for the sudoku game API",
		Long: `sudoku is a CLI tool for playing sudoku against the game server's JSON API.

It supports starting games at any difficulty, submitting and erasing values,
requesting hints, checking conflicts and solutions, and browsing the score table.
The most recent game's ID is remembered so commands can omit it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load the remembered game ID if not provided via flag/env
			if err := cfg.LoadGameID(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SUDOKU_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.GameID, "game", cfg.GameID, "Game ID (env: SUDOKU_GAME)")
	rootCmd.PersistentFlags().StringVar(&cfg.GameFile, "game-file", cfg.GameFile, "Current game file path (env: SUDOKU_GAME_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
