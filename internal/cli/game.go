package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameResumeCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGameEraseCmd())
	cmd.AddCommand(newGameHintCmd())
	cmd.AddCommand(newGameConflictsCmd())
	cmd.AddCommand(newGameCheckCmd())
	cmd.AddCommand(newGameAbandonCmd())

	return cmd
}

// currentGameID resolves the game ID from the --game flag, SUDOKU_GAME
// env or the remembered current game
func currentGameID() (string, error) {
	if cfg.GameID == "" {
		return "", fmt.Errorf("no current game; start one with 'sudoku game new' or pass --game")
	}
	return cfg.GameID, nil
}

func newGameNewCmd() *cobra.Command {
	var emptyCells int

	cmd := &cobra.Command{
		Use:   "new [difficulty]",
		Short: "Start a new game (easy, medium, hard, expert; default medium)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty := "medium"
			if len(args) > 0 {
				difficulty = args[0]
			}

			req := map[string]any{"difficulty": difficulty}
			if emptyCells > 0 {
				req["empty_cells"] = emptyCells
			}

			var result Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			// Remember the new game so later commands can omit the ID
			if err := cfg.SaveGameID(result.ID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&emptyCells, "empty-cells", 0, "Override the number of carved cells")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current game",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			var result Game
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Resume a saved game and make it the current game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/resume", id), nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveGameID(result.ID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <row> <col> <value>",
		Short: "Submit a value into a cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}

			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid value: %w", err)
			}

			req := map[string]int{"row": row, "col": col, "value": value}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameEraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "erase <row> <col>",
		Short: "Clear a cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}

			req := map[string]int{"row": row, "col": col, "value": 0}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint [row col]",
		Short: "Reveal a cell from the solution (first empty cell if no coordinates)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return fmt.Errorf("hint needs both row and col, or neither")
			}

			var req map[string]int
			if len(args) == 2 {
				row, col, err := parseCoords(args[0], args[1])
				if err != nil {
					return err
				}
				req = map[string]int{"row": row, "col": col}
			}

			var result HintResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/hints", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts <row> <col>",
		Short: "Show cells conflicting with the value at a cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}

			var result ConflictsResult
			path := fmt.Sprintf("/api/v1/games/%s/conflicts?row=%d&col=%d", id, row, col)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the board against the solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			var result CheckResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/check", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon",
		Short: "Abandon the current game",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", id)); err != nil {
				return err
			}

			if err := cfg.ClearGameID(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game abandoned")
			return nil
		},
	}
}

func parseCoords(rowArg, colArg string) (int, int, error) {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row: %w", err)
	}

	col, err := strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col: %w", err)
	}

	return row, col, nil
}
