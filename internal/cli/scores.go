package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Score table commands",
	}

	cmd.AddCommand(newScoresListCmd())
	cmd.AddCommand(newScoresAddCmd())

	return cmd
}

func newScoresListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded scores, best first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ScoreList

			if err := client.Get("/api/v1/scores", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScoresAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Record the current game's score (completed games only)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentGameID()
			if err != nil {
				return err
			}

			var req map[string]string
			if len(args) > 0 {
				req = map[string]string{"player_name": args[0]}
			}

			var result Score
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/score", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
