package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Team score operations",
	}

	scoreCmd.AddCommand(newScoreAdjustCmd())

	return scoreCmd
}

func newScoreAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <team> <delta>",
		Short: "Apply a signed delta to a team's score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta must be an integer: %w", err)
			}

			body := map[string]any{
				"team_id": args[0],
				"delta":   delta,
			}

			var result ScoreResult
			if err := client.Post("/update_score", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
