package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newSpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spin",
		Short: "Spin the daily wheel",
		Long:  "Spin the daily wheel for the account behind the session cookie.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Session == "" {
				return errors.New("spin requires a session cookie (--session or TEAMCTL_SESSION)")
			}

			var result SpinResult
			if err := client.Get("/spin", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
