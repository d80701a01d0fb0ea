// Package cli implements teamctl, a small client for the JSON
// endpoints of the wheel server.
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
		Use:   "teamctl",
		Short: "CLI tool for the team wheel API",
		Long: `teamctl talks to the team wheel JSON API.

It can check server health, spin the wheel for a logged-in session,
adjust team scores and download per-team QR codes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.Session, cfg.AdminToken)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: TEAMCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Session, "session", cfg.Session, "Session cookie value (env: TEAMCTL_SESSION)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "Admin token for score updates (env: TEAMCTL_ADMIN_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newQRCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
