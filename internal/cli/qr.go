package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newQRCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "qr <team>",
		Short: "Download a team's QR code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, contentType, err := client.GetBytes("/qr/" + args[0])
			if err != nil {
				return err
			}
			if contentType != "image/png" {
				return fmt.Errorf("unexpected content type %q", contentType)
			}

			path := outFile
			if path == "" {
				path = fmt.Sprintf("qr-%s.png", args[0])
			}

			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("QR code saved to %s", path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Output file (default qr-<team>.png)")

	return cmd
}
