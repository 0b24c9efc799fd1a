package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"artichat/internal/app"
	"artichat/internal/crypto"
)

func fingerprintCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a room key (-r)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.RoomKey == "" {
				return errors.New("room key required (-r)")
			}
			_, tag, err := app.DeriveForWire(cfg.Wire, cfg.RoomKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(tag))
			return nil
		},
	}
	return cmd
}
