package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"artichat/internal/logging"
	"artichat/internal/relay"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		listen   string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "relay",
		Short:        "UDP relay that fans ArtiChat datagrams out by room",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := logging.New(logging.Options{Level: logLevel, Out: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := relay.NewServer(logging.Component(log, "relay"))
			if err := srv.ListenAndServe(ctx, listen); err != nil {
				log.WithError(err).Error("relay stopped")
				return err
			}
			log.Info("relay shut down")
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", relay.DefaultAddr, "UDP address to listen on")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}
