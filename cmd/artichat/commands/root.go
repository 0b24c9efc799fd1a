package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"artichat/internal/app"
	"artichat/internal/tui"
)

// flagValues mirrors app.Config for cobra; only changed flags are applied.
type flagValues struct {
	configPath   string
	username     string
	roomKey      string
	port         int
	host         string
	relayAddr    string
	wire         string
	cipher       string
	historyLimit int
	pollInterval time.Duration
	logFile      string
	logLevel     string
}

// Execute runs the artichat command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		flags flagValues
		cfg   app.Config
	)

	root := &cobra.Command{
		Use:           "artichat",
		Short:         "Encrypted room chat over UDP",
		Long:          "Start without a room key to create a room, or pass one with -r to join it.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			cfg = applyFlags(cmd, flags, loaded)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVarP(&flags.username, "username", "u", "", "display name (random when empty)")
	pf.StringVarP(&flags.roomKey, "roomkey", "r", "", "room key to join (a new room is created when empty)")
	pf.IntVarP(&flags.port, "port", "p", app.DefaultPort, "local UDP port when joining")
	pf.StringVar(&flags.host, "host", app.DefaultHost, "local bind host")
	pf.StringVar(&flags.relayAddr, "relay", "", "relay address (default 127.0.0.1:9595)")
	pf.StringVar(&flags.wire, "wire", app.DefaultWire, "wire format: legacy or typed")
	pf.StringVar(&flags.cipher, "cipher", "", "AEAD suite: aes-256-gcm or chacha20-poly1305")
	pf.IntVar(&flags.historyLimit, "history-limit", 0, "keep at most N history entries (0 keeps all)")
	pf.DurationVar(&flags.pollInterval, "poll-interval", 0, "keyboard poll interval (default 100ms)")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (default info)")

	root.AddCommand(keygenCmd(), fingerprintCmd(&cfg))
	return root
}

func applyFlags(cmd *cobra.Command, f flagValues, cfg app.Config) app.Config {
	set := cmd.Flags().Changed
	if set("username") {
		cfg.Username = f.username
	}
	if set("roomkey") {
		cfg.RoomKey = f.roomKey
	}
	if set("port") {
		cfg.Port = f.port
	}
	if set("host") {
		cfg.Host = f.host
	}
	if set("relay") {
		cfg.RelayAddr = f.relayAddr
	}
	if set("wire") {
		cfg.Wire = f.wire
	}
	if set("cipher") {
		cfg.Cipher = f.cipher
	}
	if set("history-limit") {
		cfg.HistoryLimit = f.historyLimit
	}
	if set("poll-interval") {
		cfg.PollInterval = f.pollInterval
	}
	if set("log-file") {
		cfg.LogFile = f.logFile
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg
}

func runChat(cmd *cobra.Command, cfg app.Config) error {
	w, err := app.NewWire(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	if w.Role == app.RoleCreator {
		fmt.Fprintf(cmd.OutOrStdout(), "Room key: %s\nFingerprint: %s\n", w.Config.RoomKey, w.Fingerprint)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := tui.New(tea.WithAltScreen(), tea.WithoutSignalHandler())
	return app.New(w, term).Run(ctx)
}
