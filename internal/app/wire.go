package app

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"artichat/internal/crypto"
	"artichat/internal/domain"
	"artichat/internal/logging"
	"artichat/internal/protocol/frame"
	"artichat/internal/session"
)

// Wire bundles the resolved config, logger and session for the CLI.
type Wire struct {
	Config      Config
	Role        Role
	Fingerprint string
	Log         *logrus.Logger
	Session     *session.Session

	logCloser io.Closer
}

// NewWire constructs the dependency graph from cfg. Key derivation runs
// before the session exists, so a short room key never yields a session.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	role, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	key, tag, err := DeriveForWire(cfg.Wire, cfg.RoomKey)
	if err != nil {
		return nil, err
	}
	suite, err := crypto.ParseSuite(cfg.Cipher)
	if err != nil {
		return nil, err
	}
	engine, err := crypto.NewEngine(suite, key)
	if err != nil {
		return nil, err
	}
	codec, err := frame.ForWire(cfg.Wire)
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}

	sess := session.New(session.Config{
		Username:     cfg.Username,
		RoomKey:      cfg.RoomKey,
		LocalAddr:    cfg.LocalAddr(role),
		RelayAddr:    cfg.RelayAddr,
		PollInterval: cfg.PollInterval,
		HistoryLimit: cfg.HistoryLimit,
	}, tag, codec, engine, logging.Component(log, "session"))

	log.WithFields(logrus.Fields{
		"role":   role.String(),
		"user":   cfg.Username,
		"wire":   cfg.Wire,
		"cipher": cfg.Cipher,
	}).Info("session configured")

	return &Wire{
		Config:      cfg,
		Role:        role,
		Fingerprint: crypto.Fingerprint(tag),
		Log:         log,
		Session:     sess,
		logCloser:   closer,
	}, nil
}

// DeriveForWire picks the key derivation that matches a wire mode: raw for
// legacy peers, labelled for typed frames.
func DeriveForWire(wire, roomKey string) (domain.CipherKey, domain.RoutingTag, error) {
	if wire == "typed" {
		return crypto.DeriveLabelled(roomKey)
	}
	return crypto.Derive(roomKey)
}

// Close releases the session socket and the log file.
func (w *Wire) Close() error {
	_ = w.Session.Close()
	return w.logCloser.Close()
}
