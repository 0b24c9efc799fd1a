// Package logging builds the logrus loggers used by the client and relay.
//
// The chat client owns the terminal, so its logs go to a file or nowhere.
// The relay logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options selects the level and destination of a logger.
type Options struct {
	Level string    // logrus level name; empty means info
	File  string    // append to this path when set
	Out   io.Writer // used when File is empty; nil discards
}

// New returns a configured logger and a closer for any file it opened.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		lv, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lv
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: opts.File != ""})

	var closer io.Closer = nopCloser{}
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		l.SetOutput(f)
		closer = f
	case opts.Out != nil:
		l.SetOutput(opts.Out)
	default:
		l.SetOutput(io.Discard)
	}
	return l, closer, nil
}

// Component returns an entry tagged with the component name.
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
