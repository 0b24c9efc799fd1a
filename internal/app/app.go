package app

import (
	"context"
	"errors"

	"artichat/internal/tui"
)

// App runs a wired session on a terminal.
type App struct {
	Wire     *Wire
	Terminal *tui.Terminal
}

// New returns an App running wire's session on terminal.
func New(wire *Wire, terminal *tui.Terminal) *App {
	return &App{Wire: wire, Terminal: terminal}
}

// Run opens the session, starts the terminal and drives the session loop
// until it terminates. The terminal is restored on every path.
func (a *App) Run(ctx context.Context) error {
	if err := a.Wire.Session.Open(ctx); err != nil {
		return err
	}
	a.Terminal.Start()
	runErr := a.Wire.Session.Run(ctx, a.Terminal, a.Terminal)
	return errors.Join(runErr, a.Terminal.Stop())
}
