// Package tui puts a session on the terminal with Bubble Tea.
//
// Terminal implements both halves of the session's presentation contract:
// it is the KeySource the loop polls for keystrokes and the RenderSink it
// hands snapshots to. The Bubble Tea program runs on its own goroutine and
// never touches session state; keystrokes travel to the loop over a buffered
// channel and snapshots travel back through an atomic pointer the program
// re-reads on a short tick.
package tui
