// Package app wires application dependencies for the CLI.
//
// It resolves Config (defaults, YAML file, flag overrides, generated username
// and room key), derives the room's key material, and builds the logger,
// cipher, frame codec and session, exposing them via the Wire struct. App
// then runs that session on a terminal.
package app
