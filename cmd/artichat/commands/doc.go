// Package commands defines the artichat CLI.
//
// Commands
//
//   - (root)       Create a room, or join one with -r, and chat in the terminal
//   - keygen       Print a fresh room key
//   - fingerprint  Print the short fingerprint of a room key
//
// # Implementation
//
// The root command resolves configuration before any subcommand runs: it
// loads the optional YAML file named by --config over the defaults, then
// applies only the flags the user actually set. Subcommands read the
// resolved app.Config.
package commands
