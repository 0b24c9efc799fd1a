// Package main runs the UDP relay ArtiChat clients talk to.
//
// Usage
//
//	relay [--listen 127.0.0.1:9595] [--log-level info]
//
// Behaviour
//
//   - Every datagram of at least 32 bytes registers its sender under the
//     routing tag in its first 32 bytes.
//   - The remainder of the datagram is sent to every other sender seen with
//     the same tag. The sender never receives its own traffic.
//   - Shorter datagrams are dropped.
//   - State is held in memory and lost on exit. Logs go to stderr.
//
// The relay only ever sees routing tags and sealed payloads, never room keys
// or plaintext.
package main
