// Package session drives one client's membership in an ArtiChat room.
//
// A Session moves through three states:
//
//	Initializing -> Active -> Terminated
//
// Open binds the local UDP socket, connects it to the relay and announces the
// user with a presence frame. Run then repeats a tick until the user
// interrupts or the socket fails:
//
//  1. poll the socket without blocking and fold any datagram into the
//     participant list or history
//  2. hand a snapshot to the render sink
//  3. wait a bounded time for one keystroke and apply it
//
// Cryptographic and protocol failures are contained to the datagram that
// caused them. Only socket errors end the session.
//
// Concurrency: a Session is NOT safe for concurrent use. Run owns it for the
// whole loop; snapshots passed to the sink are copies.
package session
