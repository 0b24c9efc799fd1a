// Package relay implements the UDP fan-out service ArtiChat clients connect
// to.
//
// The relay never decrypts anything. It reads the 32-byte routing tag at the
// front of each datagram, remembers the sender as a member of that room, and
// forwards the rest of the datagram (tag stripped) to every other member of
// the same room.
//
// Behaviour
//
//   - Datagrams shorter than the routing tag are dropped.
//   - Membership is learned from traffic and held in memory until the process
//     exits; there is no leave or timeout handling.
//   - Forwarding is best effort. A failed write to one member is logged and
//     does not affect the others.
package relay
