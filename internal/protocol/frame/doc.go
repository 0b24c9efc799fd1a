// Package frame encodes and classifies ArtiChat datagrams.
//
// Every outbound datagram starts with the 32-byte routing tag so a relay can
// group traffic by room. The relay strips the tag before forwarding, so
// Classify always sees the remainder.
//
// Two codecs exist:
//
//   - SizeCodec: the reference wire format. There is no type byte; anything
//     shorter than MessageThreshold is a presence announcement and everything
//     else is an encrypted message.
//   - TypedCodec: prefixes a one-byte frame type after the routing tag so long
//     display names are never mistaken for messages.
//
// Peers in one room must agree on the codec.
package frame
