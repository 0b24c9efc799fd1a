// Package crypto exposes the primitives behind an ArtiChat room.
//
// Contents
//
//   - Room key derivation into a cipher key and routing tag (Derive,
//     DeriveLabelled)
//   - Authenticated encryption of chat payloads with an embedded random nonce
//     (Engine, NewEngine)
//   - Fresh room keys and throwaway usernames (GenerateRoomKey, RandomUsername)
//   - Short room fingerprints for display (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Derived material is returned in the fixed-size array types defined in
// internal/domain. An Engine is bound to one key for its lifetime and is safe
// for concurrent use, though the session only ever calls it from one goroutine.
package crypto
