package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"artichat/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a routing tag.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars), so two
// peers can compare rooms without reading the key aloud.
func Fingerprint(tag domain.RoutingTag) string {
	sum := sha256.Sum256(tag[:])
	return hex.EncodeToString(sum[:10])
}
