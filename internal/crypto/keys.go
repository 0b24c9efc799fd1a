package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"artichat/internal/domain"
)

const (
	routeInfo  = "artichat|route"
	cipherInfo = "artichat|cipher"
)

// Derive turns a room key into its cipher key and routing tag the way the
// reference client does: both are the first 32 raw bytes of the secret.
// Bytes past the 32nd are ignored.
func Derive(secret string) (key domain.CipherKey, tag domain.RoutingTag, err error) {
	if len(secret) < domain.KeySize {
		return key, tag, fmt.Errorf("derive: %d bytes: %w", len(secret), domain.ErrInvalidKeyLength)
	}
	copy(key[:], secret[:domain.KeySize])
	copy(tag[:], secret[:domain.RoutingTagSize])
	return key, tag, nil
}

// DeriveLabelled expands the first 32 bytes of the room key twice with HKDF,
// once per label, so the routing tag seen on the wire is unrelated to the key.
func DeriveLabelled(secret string) (key domain.CipherKey, tag domain.RoutingTag, err error) {
	if len(secret) < domain.KeySize {
		return key, tag, fmt.Errorf("derive: %d bytes: %w", len(secret), domain.ErrInvalidKeyLength)
	}
	ikm := []byte(secret[:domain.KeySize])
	defer Wipe(ikm)

	if err := expand(ikm, routeInfo, tag[:]); err != nil {
		return key, tag, err
	}
	if err := expand(ikm, cipherInfo, key[:]); err != nil {
		return key, tag, err
	}
	return key, tag, nil
}

func expand(ikm []byte, info string, out []byte) error {
	r := hkdf.New(sha256.New, ikm, nil, []byte(info))
	if _, err := io.ReadFull(r, out); err != nil {
		return fmt.Errorf("hkdf %s: %w", info, err)
	}
	return nil
}
