package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"artichat/internal/domain"
)

// Suite names an AEAD construction.
type Suite string

const (
	SuiteAESGCM           Suite = "aes-256-gcm"
	SuiteChaCha20Poly1305 Suite = "chacha20-poly1305"
)

const (
	// NonceBytes is the nonce length embedded at the front of every sealed payload.
	NonceBytes = 12
	// TagBytes is the authentication tag length appended by both suites.
	TagBytes = 16
)

// ParseSuite validates a suite name from configuration.
func ParseSuite(name string) (Suite, error) {
	switch s := Suite(name); s {
	case SuiteAESGCM, SuiteChaCha20Poly1305:
		return s, nil
	default:
		return "", fmt.Errorf("unknown cipher suite %q", name)
	}
}

// Engine seals and opens chat payloads under one room key. The output format
// is nonce || ciphertext || tag.
type Engine struct {
	aead cipher.AEAD
}

var _ domain.Cipher = (*Engine)(nil)

// NewEngine binds an AEAD of the given suite to key.
func NewEngine(suite Suite, key domain.CipherKey) (*Engine, error) {
	k := key.Slice()
	defer Wipe(k)

	var (
		aead cipher.AEAD
		err  error
	)
	switch suite {
	case SuiteAESGCM:
		var block cipher.Block
		block, err = aes.NewCipher(k)
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		aead, err = cipher.NewGCM(block)
	case SuiteChaCha20Poly1305:
		aead, err = chacha20poly1305.New(k)
	default:
		return nil, fmt.Errorf("unknown cipher suite %q", suite)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", suite, err)
	}
	return &Engine{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (e *Engine) Encrypt(plaintext string) ([]byte, error) {
	nonce := make([]byte, NonceBytes, NonceBytes+len(plaintext)+TagBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return e.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Decrypt splits off the leading nonce and opens the rest.
func (e *Engine) Decrypt(frame []byte) (string, error) {
	if len(frame) < NonceBytes {
		return "", domain.ErrMalformedCiphertext
	}
	pt, err := e.aead.Open(nil, frame[:NonceBytes], frame[NonceBytes:], nil)
	if err != nil {
		return "", domain.ErrAuthenticationFailed
	}
	return string(pt), nil
}
