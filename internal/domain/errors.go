package domain

import "errors"

var (
	// ErrInvalidKeyLength is returned when a room key is shorter than KeySize bytes.
	ErrInvalidKeyLength = errors.New("room key must be at least 32 bytes")

	// ErrMalformedFrame is returned for datagrams that fit no frame shape.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrMalformedCiphertext is returned when a message is shorter than the nonce.
	ErrMalformedCiphertext = errors.New("ciphertext shorter than nonce")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrMissingSeparator is returned when a plaintext carries no sender separator.
	ErrMissingSeparator = errors.New("plaintext missing sender separator")

	// ErrInvalidUTF8 is returned when a decrypted plaintext is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("plaintext is not valid utf-8")

	// ErrSocketUnavailable wraps bind, connect and unexpected socket I/O failures.
	ErrSocketUnavailable = errors.New("socket unavailable")
)
