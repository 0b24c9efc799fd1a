package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const usernameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRoomKey returns 32 random bytes in standard base64. The encoded
// form is what peers share, and it is comfortably longer than 32 bytes.
func GenerateRoomKey() (string, error) {
	var raw [32]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("generate room key: %w", err)
	}
	defer Wipe(raw[:])
	return base64.StdEncoding.EncodeToString(raw[:]), nil
}

// RandomUsername returns an alphanumeric name of length n.
func RandomUsername(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate username: %w", err)
	}
	for i, b := range buf {
		buf[i] = usernameAlphabet[int(b)%len(usernameAlphabet)]
	}
	return string(buf), nil
}
