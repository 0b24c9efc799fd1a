// Package message composes and parses the plaintext carried inside an
// encrypted chat frame: the sender's display name, a '|' separator and the
// message text.
package message

import (
	"strings"
	"unicode/utf8"

	"artichat/internal/domain"
)

// Separator divides the sender name from the text. Only the first occurrence
// counts, so texts may contain it freely.
const Separator = "|"

// Compose returns sender|text.
func Compose(sender, text string) string {
	return sender + Separator + text
}

// Parse splits a decrypted plaintext into sender and text.
func Parse(plaintext string) (sender, text string, err error) {
	if !utf8.ValidString(plaintext) {
		return "", "", domain.ErrInvalidUTF8
	}
	sender, text, ok := strings.Cut(plaintext, Separator)
	if !ok {
		return "", "", domain.ErrMissingSeparator
	}
	return sender, text, nil
}
