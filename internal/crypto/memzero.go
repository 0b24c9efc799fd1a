package crypto

import "crypto/subtle"

// Wipe overwrites b with zeros. This is best-effort: copies made by the
// runtime or by callers are not reached.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
