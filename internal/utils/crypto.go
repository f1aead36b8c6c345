package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex digests s; refresh tokens are stored hashed, never raw.
func SHA256Hex(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}
