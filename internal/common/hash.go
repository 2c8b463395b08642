package common

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short SHA-256 prefix of the input, for logging which
// table revision a catalog was built from.
func Fingerprint(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:6])
}
