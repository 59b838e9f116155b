package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashUserKey returns a stable, filesystem-safe identifier for a user ID.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashFields hashes an ordered set of fields into one stable content hash.
// Equal inputs always produce equal hashes, so callers can detect unchanged
// content without comparing field by field.
func HashFields(fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}
