// Package lib contains the core, reusable services for the caosgit application.
package lib

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashLength is the length of a hex-encoded SHA-256 identifier.
const HashLength = sha256.Size * 2

// GetHash calculates the SHA-256 hash of an in-memory byte slice and returns
// it as a lowercase hex-encoded string.
// Commit identifiers are the hash of the full encoded commit object.
func GetHash(content []byte) string {
	hashBytes := sha256.Sum256(content)
	return hex.EncodeToString(hashBytes[:])
}

// IsValidHash reports whether s has the form of an identifier produced by
// GetHash.
func IsValidHash(s string) bool {
	if len(s) != HashLength {
		return false
	}
	return isLowerHex(s)
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
