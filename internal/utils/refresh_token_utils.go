package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken returns the hex-encoded SHA256 digest of a raw refresh
// token. Only the digest is persisted; the raw token lives in the client
// cookie.
func HashRefreshToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}

// CompareRefreshTokenHash reports whether the raw token presented by a
// client matches the stored digest.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return HashRefreshToken(token) == storedHash
}
