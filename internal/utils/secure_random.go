package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

const alphanumeric = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateShortCode generates an uppercase alphanumeric code of the given
// length. Ambiguous characters (0/O, 1/I) are excluded. Used for account IDs
// and referral codes.
func GenerateShortCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	b := make([]byte, length)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		b[i] = alphanumeric[n.Int64()]
	}
	return string(b), nil
}

// GenerateNumericCode generates a random numeric code of the given length,
// zero-padded. Used for email verification tokens.
func GenerateNumericCode(length int) (string, error) {
	if length <= 0 || length > 18 {
		return "", fmt.Errorf("length out of range")
	}
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
