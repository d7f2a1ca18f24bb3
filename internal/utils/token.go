package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateTrackingToken returns a 128-bit random token rendered as lowercase
// hexadecimal. The token is an opaque correlation string for one
// (campaign, recipient) pairing; collisions are not checked.
func GenerateTrackingToken() (string, error) {
	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(tokenBytes), nil
}
