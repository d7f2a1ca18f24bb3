package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingToken_Format(t *testing.T) {
	token, err := GenerateTrackingToken()

	assert.NoError(t, err)
	assert.Len(t, token, 32)
	for _, c := range token {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}

func TestGenerateTrackingToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateTrackingToken()
		assert.NoError(t, err)
		assert.False(t, seen[token], "token %q generated twice", token)
		seen[token] = true
	}
}
