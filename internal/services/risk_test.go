package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRisk(t *testing.T) {
	tests := []struct {
		name        string
		clicks      int64
		credentials int64
		expected    RiskLevel
	}{
		{"no activity", 0, 0, RiskLow},
		{"few clicks", 2, 0, RiskLow},
		{"one credential", 0, 1, RiskLow},
		{"clicks over threshold", 3, 0, RiskMedium},
		{"many clicks", 10, 0, RiskMedium},
		{"credentials over threshold", 0, 2, RiskHigh},
		{"credentials dominate clicks", 5, 2, RiskHigh},
		{"clicks alone never high", 100, 1, RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreRisk(tt.clicks, tt.credentials))
		})
	}
}
