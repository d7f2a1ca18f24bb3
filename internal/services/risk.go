package services

// RiskLevel is the coarse per-user classification derived from recorded
// click and credential-attempt counts.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ScoreRisk classifies a user. Credential attempts dominate clicks: more
// than one attempt is High regardless of click count, more than two clicks
// without that is Medium, everything else is Low.
func ScoreRisk(clicks, credentials int64) RiskLevel {
	if credentials > 1 {
		return RiskHigh
	}
	if clicks > 2 {
		return RiskMedium
	}
	return RiskLow
}
