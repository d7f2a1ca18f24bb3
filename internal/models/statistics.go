package models

// DepartmentStat is the per-department click summary. Clicked counts click
// events, not distinct clicking users, so Rate can exceed 100 when users
// click more than once.
type DepartmentStat struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Clicked    int    `json:"clicked"`
	Rate       string `json:"rate" example:"33.3"`
}

// UserStat is the per-user event summary with a risk classification
type UserStat struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Clicks      int64  `json:"clicks"`
	Credentials int64  `json:"credentials"`
	Risk        string `json:"risk"`
}

// VulnerabilityReport is the organization-wide summary
type VulnerabilityReport struct {
	TotalUsers        int      `json:"totalUsers"`
	TotalCampaigns    int      `json:"totalCampaigns"`
	HighRisk          int      `json:"highRisk"`
	MediumRisk        int      `json:"mediumRisk"`
	LowRisk           int      `json:"lowRisk"`
	AvgClickRate      float64  `json:"avgClickRate"`
	AvgCredentialRate float64  `json:"avgCredentialRate"`
	Recommendations   []string `json:"recommendations"`
}
