package services

import (
	"fmt"
	"sort"

	"github.com/secureaware/phishsim-backend/internal/models"
)

// defaultRecommendations is the static advisory list attached to every
// vulnerability report, independent of the computed figures.
var defaultRecommendations = []string{
	"Run recurring simulated campaigns at least once a quarter",
	"Enroll high-risk users in the full awareness curriculum",
	"Require multi-factor authentication for all accounts",
	"Encourage reporting of suspicious emails to the security team",
}

type StatisticsService struct {
	userRepo       UserStore
	campaignRepo   CampaignStore
	clickRepo      ClickStore
	credentialRepo CredentialStore
}

func NewStatisticsService(
	userRepo UserStore,
	campaignRepo CampaignStore,
	clickRepo ClickStore,
	credentialRepo CredentialStore,
) *StatisticsService {
	return &StatisticsService{
		userRepo:       userRepo,
		campaignRepo:   campaignRepo,
		clickRepo:      clickRepo,
		credentialRepo: credentialRepo,
	}
}

// DepartmentRates partitions users by department and counts click events
// against each. Clicked counts events, not distinct users, so the rate can
// exceed 100 when users click repeatedly. A department with no users
// reports "0.0" rather than dividing by zero.
func (s *StatisticsService) DepartmentRates() ([]models.DepartmentStat, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	clicks, err := s.clickRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks: %w", err)
	}

	totals := make(map[string]int)
	userDept := make(map[string]string)
	for _, u := range users {
		totals[u.Department]++
		userDept[u.ID] = u.Department
	}

	clicked := make(map[string]int)
	for _, c := range clicks {
		dept, ok := userDept[c.UserID]
		if !ok {
			continue
		}
		clicked[dept]++
	}

	stats := make([]models.DepartmentStat, 0, len(totals))
	for dept, total := range totals {
		rate := "0.0"
		if total > 0 {
			rate = fmt.Sprintf("%.1f", float64(clicked[dept])/float64(total)*100)
		}
		stats = append(stats, models.DepartmentStat{
			Department: dept,
			Total:      total,
			Clicked:    clicked[dept],
			Rate:       rate,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Department < stats[j].Department
	})

	return stats, nil
}

// UserStatistics returns per-user event counts and risk classifications
func (s *StatisticsService) UserStatistics() ([]models.UserStat, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	clicks, err := s.clickRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks: %w", err)
	}
	credentials, err := s.credentialRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	clickCounts := make(map[string]int64)
	for _, c := range clicks {
		clickCounts[c.UserID]++
	}
	credentialCounts := make(map[string]int64)
	for _, c := range credentials {
		credentialCounts[c.UserID]++
	}

	stats := make([]models.UserStat, 0, len(users))
	for _, u := range users {
		stats = append(stats, models.UserStat{
			UserID:      u.ID,
			Name:        u.FullName(),
			Email:       u.Email,
			Department:  u.Department,
			Clicks:      clickCounts[u.ID],
			Credentials: credentialCounts[u.ID],
			Risk:        string(ScoreRisk(clickCounts[u.ID], credentialCounts[u.ID])),
		})
	}

	return stats, nil
}

// VulnerabilityReport summarizes the organization. Rates divide total events
// by the number of recipients declared at campaign creation, not by
// delivered counts, and default to 0 when nothing has been targeted.
func (s *StatisticsService) VulnerabilityReport() (*models.VulnerabilityReport, error) {
	userStats, err := s.UserStatistics()
	if err != nil {
		return nil, err
	}

	campaignCount, err := s.campaignRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}
	totalTargeted, err := s.campaignRepo.SumTargetCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to sum target counts: %w", err)
	}

	// Event totals come from the raw event sets, not the per-user sums, so
	// events attributed to since-removed users still count.
	clicks, err := s.clickRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks: %w", err)
	}
	credentials, err := s.credentialRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	report := &models.VulnerabilityReport{
		TotalUsers:      len(userStats),
		TotalCampaigns:  int(campaignCount),
		Recommendations: defaultRecommendations,
	}

	for _, stat := range userStats {
		switch RiskLevel(stat.Risk) {
		case RiskHigh:
			report.HighRisk++
		case RiskMedium:
			report.MediumRisk++
		default:
			report.LowRisk++
		}
	}

	if totalTargeted > 0 {
		report.AvgClickRate = float64(len(clicks)) / float64(totalTargeted) * 100
		report.AvgCredentialRate = float64(len(credentials)) / float64(totalTargeted) * 100
	}

	return report, nil
}
