package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secureaware/phishsim-backend/internal/models"
)

func newStatisticsFixture(t *testing.T) (*MockUserStore, *MockCampaignStore, *MockClickStore, *MockCredentialStore, *StatisticsService) {
	t.Helper()
	userRepo := new(MockUserStore)
	campaignRepo := new(MockCampaignStore)
	clickRepo := new(MockClickStore)
	credentialRepo := new(MockCredentialStore)
	svc := NewStatisticsService(userRepo, campaignRepo, clickRepo, credentialRepo)
	return userRepo, campaignRepo, clickRepo, credentialRepo, svc
}

func TestDepartmentRates(t *testing.T) {
	userRepo, _, clickRepo, _, svc := newStatisticsFixture(t)

	userRepo.On("GetAll").Return([]models.User{
		{ID: "u1", Department: "Finance"},
		{ID: "u2", Department: "Finance"},
		{ID: "u3", Department: "IT"},
	}, nil)
	clickRepo.On("GetAll").Return([]models.Click{
		{UserID: "u1"},
	}, nil)

	stats, err := svc.DepartmentRates()

	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, "Finance", stats[0].Department)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 1, stats[0].Clicked)
	assert.Equal(t, "50.0", stats[0].Rate)
	assert.Equal(t, "IT", stats[1].Department)
	assert.Equal(t, "0.0", stats[1].Rate)
}

func TestDepartmentRates_RepeatClicksCanExceedHundredPercent(t *testing.T) {
	userRepo, _, clickRepo, _, svc := newStatisticsFixture(t)

	userRepo.On("GetAll").Return([]models.User{
		{ID: "u1", Department: "Sales"},
	}, nil)
	clickRepo.On("GetAll").Return([]models.Click{
		{UserID: "u1"}, {UserID: "u1"}, {UserID: "u1"},
	}, nil)

	stats, err := svc.DepartmentRates()

	assert.NoError(t, err)
	assert.Equal(t, 3, stats[0].Clicked)
	assert.Equal(t, "300.0", stats[0].Rate)
}

func TestDepartmentRates_ClicksOfUnknownUsersSkipped(t *testing.T) {
	userRepo, _, clickRepo, _, svc := newStatisticsFixture(t)

	userRepo.On("GetAll").Return([]models.User{
		{ID: "u1", Department: "IT"},
	}, nil)
	clickRepo.On("GetAll").Return([]models.Click{
		{UserID: "gone"},
	}, nil)

	stats, err := svc.DepartmentRates()

	assert.NoError(t, err)
	assert.Equal(t, 0, stats[0].Clicked)
	assert.Equal(t, "0.0", stats[0].Rate)
}

func TestUserStatistics_RiskPerUser(t *testing.T) {
	userRepo, _, clickRepo, credentialRepo, svc := newStatisticsFixture(t)

	userRepo.On("GetAll").Return([]models.User{
		{ID: "u1", FirstName: "Alice", LastName: "Ng", Email: "alice@example.com", Department: "Finance"},
		{ID: "u2", FirstName: "Bob", Email: "bob@example.com", Department: "IT"},
	}, nil)
	clickRepo.On("GetAll").Return([]models.Click{
		{UserID: "u1"}, {UserID: "u1"}, {UserID: "u1"},
	}, nil)
	credentialRepo.On("GetAll").Return([]models.Credential{
		{UserID: "u2"}, {UserID: "u2"},
	}, nil)

	stats, err := svc.UserStatistics()

	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, "Alice Ng", stats[0].Name)
	assert.Equal(t, int64(3), stats[0].Clicks)
	assert.Equal(t, string(RiskMedium), stats[0].Risk)
	assert.Equal(t, int64(2), stats[1].Credentials)
	assert.Equal(t, string(RiskHigh), stats[1].Risk)
}

func TestVulnerabilityReport(t *testing.T) {
	userRepo, campaignRepo, clickRepo, credentialRepo, svc := newStatisticsFixture(t)

	userRepo.On("GetAll").Return([]models.User{
		{ID: "u1"}, {ID: "u2"},
	}, nil)
	campaignRepo.On("Count").Return(int64(2), nil)
	campaignRepo.On("SumTargetCounts").Return(int64(4), nil)
	clickRepo.On("GetAll").Return([]models.Click{
		{UserID: "u1"}, {UserID: "u1"},
	}, nil)
	credentialRepo.On("GetAll").Return([]models.Credential{
		{UserID: "u1"},
	}, nil)

	report, err := svc.VulnerabilityReport()

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalUsers)
	assert.Equal(t, 2, report.TotalCampaigns)
	assert.Equal(t, 2, report.LowRisk+report.MediumRisk+report.HighRisk)
	assert.Equal(t, 2, report.LowRisk)
	assert.InDelta(t, 50.0, report.AvgClickRate, 0.001)
	assert.InDelta(t, 25.0, report.AvgCredentialRate, 0.001)
	assert.Equal(t, defaultRecommendations, report.Recommendations)
}

func TestVulnerabilityReport_NoRecipientsDefaultsToZeroRates(t *testing.T) {
	userRepo, campaignRepo, clickRepo, credentialRepo, svc := newStatisticsFixture(t)

	userRepo.On("GetAll").Return([]models.User{}, nil)
	campaignRepo.On("Count").Return(int64(0), nil)
	campaignRepo.On("SumTargetCounts").Return(int64(0), nil)
	clickRepo.On("GetAll").Return([]models.Click{}, nil)
	credentialRepo.On("GetAll").Return([]models.Credential{}, nil)

	report, err := svc.VulnerabilityReport()

	assert.NoError(t, err)
	assert.Zero(t, report.AvgClickRate)
	assert.Zero(t, report.AvgCredentialRate)
	assert.Zero(t, report.TotalUsers)
	assert.NotEmpty(t, report.Recommendations)
}
