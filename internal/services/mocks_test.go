package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/secureaware/phishsim-backend/internal/models"
)

type MockCampaignStore struct {
	mock.Mock
}

func (m *MockCampaignStore) Create(campaign *models.Campaign) error {
	args := m.Called(campaign)
	return args.Error(0)
}

func (m *MockCampaignStore) GetByID(id string) (*models.Campaign, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignStore) GetAll() ([]*models.Campaign, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Campaign), args.Error(1)
}

func (m *MockCampaignStore) UpdateStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockCampaignStore) IncrementClicks(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCampaignStore) IncrementCredentials(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCampaignStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCampaignStore) SumTargetCounts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByIDs(ids []string) ([]models.User, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockTemplateStore struct {
	mock.Mock
}

func (m *MockTemplateStore) GetByID(id string) (*models.Template, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

type MockClickStore struct {
	mock.Mock
}

func (m *MockClickStore) Create(click *models.Click) error {
	args := m.Called(click)
	return args.Error(0)
}

func (m *MockClickStore) GetAll() ([]models.Click, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Click), args.Error(1)
}

type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Create(credential *models.Credential) error {
	args := m.Called(credential)
	return args.Error(0)
}

func (m *MockCredentialStore) GetAll() ([]models.Credential, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Credential), args.Error(1)
}

type MockEducationStore struct {
	mock.Mock
}

func (m *MockEducationStore) GetByUserID(userID string) (*models.EducationProgress, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EducationProgress), args.Error(1)
}

func (m *MockEducationStore) Create(progress *models.EducationProgress) error {
	args := m.Called(progress)
	return args.Error(0)
}

func (m *MockEducationStore) Update(progress *models.EducationProgress) error {
	args := m.Called(progress)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event models.AwarenessEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(from, to, subject, textBody, htmlBody string) error {
	args := m.Called(from, to, subject, textBody, htmlBody)
	return args.Error(0)
}
