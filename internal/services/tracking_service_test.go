package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/models"
)

func newTrackingFixture(t *testing.T) (*MockCampaignStore, *MockUserStore, *MockClickStore, *MockCredentialStore, *TrackingService) {
	t.Helper()
	campaignRepo := new(MockCampaignStore)
	userRepo := new(MockUserStore)
	clickRepo := new(MockClickStore)
	credentialRepo := new(MockCredentialStore)
	svc := NewTrackingService(campaignRepo, userRepo, clickRepo, credentialRepo, nil, "http://decoy.example.com/decoy")
	return campaignRepo, userRepo, clickRepo, credentialRepo, svc
}

func stubPair(campaignRepo *MockCampaignStore, userRepo *MockUserStore) {
	campaignRepo.On("GetByID", "camp-1").Return(&models.Campaign{ID: "camp-1"}, nil)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)
}

func TestRecordClick_OneEventOneIncrement(t *testing.T) {
	campaignRepo, userRepo, clickRepo, _, svc := newTrackingFixture(t)
	stubPair(campaignRepo, userRepo)

	clickRepo.On("Create", mock.AnythingOfType("*models.Click")).Return(nil).Once()
	campaignRepo.On("IncrementClicks", "camp-1").Return(nil).Once()

	redirect, err := svc.RecordClick("camp-1", "user-1", "abc123", "10.0.0.1", "Mozilla/5.0")

	assert.NoError(t, err)
	assert.Equal(t, "http://decoy.example.com/decoy?cid=camp-1&uid=user-1", redirect)
	clickRepo.AssertExpectations(t)
	campaignRepo.AssertExpectations(t)
}

func TestRecordClick_RepeatedVisitsEachCount(t *testing.T) {
	campaignRepo, userRepo, clickRepo, _, svc := newTrackingFixture(t)
	stubPair(campaignRepo, userRepo)

	clickRepo.On("Create", mock.AnythingOfType("*models.Click")).Return(nil).Times(3)
	campaignRepo.On("IncrementClicks", "camp-1").Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		_, err := svc.RecordClick("camp-1", "user-1", "abc123", "10.0.0.1", "Mozilla/5.0")
		assert.NoError(t, err)
	}

	clickRepo.AssertExpectations(t)
	campaignRepo.AssertExpectations(t)
}

func TestRecordClick_MissingIDs(t *testing.T) {
	_, _, clickRepo, _, svc := newTrackingFixture(t)

	_, err := svc.RecordClick("", "user-1", "abc123", "", "")
	assert.ErrorIs(t, err, models.ErrTrackingIDsRequired)

	_, err = svc.RecordClick("camp-1", "", "abc123", "", "")
	assert.ErrorIs(t, err, models.ErrTrackingIDsRequired)

	clickRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRecordClick_UnknownCampaign(t *testing.T) {
	campaignRepo, _, clickRepo, _, svc := newTrackingFixture(t)

	campaignRepo.On("GetByID", "camp-missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RecordClick("camp-missing", "user-1", "abc123", "", "")

	assert.ErrorIs(t, err, models.ErrCampaignNotFound)
	clickRepo.AssertNotCalled(t, "Create", mock.Anything)
	campaignRepo.AssertNotCalled(t, "IncrementClicks", mock.Anything)
}

func TestRecordClick_UnknownUser(t *testing.T) {
	campaignRepo, userRepo, clickRepo, _, svc := newTrackingFixture(t)

	campaignRepo.On("GetByID", "camp-1").Return(&models.Campaign{ID: "camp-1"}, nil)
	userRepo.On("GetByID", "user-missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RecordClick("camp-1", "user-missing", "abc123", "", "")

	assert.ErrorIs(t, err, models.ErrUserNotFound)
	clickRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRecordCredentialAttempt_SecretNeverPersisted(t *testing.T) {
	campaignRepo, userRepo, _, credentialRepo, svc := newTrackingFixture(t)
	stubPair(campaignRepo, userRepo)

	var recorded *models.Credential
	credentialRepo.On("Create", mock.AnythingOfType("*models.Credential")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(0).(*models.Credential)
		}).Return(nil)
	campaignRepo.On("IncrementCredentials", "camp-1").Return(nil).Once()

	err := svc.RecordCredentialAttempt("camp-1", "user-1", "alice@example.com", "hunter2")

	assert.NoError(t, err)
	assert.NotNil(t, recorded)
	assert.Equal(t, "camp-1", recorded.CampaignID)
	assert.Equal(t, "user-1", recorded.UserID)
	assert.True(t, recorded.Attempted)
	campaignRepo.AssertExpectations(t)
}

// Credential submissions are accepted on the strength of the campaign and
// user ids alone; no tracking token is checked on this path.
func TestRecordCredentialAttempt_NoTokenRequired(t *testing.T) {
	campaignRepo, userRepo, _, credentialRepo, svc := newTrackingFixture(t)
	stubPair(campaignRepo, userRepo)

	credentialRepo.On("Create", mock.AnythingOfType("*models.Credential")).Return(nil)
	campaignRepo.On("IncrementCredentials", "camp-1").Return(nil)

	err := svc.RecordCredentialAttempt("camp-1", "user-1", "", "")

	assert.NoError(t, err)
	credentialRepo.AssertCalled(t, "Create", mock.Anything)
}

func TestRecordCredentialAttempt_MissingIDs(t *testing.T) {
	_, _, _, credentialRepo, svc := newTrackingFixture(t)

	err := svc.RecordCredentialAttempt("", "", "a@b.c", "secret")

	assert.ErrorIs(t, err, models.ErrTrackingIDsRequired)
	credentialRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// countingCampaignStore simulates the database's atomic increment so the
// service can be exercised from many goroutines at once.
type countingCampaignStore struct {
	mu     sync.Mutex
	clicks int64
}

func (s *countingCampaignStore) Create(*models.Campaign) error        { return nil }
func (s *countingCampaignStore) GetByID(id string) (*models.Campaign, error) {
	return &models.Campaign{ID: id}, nil
}
func (s *countingCampaignStore) GetAll() ([]*models.Campaign, error) { return nil, nil }
func (s *countingCampaignStore) UpdateStatus(string, string) error   { return nil }
func (s *countingCampaignStore) IncrementClicks(string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clicks++
	return nil
}
func (s *countingCampaignStore) IncrementCredentials(string) error { return nil }
func (s *countingCampaignStore) Count() (int64, error)             { return 0, nil }
func (s *countingCampaignStore) SumTargetCounts() (int64, error)   { return 0, nil }

type nopUserStore struct{}

func (nopUserStore) GetByID(id string) (*models.User, error)   { return &models.User{ID: id}, nil }
func (nopUserStore) GetByIDs([]string) ([]models.User, error)  { return nil, nil }
func (nopUserStore) GetAll() ([]models.User, error)            { return nil, nil }

type countingClickStore struct {
	mu     sync.Mutex
	events int
}

func (s *countingClickStore) Create(*models.Click) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events++
	return nil
}
func (s *countingClickStore) GetAll() ([]models.Click, error) { return nil, nil }

func TestRecordClick_ConcurrentIncrementsNeverLost(t *testing.T) {
	campaignRepo := &countingCampaignStore{}
	clickRepo := &countingClickStore{}
	svc := NewTrackingService(campaignRepo, nopUserStore{}, clickRepo, new(MockCredentialStore), nil, "http://decoy.example.com/decoy")

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RecordClick("camp-1", "user-1", "abc123", "10.0.0.1", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers), campaignRepo.clicks)
	assert.Equal(t, workers, clickRepo.events)
}
