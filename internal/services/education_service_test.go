package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/models"
)

func newEducationFixture(t *testing.T) (*MockEducationStore, *MockUserStore, *EducationService) {
	t.Helper()
	educationRepo := new(MockEducationStore)
	userRepo := new(MockUserStore)
	svc := NewEducationService(educationRepo, userRepo)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil).Maybe()
	return educationRepo, userRepo, svc
}

func TestGetProgress_CreatesEmptyRecordOnFirstAccess(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	educationRepo.On("GetByUserID", "user-1").Return(nil, gorm.ErrRecordNotFound)
	educationRepo.On("Create", mock.AnythingOfType("*models.EducationProgress")).Return(nil)

	progress, err := svc.GetProgress("user-1")

	assert.NoError(t, err)
	assert.Empty(t, progress.CompletedModules)
	assert.False(t, progress.CertificateEligible)
	assert.False(t, progress.CertificateIssued)
	educationRepo.AssertCalled(t, "Create", mock.Anything)
}

func TestGetProgress_UnknownUser(t *testing.T) {
	educationRepo := new(MockEducationStore)
	userRepo := new(MockUserStore)
	svc := NewEducationService(educationRepo, userRepo)

	userRepo.On("GetByID", "user-missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetProgress("user-missing")

	assert.ErrorIs(t, err, models.ErrUserNotFound)
	educationRepo.AssertNotCalled(t, "GetByUserID", mock.Anything)
}

func TestCompleteModule_Idempotent(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	educationRepo.On("GetByUserID", "user-1").Return(&models.EducationProgress{
		UserID:           "user-1",
		CompletedModules: []string{"module-a"},
	}, nil)

	progress, err := svc.CompleteModule("user-1", "module-a")

	assert.NoError(t, err)
	assert.Equal(t, []string{"module-a"}, progress.CompletedModules)
	educationRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestCompleteModule_AppendsNewModule(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	educationRepo.On("GetByUserID", "user-1").Return(&models.EducationProgress{
		UserID:           "user-1",
		CompletedModules: []string{"module-a"},
	}, nil)
	educationRepo.On("Update", mock.AnythingOfType("*models.EducationProgress")).Return(nil)

	progress, err := svc.CompleteModule("user-1", "module-b")

	assert.NoError(t, err)
	assert.Equal(t, []string{"module-a", "module-b"}, progress.CompletedModules)
	educationRepo.AssertCalled(t, "Update", mock.Anything)
}

func TestCompleteModule_BlankModuleID(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	_, err := svc.CompleteModule("user-1", "   ")

	assert.ErrorIs(t, err, models.ErrModuleIDRequired)
	educationRepo.AssertNotCalled(t, "GetByUserID", mock.Anything)
}

func TestCertificateEligibility_ThreeModules(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	educationRepo.On("GetByUserID", "user-1").Return(&models.EducationProgress{
		UserID:           "user-1",
		CompletedModules: []string{"a", "b"},
	}, nil).Once()
	educationRepo.On("Update", mock.AnythingOfType("*models.EducationProgress")).Return(nil)

	progress, err := svc.CompleteModule("user-1", "c")

	assert.NoError(t, err)
	assert.True(t, progress.CertificateEligible)
}

func TestIssueCertificate_TooFewModules(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	educationRepo.On("GetByUserID", "user-1").Return(&models.EducationProgress{
		UserID:           "user-1",
		CompletedModules: []string{"a", "b"},
	}, nil)

	_, err := svc.IssueCertificate("user-1")

	assert.ErrorIs(t, err, models.ErrCertificateNotEligible)
	educationRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestIssueCertificate_SetsFlagOnce(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	educationRepo.On("GetByUserID", "user-1").Return(&models.EducationProgress{
		UserID:           "user-1",
		CompletedModules: []string{"a", "b", "c"},
	}, nil)
	educationRepo.On("Update", mock.AnythingOfType("*models.EducationProgress")).Return(nil).Once()

	progress, err := svc.IssueCertificate("user-1")

	assert.NoError(t, err)
	assert.True(t, progress.CertificateIssued)
	educationRepo.AssertExpectations(t)
}

func TestIssueCertificate_AlreadyIssuedIsIdempotent(t *testing.T) {
	educationRepo, _, svc := newEducationFixture(t)

	educationRepo.On("GetByUserID", "user-1").Return(&models.EducationProgress{
		UserID:            "user-1",
		CompletedModules:  []string{"a", "b", "c"},
		CertificateIssued: true,
	}, nil)

	progress, err := svc.IssueCertificate("user-1")

	assert.NoError(t, err)
	assert.True(t, progress.CertificateIssued)
	educationRepo.AssertNotCalled(t, "Update", mock.Anything)
}
