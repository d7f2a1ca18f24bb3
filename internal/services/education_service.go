package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/models"
)

// certificateModuleThreshold is the number of completed modules required
// before a completion certificate can be issued.
const certificateModuleThreshold = 3

type EducationService struct {
	educationRepo EducationStore
	userRepo      UserStore
}

func NewEducationService(educationRepo EducationStore, userRepo UserStore) *EducationService {
	return &EducationService{
		educationRepo: educationRepo,
		userRepo:      userRepo,
	}
}

// GetProgress returns the user's training progress, creating an empty
// record on first access.
func (s *EducationService) GetProgress(userID string) (*models.EducationProgressResponse, error) {
	progress, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(progress), nil
}

// CompleteModule records a completed training module. Completion is a set
// insertion: completing the same module twice leaves the record unchanged.
func (s *EducationService) CompleteModule(userID, moduleID string) (*models.EducationProgressResponse, error) {
	moduleID = strings.TrimSpace(moduleID)
	if moduleID == "" {
		return nil, models.ErrModuleIDRequired
	}

	progress, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if progress.HasCompleted(moduleID) {
		return s.toResponse(progress), nil
	}

	progress.CompletedModules = append(progress.CompletedModules, moduleID)
	if err := s.educationRepo.Update(progress); err != nil {
		return nil, fmt.Errorf("failed to update education progress: %w", err)
	}

	return s.toResponse(progress), nil
}

// IssueCertificate flips the issued flag once enough modules are completed
func (s *EducationService) IssueCertificate(userID string) (*models.EducationProgressResponse, error) {
	progress, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if len(progress.CompletedModules) < certificateModuleThreshold {
		return nil, models.ErrCertificateNotEligible
	}

	if !progress.CertificateIssued {
		progress.CertificateIssued = true
		if err := s.educationRepo.Update(progress); err != nil {
			return nil, fmt.Errorf("failed to update education progress: %w", err)
		}
	}

	return s.toResponse(progress), nil
}

func (s *EducationService) loadOrCreate(userID string) (*models.EducationProgress, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	progress, err := s.educationRepo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load education progress: %w", err)
		}
		progress = &models.EducationProgress{
			UserID:           userID,
			CompletedModules: []string{},
		}
		if err := s.educationRepo.Create(progress); err != nil {
			return nil, fmt.Errorf("failed to create education progress: %w", err)
		}
	}
	return progress, nil
}

func (s *EducationService) toResponse(progress *models.EducationProgress) *models.EducationProgressResponse {
	return &models.EducationProgressResponse{
		UserID:              progress.UserID,
		CompletedModules:    progress.CompletedModules,
		CertificateEligible: len(progress.CompletedModules) >= certificateModuleThreshold,
		CertificateIssued:   progress.CertificateIssued,
		UpdatedAt:           progress.UpdatedAt,
	}
}
