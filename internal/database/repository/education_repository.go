package repository

import (
	"github.com/secureaware/phishsim-backend/internal/models"

	"gorm.io/gorm"
)

type EducationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

// GetByUserID retrieves the progress record for a user
func (r *EducationRepository) GetByUserID(userID string) (*models.EducationProgress, error) {
	var progress models.EducationProgress
	err := r.db.First(&progress, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Create creates a progress record
func (r *EducationRepository) Create(progress *models.EducationProgress) error {
	return r.db.Create(progress).Error
}

// Update updates a progress record
func (r *EducationRepository) Update(progress *models.EducationProgress) error {
	return r.db.Save(progress).Error
}
