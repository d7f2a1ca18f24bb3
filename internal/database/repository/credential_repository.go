package repository

import (
	"github.com/secureaware/phishsim-backend/internal/models"

	"gorm.io/gorm"
)

type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create appends a credential-attempt event
func (r *CredentialRepository) Create(credential *models.Credential) error {
	return r.db.Create(credential).Error
}

// GetAll retrieves all credential-attempt events
func (r *CredentialRepository) GetAll() ([]models.Credential, error) {
	var credentials []models.Credential
	err := r.db.Find(&credentials).Error
	return credentials, err
}
