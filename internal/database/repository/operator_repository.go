package repository

import (
	"time"

	"github.com/secureaware/phishsim-backend/internal/models"

	"gorm.io/gorm"
)

type OperatorRepository struct {
	db *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// Create creates a new operator
func (r *OperatorRepository) Create(operator *models.Operator) error {
	return r.db.Create(operator).Error
}

// GetByID retrieves an operator by ID
func (r *OperatorRepository) GetByID(id string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByUsername retrieves an operator by username
func (r *OperatorRepository) GetByUsername(username string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// UpdateLastLogin sets the last-login timestamp to now
func (r *OperatorRepository) UpdateLastLogin(id string) error {
	now := time.Now()
	return r.db.Model(&models.Operator{}).Where("id = ?", id).
		UpdateColumn("last_login_at", now).Error
}
