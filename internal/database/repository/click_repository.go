package repository

import (
	"github.com/secureaware/phishsim-backend/internal/models"

	"gorm.io/gorm"
)

type ClickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Create appends a click event
func (r *ClickRepository) Create(click *models.Click) error {
	return r.db.Create(click).Error
}

// GetAll retrieves all click events
func (r *ClickRepository) GetAll() ([]models.Click, error) {
	var clicks []models.Click
	err := r.db.Find(&clicks).Error
	return clicks, err
}

// GetByCampaign retrieves the click events for one campaign
func (r *ClickRepository) GetByCampaign(campaignID string) ([]models.Click, error) {
	var clicks []models.Click
	err := r.db.Where("campaign_id = ?", campaignID).Find(&clicks).Error
	return clicks, err
}
