package repository

import (
	"github.com/secureaware/phishsim-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign together with its target associations
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID with its targets
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("Targets").First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetAll retrieves all campaigns, newest first
func (r *CampaignRepository) GetAll() ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// UpdateStatus updates only the status tag of a campaign
func (r *CampaignRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// IncrementClicks adds 1 to the campaign's click counter as a single SQL
// increment. Concurrent recordings must not lose updates, so this is never
// expressed as a read followed by a write.
func (r *CampaignRepository) IncrementClicks(id string) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1)).Error
}

// IncrementCredentials adds 1 to the campaign's credential counter, with the
// same atomicity contract as IncrementClicks.
func (r *CampaignRepository) IncrementCredentials(id string) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).
		UpdateColumn("credentials", gorm.Expr("credentials + ?", 1)).Error
}

// Count returns the number of campaigns
func (r *CampaignRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Count(&count).Error
	return count, err
}

// SumTargetCounts returns the total number of recipients declared across all
// campaigns at creation time.
func (r *CampaignRepository) SumTargetCounts() (int64, error) {
	var total int64
	err := r.db.Model(&models.Campaign{}).
		Select("COALESCE(SUM(target_count), 0)").Scan(&total).Error
	return total, err
}
