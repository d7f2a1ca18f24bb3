package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Click is an immutable record of a tracked link visit. Rows are append-only
// and are never updated or deleted.
type Click struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID string    `json:"campaign_id" gorm:"type:uuid;not null;index"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Token      string    `json:"token" gorm:"type:varchar(64);not null"`
	IPAddress  string    `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent  string    `json:"user_agent" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the Click model
func (Click) TableName() string {
	return "clicks"
}

func (c *Click) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// RecordClickRequest is the manual recording variant that carries the
// forensic fields in the body instead of deriving them from the request.
type RecordClickRequest struct {
	CampaignID string `json:"campaignId"`
	UserID     string `json:"userId"`
	Token      string `json:"token"`
	IPAddress  string `json:"ipAddress"`
	UserAgent  string `json:"userAgent"`
}
