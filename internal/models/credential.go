package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Credential is an immutable record of a credential-entry attempt on the
// decoy page. The submitted secret is never persisted; only the fact that
// an attempt occurred.
type Credential struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID string    `json:"campaign_id" gorm:"type:uuid;not null;index"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Attempted  bool      `json:"attempted" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the Credential model
func (Credential) TableName() string {
	return "credentials"
}

func (c *Credential) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// SubmitCredentialsRequest is the decoy-page form submission. The password
// is read so its presence can be logged, then discarded.
type SubmitCredentialsRequest struct {
	CampaignID string `json:"campaignId"`
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// RecordCredentialsRequest is the manual recording variant.
type RecordCredentialsRequest struct {
	CampaignID string `json:"campaignId"`
	UserID     string `json:"userId"`
}
