package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign statuses
const (
	CampaignStatusSending = "sending"
	CampaignStatusSent    = "sent"
)

// Campaign represents one bulk simulated-phishing exercise
type Campaign struct {
	ID         string  `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string  `json:"name" gorm:"type:varchar(255);not null"`
	Subject    string  `json:"subject" gorm:"type:varchar(255);not null"`
	Body       string  `json:"body" gorm:"type:text;not null"`
	TemplateID *string `json:"template_id,omitempty" gorm:"type:uuid;index"`
	Status     string  `json:"status" gorm:"type:varchar(50);index;default:'sending'"`

	// Number of recipients declared at creation time. Fixed for the lifetime
	// of the campaign; report denominators use this, not delivered counts.
	TargetCount int `json:"target_count" gorm:"not null;default:0"`

	// Denormalized event counters, maintained by atomic increments at
	// event-recording time only.
	Clicks      int64 `json:"clicks" gorm:"not null;default:0"`
	Credentials int64 `json:"credentials" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Targets []User `json:"targets,omitempty" gorm:"many2many:campaign_targets;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CreateCampaignRequest represents the request to create and dispatch a campaign
type CreateCampaignRequest struct {
	Name          string   `json:"name" example:"Q3 password reset drill"`
	CustomSubject string   `json:"customSubject" example:"Action required: reset your password"`
	CustomBody    string   `json:"customBody" example:"Please confirm your account: [LINK]"`
	TargetUsers   []string `json:"targetUsers"`
	TemplateID    *string  `json:"templateId,omitempty"`
}

// DispatchCampaignResponse represents the outcome of a campaign dispatch
type DispatchCampaignResponse struct {
	Campaign     *Campaign `json:"campaign"`
	EmailsSent   int       `json:"emailsSent"`
	EmailsFailed int       `json:"emailsFailed"`
	Message      string    `json:"message"`
}
