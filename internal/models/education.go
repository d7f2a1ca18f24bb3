package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EducationProgress tracks awareness-training completion for one user.
// CompletedModules has set semantics: completing the same module twice
// leaves it unchanged.
type EducationProgress struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID            string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	CompletedModules  []string  `json:"completed_modules" gorm:"type:jsonb;serializer:json"`
	CertificateIssued bool      `json:"certificate_issued" gorm:"not null;default:false"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for the EducationProgress model
func (EducationProgress) TableName() string {
	return "education_progress"
}

func (p *EducationProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// HasCompleted reports whether the module id is already in the completed set
func (p *EducationProgress) HasCompleted(moduleID string) bool {
	for _, m := range p.CompletedModules {
		if m == moduleID {
			return true
		}
	}
	return false
}

// CompleteModuleRequest records completion of a training module
type CompleteModuleRequest struct {
	ModuleID string `json:"moduleId" example:"spotting-suspicious-links"`
}

// EducationProgressResponse is the progress view returned to the operator
type EducationProgressResponse struct {
	UserID              string    `json:"userId"`
	CompletedModules    []string  `json:"completedModules"`
	CertificateEligible bool      `json:"certificateEligible"`
	CertificateIssued   bool      `json:"certificateIssued"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
