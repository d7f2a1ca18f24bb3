package services

import (
	"context"

	"github.com/secureaware/phishsim-backend/internal/models"
)

// Storage interfaces consumed by the services. The gorm repositories in
// internal/database/repository satisfy them; tests substitute doubles.

type CampaignStore interface {
	Create(campaign *models.Campaign) error
	GetByID(id string) (*models.Campaign, error)
	GetAll() ([]*models.Campaign, error)
	UpdateStatus(id, status string) error
	IncrementClicks(id string) error
	IncrementCredentials(id string) error
	Count() (int64, error)
	SumTargetCounts() (int64, error)
}

type UserStore interface {
	GetByID(id string) (*models.User, error)
	GetByIDs(ids []string) ([]models.User, error)
	GetAll() ([]models.User, error)
}

type TemplateStore interface {
	GetByID(id string) (*models.Template, error)
}

type ClickStore interface {
	Create(click *models.Click) error
	GetAll() ([]models.Click, error)
}

type CredentialStore interface {
	Create(credential *models.Credential) error
	GetAll() ([]models.Credential, error)
}

type EducationStore interface {
	GetByUserID(userID string) (*models.EducationProgress, error)
	Create(progress *models.EducationProgress) error
	Update(progress *models.EducationProgress) error
}

// EventPublisher forwards awareness events to the message queue. A nil
// publisher disables publishing; failures are logged and never propagated.
type EventPublisher interface {
	Publish(ctx context.Context, event models.AwarenessEvent) error
}
