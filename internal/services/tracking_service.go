package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/models"
)

type TrackingService struct {
	campaignRepo   CampaignStore
	userRepo       UserStore
	clickRepo      ClickStore
	credentialRepo CredentialStore
	publisher      EventPublisher
	decoyURL       string
}

func NewTrackingService(
	campaignRepo CampaignStore,
	userRepo UserStore,
	clickRepo ClickStore,
	credentialRepo CredentialStore,
	publisher EventPublisher,
	decoyURL string,
) *TrackingService {
	return &TrackingService{
		campaignRepo:   campaignRepo,
		userRepo:       userRepo,
		clickRepo:      clickRepo,
		credentialRepo: credentialRepo,
		publisher:      publisher,
		decoyURL:       decoyURL,
	}
}

// RecordClick appends a click event and increments the campaign click
// counter by exactly one. Every call records a new event; repeated visits
// each count. Returns the decoy-page redirect for the pair.
func (s *TrackingService) RecordClick(campaignID, userID, token, ipAddress, userAgent string) (string, error) {
	if campaignID == "" || userID == "" {
		return "", models.ErrTrackingIDsRequired
	}

	if err := s.verifyPair(campaignID, userID); err != nil {
		return "", err
	}

	click := &models.Click{
		CampaignID: campaignID,
		UserID:     userID,
		Token:      token,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	if err := s.clickRepo.Create(click); err != nil {
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	// The counter is a denormalized cache over click events; the increment
	// is a single atomic add so concurrent recordings never lose updates.
	if err := s.campaignRepo.IncrementClicks(campaignID); err != nil {
		return "", fmt.Errorf("failed to increment click counter: %w", err)
	}

	s.publishEvent(models.AwarenessEvent{
		Type:       models.EventLinkClicked,
		CampaignID: campaignID,
		UserID:     userID,
		OccurredAt: time.Now(),
	})

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"user_id":     userID,
		"ip":          ipAddress,
	}).Info("Click recorded")

	return fmt.Sprintf("%s?cid=%s&uid=%s", s.decoyURL, campaignID, userID), nil
}

// RecordCredentialAttempt appends a credential event and increments the
// campaign credential counter. The submitted secret is read only to log its
// presence and is never persisted. The token is deliberately not validated
// on this path.
func (s *TrackingService) RecordCredentialAttempt(campaignID, userID, suppliedEmail, suppliedSecret string) error {
	if campaignID == "" || userID == "" {
		return models.ErrTrackingIDsRequired
	}

	if err := s.verifyPair(campaignID, userID); err != nil {
		return err
	}

	credential := &models.Credential{
		CampaignID: campaignID,
		UserID:     userID,
		Attempted:  true,
	}
	if err := s.credentialRepo.Create(credential); err != nil {
		return fmt.Errorf("failed to record credential attempt: %w", err)
	}

	if err := s.campaignRepo.IncrementCredentials(campaignID); err != nil {
		return fmt.Errorf("failed to increment credential counter: %w", err)
	}

	s.publishEvent(models.AwarenessEvent{
		Type:       models.EventCredentialsSubmitted,
		CampaignID: campaignID,
		UserID:     userID,
		OccurredAt: time.Now(),
	})

	logrus.WithFields(logrus.Fields{
		"campaign_id":       campaignID,
		"user_id":           userID,
		"email_supplied":    suppliedEmail != "",
		"password_supplied": suppliedSecret != "",
	}).Info("Credential attempt recorded")

	return nil
}

// DecoyRedirect returns the decoy-page URL for a pair without recording
func (s *TrackingService) DecoyRedirect(campaignID, userID string) string {
	return fmt.Sprintf("%s?cid=%s&uid=%s", s.decoyURL, campaignID, userID)
}

func (s *TrackingService) verifyPair(campaignID, userID string) error {
	if _, err := s.campaignRepo.GetByID(campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrCampaignNotFound
		}
		return fmt.Errorf("failed to load campaign: %w", err)
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}
	return nil
}

func (s *TrackingService) publishEvent(event models.AwarenessEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		logrus.Warnf("Failed to publish %s event: %v", event.Type, err)
	}
}
