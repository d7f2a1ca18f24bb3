package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/mailer"
	"github.com/secureaware/phishsim-backend/internal/models"
	"github.com/secureaware/phishsim-backend/internal/utils"
)

// LinkPlaceholder is replaced with the per-recipient tracking URL. A body
// without it is sent unchanged.
const LinkPlaceholder = "[LINK]"

type CampaignService struct {
	campaignRepo CampaignStore
	userRepo     UserStore
	templateRepo TemplateStore
	mailer       mailer.Mailer
	publisher    EventPublisher
	baseURL      string
	fromAddress  string
}

func NewCampaignService(
	campaignRepo CampaignStore,
	userRepo UserStore,
	templateRepo TemplateStore,
	m mailer.Mailer,
	publisher EventPublisher,
	baseURL, fromAddress string,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		templateRepo: templateRepo,
		mailer:       m,
		publisher:    publisher,
		baseURL:      strings.TrimRight(baseURL, "/"),
		fromAddress:  fromAddress,
	}
}

// Dispatch validates the request, persists the campaign, and then attempts
// delivery to each target in order. A single recipient's failure never
// aborts the batch or rolls back the campaign: it is counted and the loop
// continues. EmailsSent + EmailsFailed always equals the target count.
func (s *CampaignService) Dispatch(req *models.CreateCampaignRequest) (*models.DispatchCampaignResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.ErrCampaignNameNotSpecified
	}

	subject := strings.TrimSpace(req.CustomSubject)
	body := strings.TrimSpace(req.CustomBody)

	// Blank custom fields fall back to the referenced template.
	if req.TemplateID != nil && (subject == "" || body == "") {
		template, err := s.templateRepo.GetByID(*req.TemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrTemplateNotFound
			}
			return nil, fmt.Errorf("failed to load template: %w", err)
		}
		if subject == "" {
			subject = strings.TrimSpace(template.Subject)
		}
		if body == "" {
			body = strings.TrimSpace(template.Body)
		}
	}

	if subject == "" {
		return nil, models.ErrSubjectNotSpecified
	}
	if body == "" {
		return nil, models.ErrBodyNotSpecified
	}
	if len(req.TargetUsers) == 0 {
		return nil, models.ErrNoTargetsSpecified
	}

	targets, err := s.userRepo.GetByIDs(req.TargetUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch target users: %w", err)
	}
	if len(targets) != len(req.TargetUsers) {
		return nil, models.ErrTargetNotFound
	}

	// Persist first so the generated id exists for URL construction.
	campaign := &models.Campaign{
		Name:        name,
		Subject:     subject,
		Body:        body,
		TemplateID:  req.TemplateID,
		Status:      models.CampaignStatusSending,
		TargetCount: len(targets),
		Targets:     targets,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	sent := 0
	failed := 0
	for _, target := range targets {
		token, err := utils.GenerateTrackingToken()
		if err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"user_id":     target.ID,
			}).Warnf("Failed to generate tracking token: %v", err)
			continue
		}

		trackingURL := fmt.Sprintf("%s/track/%s/%s/%s", s.baseURL, campaign.ID, target.ID, token)
		textBody := strings.ReplaceAll(campaign.Body, LinkPlaceholder, trackingURL)
		htmlBody := strings.ReplaceAll(html.EscapeString(textBody), "\n", "<br>\n")

		if err := s.mailer.Send(s.fromAddress, target.Email, campaign.Subject, textBody, htmlBody); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"user_id":     target.ID,
				"email":       target.Email,
			}).Warnf("Failed to deliver campaign email: %v", err)
			continue
		}
		sent++
	}

	if err := s.campaignRepo.UpdateStatus(campaign.ID, models.CampaignStatusSent); err != nil {
		logrus.Warnf("Failed to update campaign %s status: %v", campaign.ID, err)
	} else {
		campaign.Status = models.CampaignStatusSent
	}

	s.publishEvent(models.AwarenessEvent{
		Type:         models.EventCampaignDispatched,
		CampaignID:   campaign.ID,
		EmailsSent:   sent,
		EmailsFailed: failed,
		OccurredAt:   time.Now(),
	})

	message := fmt.Sprintf("Campaign %q created: %d emails sent, %d failed", name, sent, failed)
	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"emails_sent":   sent,
		"emails_failed": failed,
	}).Info("Campaign dispatched")

	return &models.DispatchCampaignResponse{
		Campaign:     campaign,
		EmailsSent:   sent,
		EmailsFailed: failed,
		Message:      message,
	}, nil
}

// GetCampaigns retrieves all campaigns
func (s *CampaignService) GetCampaigns() ([]*models.Campaign, error) {
	campaigns, err := s.campaignRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaignByID retrieves a campaign with its targets
func (s *CampaignService) GetCampaignByID(id string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func (s *CampaignService) publishEvent(event models.AwarenessEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		logrus.Warnf("Failed to publish %s event: %v", event.Type, err)
	}
}
