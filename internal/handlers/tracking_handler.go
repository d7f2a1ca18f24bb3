package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/config"
	"github.com/secureaware/phishsim-backend/internal/database/repository"
	"github.com/secureaware/phishsim-backend/internal/models"
	"github.com/secureaware/phishsim-backend/internal/services"
)

type TrackingHandler struct {
	trackingService *services.TrackingService
}

func NewTrackingHandler(db *gorm.DB, publisher services.EventPublisher, cfg *config.Config) *TrackingHandler {
	campaignRepo := repository.NewCampaignRepository(db)
	userRepo := repository.NewUserRepository(db)
	clickRepo := repository.NewClickRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)

	trackingService := services.NewTrackingService(
		campaignRepo, userRepo, clickRepo, credentialRepo, publisher, cfg.DecoyURL)
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// TrackClick godoc
// @Summary Track a link click
// @Description Record a tracked link visit and redirect to the decoy page
// @Tags tracking
// @Param campaignId path string true "Campaign ID"
// @Param userId path string true "User ID"
// @Param token path string true "Tracking token"
// @Success 302
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /track/{campaignId}/{userId}/{token} [get]
func (h *TrackingHandler) TrackClick(c *gin.Context) {
	campaignID := c.Param("campaignId")
	userID := c.Param("userId")
	token := c.Param("token")

	redirect, err := h.trackingService.RecordClick(
		campaignID, userID, token, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		h.writeTrackingError(c, err)
		return
	}

	c.Redirect(http.StatusFound, redirect)
}

// SubmitPhishing godoc
// @Summary Record a decoy-page credential submission
// @Description Record that credentials were entered on the decoy page. The password is never stored.
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body models.SubmitCredentialsRequest true "Credential submission"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /track/phishing [post]
func (h *TrackingHandler) SubmitPhishing(c *gin.Context) {
	var req models.SubmitCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	err := h.trackingService.RecordCredentialAttempt(req.CampaignID, req.UserID, req.Email, req.Password)
	if err != nil {
		h.writeTrackingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Submission recorded",
		"redirect": h.trackingService.DecoyRedirect(req.CampaignID, req.UserID),
	})
}

// RecordClick godoc
// @Summary Record a click event
// @Description Compatibility endpoint that records a click from a JSON body
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body models.RecordClickRequest true "Click event"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/track/click [post]
func (h *TrackingHandler) RecordClick(c *gin.Context) {
	var req models.RecordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	ipAddress := req.IPAddress
	if ipAddress == "" {
		ipAddress = c.ClientIP()
	}
	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = c.GetHeader("User-Agent")
	}

	if _, err := h.trackingService.RecordClick(req.CampaignID, req.UserID, req.Token, ipAddress, userAgent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RecordCredentials godoc
// @Summary Record a credential event
// @Description Compatibility endpoint that records a credential attempt from a JSON body
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body models.RecordCredentialsRequest true "Credential event"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/track/credentials [post]
func (h *TrackingHandler) RecordCredentials(c *gin.Context) {
	var req models.RecordCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	if err := h.trackingService.RecordCredentialAttempt(req.CampaignID, req.UserID, "", ""); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *TrackingHandler) writeTrackingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrTrackingIDsRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrCampaignNotFound), errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event", "details": err.Error()})
	}
}
