package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/config"
	"github.com/secureaware/phishsim-backend/internal/database/repository"
	"github.com/secureaware/phishsim-backend/internal/mailer"
	"github.com/secureaware/phishsim-backend/internal/models"
	"github.com/secureaware/phishsim-backend/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(db *gorm.DB, m mailer.Mailer, publisher services.EventPublisher, cfg *config.Config) *CampaignHandler {
	campaignRepo := repository.NewCampaignRepository(db)
	userRepo := repository.NewUserRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	campaignService := services.NewCampaignService(
		campaignRepo, userRepo, templateRepo, m, publisher, cfg.BaseURL, cfg.MailFrom)
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// CreateCampaign godoc
// @Summary Create and dispatch a campaign
// @Description Create a campaign and immediately send the simulated email to every target
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} models.DispatchCampaignResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.campaignService.Dispatch(&req)
	if err != nil {
		if isCampaignValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetCampaigns godoc
// @Summary List campaigns
// @Description Get all campaigns with their counters
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Campaign
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns [get]
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.GetCampaigns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaigns", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// GetCampaignByID godoc
// @Summary Get campaign by ID
// @Description Get a specific campaign with its targets
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaignByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaign", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func isCampaignValidationError(err error) bool {
	return errors.Is(err, models.ErrCampaignNameNotSpecified) ||
		errors.Is(err, models.ErrSubjectNotSpecified) ||
		errors.Is(err, models.ErrBodyNotSpecified) ||
		errors.Is(err, models.ErrNoTargetsSpecified) ||
		errors.Is(err, models.ErrTargetNotFound) ||
		errors.Is(err, models.ErrTemplateNotFound)
}
