package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/database/repository"
	"github.com/secureaware/phishsim-backend/internal/models"
	"github.com/secureaware/phishsim-backend/internal/services"
)

type EducationHandler struct {
	educationService *services.EducationService
}

func NewEducationHandler(db *gorm.DB) *EducationHandler {
	educationRepo := repository.NewEducationRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &EducationHandler{
		educationService: services.NewEducationService(educationRepo, userRepo),
	}
}

// GetProgress godoc
// @Summary Get training progress
// @Description Get a user's awareness-training progress and certificate eligibility
// @Tags education
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} models.EducationProgressResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /education/{userId}/progress [get]
func (h *EducationHandler) GetProgress(c *gin.Context) {
	progress, err := h.educationService.GetProgress(c.Param("userId"))
	if err != nil {
		h.writeEducationError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// CompleteModule godoc
// @Summary Complete a training module
// @Description Record completion of a training module for a user. Repeated completions are idempotent.
// @Tags education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body models.CompleteModuleRequest true "Module completion"
// @Success 200 {object} models.EducationProgressResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /education/{userId}/modules [post]
func (h *EducationHandler) CompleteModule(c *gin.Context) {
	var req models.CompleteModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	progress, err := h.educationService.CompleteModule(c.Param("userId"), req.ModuleID)
	if err != nil {
		h.writeEducationError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// IssueCertificate godoc
// @Summary Issue a completion certificate
// @Description Issue the awareness certificate once enough modules are completed
// @Tags education
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} models.EducationProgressResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /education/{userId}/certificate [post]
func (h *EducationHandler) IssueCertificate(c *gin.Context) {
	progress, err := h.educationService.IssueCertificate(c.Param("userId"))
	if err != nil {
		h.writeEducationError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *EducationHandler) writeEducationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrModuleIDRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUserNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrCertificateNotEligible):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update education progress", "details": err.Error()})
	}
}
