package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/config"
	"github.com/secureaware/phishsim-backend/internal/database/repository"
	"github.com/secureaware/phishsim-backend/internal/services"
	"github.com/secureaware/phishsim-backend/internal/services/excel"
)

type StatisticsHandler struct {
	statisticsService *services.StatisticsService
	excelService      *excel.Service
}

func NewStatisticsHandler(db *gorm.DB, cfg *config.Config) *StatisticsHandler {
	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	clickRepo := repository.NewClickRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)

	statisticsService := services.NewStatisticsService(userRepo, campaignRepo, clickRepo, credentialRepo)
	return &StatisticsHandler{
		statisticsService: statisticsService,
		excelService:      excel.NewExcelService(statisticsService, cfg.ExportsDir),
	}
}

// GetDepartmentStatistics godoc
// @Summary Department click rates
// @Description Get per-department click rates across all campaigns
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DepartmentStat
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /statistics/departments [get]
func (h *StatisticsHandler) GetDepartmentStatistics(c *gin.Context) {
	stats, err := h.statisticsService.DepartmentRates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get department statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUserStatistics godoc
// @Summary Per-user statistics
// @Description Get event counts and risk classification for every user
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserStat
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /statistics/users [get]
func (h *StatisticsHandler) GetUserStatistics(c *gin.Context) {
	stats, err := h.statisticsService.UserStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetVulnerabilityReport godoc
// @Summary Organization vulnerability report
// @Description Get the aggregated vulnerability report with risk buckets and average rates
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.VulnerabilityReport
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /reports/vulnerability [get]
func (h *StatisticsHandler) GetVulnerabilityReport(c *gin.Context) {
	report, err := h.statisticsService.VulnerabilityReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build vulnerability report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportUserStatistics godoc
// @Summary Export user statistics to Excel
// @Description Generate an .xlsx workbook of per-user statistics and download it
// @Tags statistics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /reports/export [get]
func (h *StatisticsHandler) ExportUserStatistics(c *gin.Context) {
	result, err := h.excelService.ExportUserStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export statistics", "details": err.Error()})
		return
	}

	c.FileAttachment(result.FilePath, result.Filename)
}
