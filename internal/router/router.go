package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/secureaware/phishsim-backend/internal/config"
	"github.com/secureaware/phishsim-backend/internal/handlers"
	"github.com/secureaware/phishsim-backend/internal/mailer"
	"github.com/secureaware/phishsim-backend/internal/middleware"
	"github.com/secureaware/phishsim-backend/internal/services"
	"github.com/secureaware/phishsim-backend/internal/services/auth"
)

// SetupRouter configures the Gin router with all campaign, tracking,
// statistics and education routes
func SetupRouter(db *gorm.DB, authService *auth.AuthService, m mailer.Mailer, publisher services.EventPublisher, cfg *config.Config) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create middleware with services
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(db)

	// Create handlers with services
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(db)
	templateHandler := handlers.NewTemplateHandler(db)
	campaignHandler := handlers.NewCampaignHandler(db, m, publisher, cfg)
	trackingHandler := handlers.NewTrackingHandler(db, publisher, cfg)
	statisticsHandler := handlers.NewStatisticsHandler(db, cfg)
	educationHandler := handlers.NewEducationHandler(db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Auth routes (public)
	r.POST("/auth/login", authHandler.Login)

	// Tracking routes (public, hit by campaign recipients)
	r.GET("/track/:campaignId/:userId/:token", trackingHandler.TrackClick)
	r.POST("/track/phishing", trackingHandler.SubmitPhishing)
	r.POST("/api/track/click", trackingHandler.RecordClick)
	r.POST("/api/track/credentials", trackingHandler.RecordCredentials)

	// Protected routes
	protected := r.Group("")
	protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
	{
		// Campaign routes
		campaigns := protected.Group("/campaigns")
		{
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaignByID)
		}

		// Statistics routes
		statistics := protected.Group("/statistics")
		{
			statistics.GET("/departments", statisticsHandler.GetDepartmentStatistics)
			statistics.GET("/users", statisticsHandler.GetUserStatistics)
		}

		// Report routes
		reports := protected.Group("/reports")
		{
			reports.GET("/vulnerability", statisticsHandler.GetVulnerabilityReport)
			reports.GET("/export", statisticsHandler.ExportUserStatistics)
		}

		// Education routes
		education := protected.Group("/education")
		{
			education.GET("/:userId/progress", educationHandler.GetProgress)
			education.POST("/:userId/modules", educationHandler.CompleteModule)
			education.POST("/:userId/certificate", educationHandler.IssueCertificate)
		}

		// User roster routes
		users := protected.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUserByID)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Template routes
		templates := protected.Group("/templates")
		{
			templates.POST("", templateHandler.CreateTemplate)
			templates.GET("", templateHandler.GetTemplates)
			templates.GET("/:id", templateHandler.GetTemplateByID)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
		}
	}

	return r
}
