package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/secureaware/phishsim-backend/internal/config"
	"github.com/secureaware/phishsim-backend/internal/database"
	"github.com/secureaware/phishsim-backend/internal/database/repository"
	"github.com/secureaware/phishsim-backend/internal/mailer"
	"github.com/secureaware/phishsim-backend/internal/router"
	"github.com/secureaware/phishsim-backend/internal/services"
	"github.com/secureaware/phishsim-backend/internal/services/auth"
	"github.com/secureaware/phishsim-backend/internal/utils"

	// Import Swagger docs
	_ "github.com/secureaware/phishsim-backend/docs"
)

// @title Phishing Awareness API
// @version 1.0
// @description Simulated phishing campaign dispatch, tracking and reporting API

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by your JWT token (e.g. "Bearer <token>")

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Load mail and tracking settings
	cfg := config.Load()

	// Initialize database connection
	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize auth service
	operatorRepo := repository.NewOperatorRepository(db)
	authService := auth.NewAuthService(operatorRepo)

	// Create admin operator if not exists
	if err := authService.EnsureAdminOperator(); err != nil {
		logrus.Warnf("Failed to create admin operator: %v", err)
	} else {
		logrus.Info("Admin operator check completed")
	}

	// Initialize RabbitMQ service. Event publishing is best-effort: a broker
	// outage never blocks campaign dispatch or tracking.
	var publisher services.EventPublisher
	rabbitMQService, err := services.NewRabbitMQService()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
	} else {
		publisher = rabbitMQService
		defer rabbitMQService.Close()
	}

	// Select the mailer implementation
	m := mailer.FromConfig(cfg)

	// Initialize router
	r := router.SetupRouter(db, authService, m, publisher, cfg)

	// Configure HTTP server
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
