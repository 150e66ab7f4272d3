package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/mailer"
	"portfolio/internal/middlewares"
	"portfolio/internal/routes"
	"portfolio/internal/services"
	"portfolio/internal/store"
)

func NewServer() *http.Server {
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	projects := store.NewProjectStore(filepath.Join(cfg.DataDir, "projects.json"))
	messages := store.NewMessageStore(filepath.Join(cfg.DataDir, "messages.json"))

	sender := mailer.NewSMTPSender(cfg.Email)

	// Dependency injection
	submissionService := services.NewSubmissionService(sender, messages, services.AttachmentPolicy{
		MaxFiles:     5,
		MaxFileSize:  cfg.MaxFileSize,
		AllowedTypes: cfg.AllowedFileTypes,
	})
	projectService := services.NewProjectService(projects)
	messageService := services.NewMessageService(messages, projects)

	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	projectHandler := handlers.NewProjectHandler(projectService)
	adminMessageHandler := handlers.NewAdminMessageHandler(messageService)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.Use(middlewares.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(router, routes.Options{
		Environment:   cfg.Environment,
		AdminToken:    cfg.AdminToken,
		RateLimit:     rateLimitMiddleware(cfg),
		Submissions:   submissionHandler,
		Projects:      projectHandler,
		AdminMessages: adminMessageHandler,
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// rateLimitMiddleware builds a per-IP limiter over the configured window,
// backed by an in-memory store.
func rateLimitMiddleware(cfg config.Config) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: cfg.RateLimitWindow,
		Limit:  cfg.RateLimitMax,
	}
	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
