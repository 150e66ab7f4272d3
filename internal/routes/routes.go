package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
)

// Options carries everything RegisterRoutes wires onto the engine.
type Options struct {
	Environment string
	AdminToken  string
	RateLimit   gin.HandlerFunc // optional, applied to the whole /api group

	Submissions   *handlers.SubmissionHandler
	Projects      *handlers.ProjectHandler
	AdminMessages *handlers.AdminMessageHandler
}

func RegisterRoutes(router *gin.Engine, opts Options) {
	api := router.Group("/api")
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status":      "OK",
				"timestamp":   time.Now().UTC().Format(time.RFC3339),
				"environment": opts.Environment,
			},
		})
	})

	submissionRoutes := NewSubmissionRoutes(opts.Submissions)
	submissionRoutes.RegisterRoutes(api)

	projectRoutes := NewProjectRoutes(opts.Projects)
	projectRoutes.RegisterRoutes(api)

	adminRoutes := NewAdminRoutes(opts.Projects, opts.AdminMessages, opts.AdminToken)
	adminRoutes.RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Not Found",
			"message": "The requested endpoint does not exist",
		})
	})
}
