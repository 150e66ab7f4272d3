package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
	"portfolio/internal/middlewares"
)

type AdminRoutes struct {
	projects *handlers.ProjectHandler
	messages *handlers.AdminMessageHandler
	token    string
}

func NewAdminRoutes(projects *handlers.ProjectHandler, messages *handlers.AdminMessageHandler, token string) *AdminRoutes {
	return &AdminRoutes{projects: projects, messages: messages, token: token}
}

func (r *AdminRoutes) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middlewares.RequireAdmin(r.token)) // every admin route is gated
	{
		admin.GET("/projects", r.projects.List)
		admin.POST("/projects", r.projects.Create)
		admin.PUT("/projects/:id", r.projects.Update)
		admin.DELETE("/projects/:id", r.projects.Delete)

		admin.GET("/messages", r.messages.List)
		admin.PATCH("/messages/:id/read", r.messages.MarkRead)
		admin.DELETE("/messages/:id", r.messages.Delete)

		admin.GET("/stats", r.messages.Stats)
	}
}
