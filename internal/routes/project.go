package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

// RegisterRoutes mounts the public, read-only project endpoints.
func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", r.handler.List)
		projects.GET("/:id", r.handler.Get)
	}
}
