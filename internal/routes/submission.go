package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
)

type SubmissionRoutes struct {
	handler *handlers.SubmissionHandler
}

func NewSubmissionRoutes(handler *handlers.SubmissionHandler) *SubmissionRoutes {
	return &SubmissionRoutes{handler: handler}
}

func (r *SubmissionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/contact", r.handler.Contact)
	router.POST("/hire", r.handler.Hire)
}
