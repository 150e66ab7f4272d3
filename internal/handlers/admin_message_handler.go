package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/responses"
	"portfolio/internal/services"
	"portfolio/internal/store"
)

// AdminMessageHandler serves the admin view over persisted submissions.
type AdminMessageHandler struct {
	messages *services.MessageService
}

func NewAdminMessageHandler(messages *services.MessageService) *AdminMessageHandler {
	return &AdminMessageHandler{messages: messages}
}

// List handles GET /api/admin/messages
func (h *AdminMessageHandler) List(c *gin.Context) {
	messages, err := h.messages.List()
	if err != nil {
		slog.Error("failed to list messages", "error", err)
		responses.Fail(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	responses.List(c, messages, len(messages))
}

// MarkRead handles PATCH /api/admin/messages/:id/read
func (h *AdminMessageHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Message not found")
		return
	}

	msg, err := h.messages.MarkRead(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, "Message not found")
			return
		}
		slog.Error("failed to mark message read", "error", err, "id", id)
		responses.Fail(c, http.StatusInternalServerError, "Failed to update message")
		return
	}
	responses.Success(c, http.StatusOK, msg, "Message marked as read")
}

// Delete handles DELETE /api/admin/messages/:id
func (h *AdminMessageHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Message not found")
		return
	}

	if err := h.messages.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, "Message not found")
			return
		}
		slog.Error("failed to delete message", "error", err, "id", id)
		responses.Fail(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Message deleted successfully")
}

// Stats handles GET /api/admin/stats
func (h *AdminMessageHandler) Stats(c *gin.Context) {
	stats, err := h.messages.Stats()
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		responses.Fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	responses.Success(c, http.StatusOK, stats, "")
}
