package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/responses"
	"portfolio/internal/services"
	"portfolio/internal/validation"
)

// SubmissionHandler exposes the contact and hire form endpoints over the
// submission pipeline.
type SubmissionHandler struct {
	submissions *services.SubmissionService
}

func NewSubmissionHandler(submissions *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// Contact handles POST /api/contact
func (h *SubmissionHandler) Contact(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.submissions.SubmitContact(c.Request.Context(), req)
	if err != nil {
		failSubmission(c, err, "Failed to send message. Please try again later.")
		return
	}

	responses.Success(c, http.StatusOK, nil,
		"Your message has been sent successfully! I'll get back to you soon.")
}

// Hire handles POST /api/hire (multipart, up to 5 files under "attachments")
func (h *SubmissionHandler) Hire(c *gin.Context) {
	var req services.HireRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["attachments"]
	}

	msg, err := h.submissions.SubmitHire(c.Request.Context(), req, files)
	if err != nil {
		failSubmission(c, err, "Failed to submit project request. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Your project request has been submitted successfully! I'll review it and get back to you within 24 hours.",
		"attachmentCount": len(msg.Attachments),
	})
}

// failSubmission maps pipeline errors onto the wire: validation and
// attachment violations are 400s with detail, everything else is a generic
// 500 carrying genericMsg so no internals leak.
func failSubmission(c *gin.Context, err error, genericMsg string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		responses.FailValidation(c, verrs)
		return
	}
	var attErr *services.AttachmentError
	if errors.As(err, &attErr) {
		responses.Fail(c, http.StatusBadRequest, attErr.Reason)
		return
	}
	var dispErr *services.DispatchError
	if errors.As(err, &dispErr) {
		slog.Error("email dispatch failed", "error", dispErr.Err, "requestId", c.GetString("requestId"))
	} else {
		slog.Error("submission failed", "error", err, "requestId", c.GetString("requestId"))
	}
	responses.Fail(c, http.StatusInternalServerError, genericMsg)
}
