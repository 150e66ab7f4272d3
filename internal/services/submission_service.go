package services

import (
	"context"
	"log/slog"
	"mime/multipart"
	"strings"

	"portfolio/internal/mailer"
	"portfolio/internal/models"
	"portfolio/internal/store"
	"portfolio/internal/validation"
)

// SubmissionService runs the form-submission pipeline: validate, intake
// attachments (hire only), dispatch the notification email, persist the
// record. The steps are strictly sequential with no retries.
type SubmissionService struct {
	sender   mailer.Sender
	messages *store.MessageStore
	policy   AttachmentPolicy
}

func NewSubmissionService(sender mailer.Sender, messages *store.MessageStore, policy AttachmentPolicy) *SubmissionService {
	return &SubmissionService{
		sender:   sender,
		messages: messages,
		policy:   policy,
	}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

func (r *ContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Message = strings.TrimSpace(r.Message)
}

var contactMessages = validation.Messages{
	"name.required":    "Name is required",
	"name.min":         "Name must be between 2 and 100 characters",
	"name.max":         "Name must be between 2 and 100 characters",
	"email.required":   "Email is required",
	"email.email":      "Please provide a valid email address",
	"message.required": "Message is required",
	"message.min":      "Message must be between 10 and 1000 characters",
	"message.max":      "Message must be between 10 and 1000 characters",
}

type HireRequest struct {
	FullName     string `form:"fullName" validate:"required,min=2,max=100"`
	Email        string `form:"email" validate:"required,email"`
	Phone        string `form:"phone" validate:"omitempty,phone"`
	Company      string `form:"company" validate:"omitempty,max=100"`
	ProjectTitle string `form:"projectTitle" validate:"required,min=3,max=200"`
	ProjectType  string `form:"projectType" validate:"required"`
	Budget       string `form:"budget" validate:"required"`
	Timeline     string `form:"timeline" validate:"required"`
	Description  string `form:"description" validate:"required,min=20,max=2000"`
	Requirements string `form:"requirements" validate:"omitempty,max=2000"`
	Reference    string `form:"reference" validate:"omitempty,max=1000"`
}

func (r *HireRequest) normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.ProjectTitle = strings.TrimSpace(r.ProjectTitle)
	r.ProjectType = strings.TrimSpace(r.ProjectType)
	r.Budget = strings.TrimSpace(r.Budget)
	r.Timeline = strings.TrimSpace(r.Timeline)
	r.Description = strings.TrimSpace(r.Description)
	r.Requirements = strings.TrimSpace(r.Requirements)
	r.Reference = strings.TrimSpace(r.Reference)
}

var hireMessages = validation.Messages{
	"fullName.required":     "Full name is required",
	"fullName.min":          "Name must be between 2 and 100 characters",
	"fullName.max":          "Name must be between 2 and 100 characters",
	"email.required":        "Email is required",
	"email.email":           "Please provide a valid email address",
	"phone.phone":           "Please provide a valid phone number",
	"company.max":           "Company name must be less than 100 characters",
	"projectTitle.required": "Project title is required",
	"projectTitle.min":      "Project title must be between 3 and 200 characters",
	"projectTitle.max":      "Project title must be between 3 and 200 characters",
	"projectType.required":  "Project type is required",
	"budget.required":       "Budget range is required",
	"timeline.required":     "Timeline is required",
	"description.required":  "Project description is required",
	"description.min":       "Description must be between 20 and 2000 characters",
	"description.max":       "Description must be between 20 and 2000 characters",
	"requirements.max":      "Requirements must be less than 2000 characters",
	"reference.max":         "Reference links must be less than 1000 characters",
}

// SubmitContact runs the pipeline for a contact submission. On success the
// returned message reflects what was (or should have been) persisted; a
// persistence failure after a successful send is logged and swallowed, since
// the email is the durable side effect and a retry would double-notify.
func (s *SubmissionService) SubmitContact(ctx context.Context, req ContactRequest) (models.Message, error) {
	req.normalize()
	if errs := validation.Validate(req, contactMessages); len(errs) > 0 {
		return models.Message{}, errs
	}

	msg := models.Message{
		Type:    models.MessageTypeContact,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.sender.Send(ctx, mailer.ComposeContact(msg)); err != nil {
		return models.Message{}, &DispatchError{Err: err}
	}

	stored, err := s.messages.Append(msg)
	if err != nil {
		slog.Error("failed to save contact message", "error", err)
		return msg, nil
	}
	return stored, nil
}

// SubmitHire runs the pipeline for a hire submission, including attachment
// intake. Attachments ride on the email; the record keeps filenames only.
func (s *SubmissionService) SubmitHire(ctx context.Context, req HireRequest, files []*multipart.FileHeader) (models.Message, error) {
	req.normalize()
	if errs := validation.Validate(req, hireMessages); len(errs) > 0 {
		return models.Message{}, errs
	}

	attachments, err := s.policy.Collect(files)
	if err != nil {
		return models.Message{}, err
	}

	filenames := make([]string, len(attachments))
	for i, a := range attachments {
		filenames[i] = a.Filename
	}

	msg := models.Message{
		Type:         models.MessageTypeHire,
		Name:         req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		ProjectTitle: req.ProjectTitle,
		ProjectType:  req.ProjectType,
		Budget:       req.Budget,
		Timeline:     req.Timeline,
		Message:      req.Description,
		Requirements: req.Requirements,
		Reference:    req.Reference,
		Attachments:  filenames,
	}

	if err := s.sender.Send(ctx, mailer.ComposeHire(msg, attachments)); err != nil {
		return models.Message{}, &DispatchError{Err: err}
	}

	stored, err := s.messages.Append(msg)
	if err != nil {
		slog.Error("failed to save hire message", "error", err)
		return msg, nil
	}
	return stored, nil
}
