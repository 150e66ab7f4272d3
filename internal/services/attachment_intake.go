package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"portfolio/internal/mailer"
)

// AttachmentPolicy enforces the upload rules for hire submissions: at most
// MaxFiles files, none larger than MaxFileSize bytes, every declared
// content type on the allow-list.
type AttachmentPolicy struct {
	MaxFiles     int
	MaxFileSize  int64
	AllowedTypes []string
}

// Collect buffers the uploaded files in memory for the duration of the
// request. Any violation rejects the whole set.
func (p AttachmentPolicy) Collect(files []*multipart.FileHeader) ([]mailer.Attachment, error) {
	if len(files) > p.MaxFiles {
		return nil, &AttachmentError{Reason: fmt.Sprintf("Too many files. Maximum is %d files.", p.MaxFiles)}
	}

	attachments := make([]mailer.Attachment, 0, len(files))
	for _, header := range files {
		if header.Size > p.MaxFileSize {
			return nil, &AttachmentError{Reason: fmt.Sprintf(
				"File size too large. Maximum size is %dMB per file.", p.MaxFileSize>>20)}
		}

		contentType := header.Header.Get("Content-Type")
		if !p.allowed(contentType) {
			return nil, &AttachmentError{Reason: "Invalid file type. Allowed types: JPG, PNG, GIF, PDF, DOC, DOCX"}
		}

		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", header.Filename, err)
		}
		content, err := io.ReadAll(io.LimitReader(f, p.MaxFileSize+1))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read upload %s: %w", header.Filename, err)
		}
		// Size in the part header is client-declared; re-check what was read.
		if int64(len(content)) > p.MaxFileSize {
			return nil, &AttachmentError{Reason: fmt.Sprintf(
				"File size too large. Maximum size is %dMB per file.", p.MaxFileSize>>20)}
		}

		attachments = append(attachments, mailer.Attachment{
			Filename:    header.Filename,
			Content:     content,
			ContentType: contentType,
		})
	}
	return attachments, nil
}

func (p AttachmentPolicy) allowed(contentType string) bool {
	// Strip parameters like "; charset=binary" before comparing.
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	for _, t := range p.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
