// Package mailer renders submissions into notification emails and sends
// them through the configured SMTP relay.
package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"portfolio/internal/config"
)

// Attachment is an uploaded file buffered in memory for the duration of a
// request. It travels with the email only; the record store keeps filenames.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

type Email struct {
	Subject     string
	ReplyTo     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Sender delivers a rendered email. The SMTP implementation is swapped for
// a mock in tests.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// SMTPSender sends through the relay configured in EmailConfig. A client is
// dialed per send; there is no retry.
type SMTPSender struct {
	cfg config.EmailConfig
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(s.cfg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	if err := msg.ReplyTo(email.ReplyTo); err != nil {
		return fmt.Errorf("reply-to address: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)

	for _, a := range email.Attachments {
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Content),
			mail.WithFileContentType(mail.ContentType(a.ContentType))); err != nil {
			return fmt.Errorf("attach %s: %w", a.Filename, err)
		}
	}

	return client.DialAndSendWithContext(ctx, msg)
}
