package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"portfolio/internal/models"
)

// ComposeContact renders the notification for a contact submission. Both
// bodies carry every field; reply-to is the submitter so the owner can
// answer directly.
func ComposeContact(m models.Message) Email {
	submitted := time.Now().Format("1/2/2006, 3:04:05 PM")

	var html strings.Builder
	if err := contactTemplate.Execute(&html, contactView{
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Submitted: submitted,
	}); err != nil {
		// Templates are static; an execute failure is a programming error.
		panic(err)
	}

	var text strings.Builder
	text.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&text, "Name: %s\n", m.Name)
	fmt.Fprintf(&text, "Email: %s\n", m.Email)
	fmt.Fprintf(&text, "Submitted: %s\n\n", submitted)
	fmt.Fprintf(&text, "Message:\n%s\n\n", m.Message)
	text.WriteString("---\nThis email was sent from your portfolio contact form.\n")

	return Email{
		Subject: fmt.Sprintf("Portfolio Contact: Message from %s", m.Name),
		ReplyTo: m.Email,
		HTML:    html.String(),
		Text:    text.String(),
	}
}

// ComposeHire renders the notification for a hire submission, with the
// accepted attachments passed through unmodified.
func ComposeHire(m models.Message, attachments []Attachment) Email {
	submitted := time.Now().Format("1/2/2006, 3:04:05 PM")

	filenames := make([]string, len(attachments))
	for i, a := range attachments {
		filenames[i] = a.Filename
	}

	var html strings.Builder
	if err := hireTemplate.Execute(&html, hireView{
		Message:     m,
		Attachments: filenames,
		Submitted:   submitted,
	}); err != nil {
		panic(err)
	}

	var text strings.Builder
	text.WriteString("NEW PROJECT REQUEST\n==================\n\n")
	fmt.Fprintf(&text, "PROJECT: %s\n\n", m.ProjectTitle)
	text.WriteString("PERSONAL INFORMATION:\n--------------------\n")
	fmt.Fprintf(&text, "Name: %s\n", m.Name)
	fmt.Fprintf(&text, "Email: %s\n", m.Email)
	if m.Phone != "" {
		fmt.Fprintf(&text, "Phone: %s\n", m.Phone)
	}
	if m.Company != "" {
		fmt.Fprintf(&text, "Company: %s\n", m.Company)
	}
	text.WriteString("\nPROJECT DETAILS:\n---------------\n")
	fmt.Fprintf(&text, "Project Type: %s\n", m.ProjectType)
	fmt.Fprintf(&text, "Budget: %s\n", m.Budget)
	fmt.Fprintf(&text, "Timeline: %s\n\n", m.Timeline)
	fmt.Fprintf(&text, "DESCRIPTION:\n%s\n\n", m.Message)
	if m.Requirements != "" {
		fmt.Fprintf(&text, "SPECIFIC REQUIREMENTS:\n%s\n\n", m.Requirements)
	}
	if m.Reference != "" {
		fmt.Fprintf(&text, "REFERENCE LINKS:\n%s\n\n", m.Reference)
	}
	if len(filenames) > 0 {
		fmt.Fprintf(&text, "ATTACHMENTS (%d):\n", len(filenames))
		for _, name := range filenames {
			fmt.Fprintf(&text, "- %s\n", name)
		}
		text.WriteString("\n")
	}
	text.WriteString("==================\n")
	fmt.Fprintf(&text, "Submitted: %s\n", submitted)
	text.WriteString("This email was sent from your portfolio hire form.\n")

	return Email{
		Subject:     fmt.Sprintf("🚀 New Project Request: %s", m.ProjectTitle),
		ReplyTo:     m.Email,
		HTML:        html.String(),
		Text:        text.String(),
		Attachments: attachments,
	}
}

type contactView struct {
	Name      string
	Email     string
	Message   string
	Submitted string
}

type hireView struct {
	models.Message
	Attachments []string
	Submitted   string
}

var contactTemplate = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #6366f1;">New Contact Form Submission</h2>
  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Submitted:</strong> {{.Submitted}}</p>
  </div>
  <div style="background-color: #ffffff; padding: 20px; border-left: 4px solid #6366f1;">
    <h3 style="margin-top: 0;">Message:</h3>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #e2e8f0;">
  <p style="color: #64748b; font-size: 12px;">This email was sent from your portfolio contact form.</p>
</div>`))

var hireTemplate = template.Must(template.New("hire").Parse(`<div style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto; background-color: #f8fafc; padding: 20px;">
  <div style="background-color: #6366f1; color: white; padding: 30px; border-radius: 8px 8px 0 0; text-align: center;">
    <h1 style="margin: 0; font-size: 28px;">🚀 New Project Request</h1>
    <p style="margin: 10px 0 0 0; opacity: 0.9;">{{.ProjectTitle}}</p>
  </div>
  <div style="background-color: white; padding: 30px; border-radius: 0 0 8px 8px;">
    <h2 style="color: #6366f1; border-bottom: 2px solid #e2e8f0; padding-bottom: 10px;">Personal Information</h2>
    <table style="width: 100%; margin-bottom: 20px;">
      <tr><td style="padding: 8px 0; color: #64748b; width: 150px;"><strong>Name:</strong></td><td style="padding: 8px 0;">{{.Name}}</td></tr>
      <tr><td style="padding: 8px 0; color: #64748b;"><strong>Email:</strong></td><td style="padding: 8px 0;"><a href="mailto:{{.Email}}" style="color: #6366f1;">{{.Email}}</a></td></tr>
      {{if .Phone}}<tr><td style="padding: 8px 0; color: #64748b;"><strong>Phone:</strong></td><td style="padding: 8px 0;">{{.Phone}}</td></tr>{{end}}
      {{if .Company}}<tr><td style="padding: 8px 0; color: #64748b;"><strong>Company:</strong></td><td style="padding: 8px 0;">{{.Company}}</td></tr>{{end}}
    </table>
    <h2 style="color: #6366f1; border-bottom: 2px solid #e2e8f0; padding-bottom: 10px; margin-top: 30px;">Project Details</h2>
    <table style="width: 100%; margin-bottom: 20px;">
      <tr><td style="padding: 8px 0; color: #64748b; width: 150px;"><strong>Project Type:</strong></td><td style="padding: 8px 0;">{{.ProjectType}}</td></tr>
      <tr><td style="padding: 8px 0; color: #64748b;"><strong>Budget:</strong></td><td style="padding: 8px 0;">{{.Budget}}</td></tr>
      <tr><td style="padding: 8px 0; color: #64748b;"><strong>Timeline:</strong></td><td style="padding: 8px 0;">{{.Timeline}}</td></tr>
    </table>
    <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="margin-top: 0; color: #0f172a;">Description:</h3>
      <p style="white-space: pre-wrap; line-height: 1.6; color: #334155;">{{.Message.Message}}</p>
    </div>
    {{if .Requirements}}<div style="background-color: #f1f5f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="margin-top: 0; color: #0f172a;">Specific Requirements:</h3>
      <p style="white-space: pre-wrap; line-height: 1.6; color: #334155;">{{.Requirements}}</p>
    </div>{{end}}
    {{if .Reference}}<div style="background-color: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="margin-top: 0; color: #0f172a;">Reference Links:</h3>
      <p style="white-space: pre-wrap; line-height: 1.6; color: #334155;">{{.Reference}}</p>
    </div>{{end}}
    {{if .Attachments}}<div style="background-color: #fef3c7; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="margin-top: 0; color: #0f172a;">📎 Attachments ({{len .Attachments}}):</h3>
      <ul style="margin: 0; padding-left: 20px;">{{range .Attachments}}<li>{{.}}</li>{{end}}</ul>
    </div>{{end}}
    <hr style="margin: 30px 0; border: none; border-top: 1px solid #e2e8f0;">
    <p style="color: #64748b; font-size: 12px; text-align: center; margin: 0;">
      Submitted on {{.Submitted}}<br>
      This email was sent from your portfolio hire form.
    </p>
  </div>
</div>`))
