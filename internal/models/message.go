package models

import "time"

type MessageType string

const (
	MessageTypeContact MessageType = "contact"
	MessageTypeHire    MessageType = "hire"
)

// Message is a persisted contact or hire submission. The hire-only fields
// are omitted from the JSON document for contact messages. Only Read is
// ever mutated after creation.
type Message struct {
	ID           int64       `json:"id"`
	Type         MessageType `json:"type"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	Company      string      `json:"company,omitempty"`
	ProjectTitle string      `json:"projectTitle,omitempty"`
	ProjectType  string      `json:"projectType,omitempty"`
	Budget       string      `json:"budget,omitempty"`
	Timeline     string      `json:"timeline,omitempty"`
	Message      string      `json:"message"`
	Requirements string      `json:"requirements,omitempty"`
	Reference    string      `json:"reference,omitempty"`
	Attachments  []string    `json:"attachments,omitempty"`
	Date         time.Time   `json:"date"`
	Read         bool        `json:"read"`
}
