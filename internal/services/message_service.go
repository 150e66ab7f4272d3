package services

import (
	"time"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// MessageService is the admin-facing view over persisted submissions.
type MessageService struct {
	messages *store.MessageStore
	projects *store.ProjectStore
}

func NewMessageService(messages *store.MessageStore, projects *store.ProjectStore) *MessageService {
	return &MessageService{messages: messages, projects: projects}
}

func (s *MessageService) List() ([]models.Message, error) {
	messages, err := s.messages.All()
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (s *MessageService) MarkRead(id int64) (models.Message, error) {
	return s.messages.MarkRead(id)
}

func (s *MessageService) Delete(id int64) error {
	return s.messages.Delete(id)
}

// Stats are the dashboard counters derived on every request.
type Stats struct {
	TotalProjects  int `json:"totalProjects"`
	TotalMessages  int `json:"totalMessages"`
	TodayMessages  int `json:"todayMessages"`
	WeekMessages   int `json:"weekMessages"`
	UnreadMessages int `json:"unreadMessages"`
}

// Stats counts messages from today (same calendar day), the trailing seven
// days, and the unread set, plus the project total.
func (s *MessageService) Stats() (Stats, error) {
	projects, err := s.projects.All()
	if err != nil {
		return Stats{}, err
	}
	messages, err := s.messages.All()
	if err != nil {
		return Stats{}, err
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	stats := Stats{
		TotalProjects: len(projects),
		TotalMessages: len(messages),
	}
	for _, m := range messages {
		date := m.Date.Local()
		if sameDay(date, now) {
			stats.TodayMessages++
		}
		if !date.Before(weekAgo) && !date.After(now) {
			stats.WeekMessages++
		}
		if !m.Read {
			stats.UnreadMessages++
		}
	}
	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
