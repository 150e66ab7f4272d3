package store

import (
	"time"

	"portfolio/internal/models"
)

type MessageStore struct {
	file jsonFile
}

func NewMessageStore(path string) *MessageStore {
	return &MessageStore{file: jsonFile{path: path}}
}

// All returns every stored message. A missing file reads as an empty
// collection; the file is only created on the first append.
func (s *MessageStore) All() ([]models.Message, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()
	return s.loadLocked()
}

// Append stores a new message with id, date and read assigned here. The id
// is the submission time in milliseconds, clamped to strictly greater than
// every existing id so rapid submissions cannot collide.
func (s *MessageStore) Append(m models.Message) (models.Message, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	messages, err := s.loadLocked()
	if err != nil {
		return models.Message{}, err
	}

	now := time.Now().UTC()
	id := now.UnixMilli()
	for _, existing := range messages {
		if existing.ID >= id {
			id = existing.ID + 1
		}
	}
	m.ID = id
	m.Date = now
	m.Read = false

	messages = append(messages, m)
	if err := s.file.save(messages); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

// MarkRead sets the read flag, the only field mutable after creation.
func (s *MessageStore) MarkRead(id int64) (models.Message, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	messages, err := s.loadLocked()
	if err != nil {
		return models.Message{}, err
	}
	for i := range messages {
		if messages[i].ID == id {
			messages[i].Read = true
			if err := s.file.save(messages); err != nil {
				return models.Message{}, err
			}
			return messages[i], nil
		}
	}
	return models.Message{}, ErrNotFound
}

func (s *MessageStore) Delete(id int64) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	messages, err := s.loadLocked()
	if err != nil {
		return err
	}

	kept := messages[:0]
	for _, m := range messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(messages) {
		return ErrNotFound
	}
	return s.file.save(kept)
}

func (s *MessageStore) loadLocked() ([]models.Message, error) {
	var messages []models.Message
	if err := s.file.load(&messages); err != nil {
		return nil, err
	}
	return messages, nil
}
