package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"portfolio/internal/models"
)

func newTestMessageStore(t *testing.T) *MessageStore {
	t.Helper()
	return NewMessageStore(filepath.Join(t.TempDir(), "messages.json"))
}

func TestMessageStore_AllMissingFileIsEmpty(t *testing.T) {
	s := newTestMessageStore(t)
	messages, err := s.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected empty collection, got %d messages", len(messages))
	}
}

func TestMessageStore_AppendAssignsFields(t *testing.T) {
	s := newTestMessageStore(t)

	before := time.Now().UTC()
	stored, err := s.Append(models.Message{
		Type:    models.MessageTypeContact,
		Name:    "Jo Lee",
		Email:   "jo@example.com",
		Message: "Hello, I would like to discuss a project with you please.",
		Read:    true, // must be reset
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	after := time.Now().UTC()

	if stored.ID <= 0 {
		t.Errorf("expected a positive id, got %d", stored.ID)
	}
	if stored.Read {
		t.Error("read must default to false at creation")
	}
	if stored.Date.Before(before) || stored.Date.After(after) {
		t.Errorf("date %v outside processing window [%v, %v]", stored.Date, before, after)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all[0].Type != models.MessageTypeContact {
		t.Errorf("unexpected stored messages: %+v", all)
	}
}

func TestMessageStore_AppendIDsUniqueUnderBurst(t *testing.T) {
	s := newTestMessageStore(t)

	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		stored, err := s.Append(models.Message{
			Type:    models.MessageTypeContact,
			Name:    "Burst",
			Email:   "burst@example.com",
			Message: "several appends inside one millisecond",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if seen[stored.ID] {
			t.Fatalf("duplicate id %d on append %d", stored.ID, i)
		}
		seen[stored.ID] = true
	}
}

func TestMessageStore_MarkRead(t *testing.T) {
	s := newTestMessageStore(t)

	stored, err := s.Append(models.Message{Type: models.MessageTypeContact, Name: "A", Email: "a@b.c", Message: "hello there friend"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	updated, err := s.MarkRead(stored.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !updated.Read {
		t.Error("expected read = true")
	}
	if !updated.Date.Equal(stored.Date) || updated.Message != stored.Message {
		t.Error("mark read mutated fields other than read")
	}

	all, _ := s.All()
	if len(all) != 1 || !all[0].Read {
		t.Error("read flag not persisted")
	}
}

func TestMessageStore_MarkReadMissing(t *testing.T) {
	s := newTestMessageStore(t)
	if _, err := s.MarkRead(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMessageStore_Delete(t *testing.T) {
	s := newTestMessageStore(t)

	stored, err := s.Append(models.Message{Type: models.MessageTypeHire, Name: "A", Email: "a@b.c", Message: "a full project description here"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Delete(stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ := s.All()
	if len(all) != 0 {
		t.Errorf("expected empty store, got %d", len(all))
	}

	if err := s.Delete(stored.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
