package store

import (
	"encoding/json"
	"fmt"
	"time"

	"portfolio/internal/models"
)

type ProjectStore struct {
	file jsonFile
}

func NewProjectStore(path string) *ProjectStore {
	return &ProjectStore{file: jsonFile{path: path}}
}

func (s *ProjectStore) All() ([]models.Project, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()
	return s.loadLocked()
}

func (s *ProjectStore) Get(id int) (*models.Project, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	projects, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a project, assigning id = max(existing ids) + 1 (1 when the
// collection is empty) and stamping completedDate with today's date. Ids of
// deleted projects are never reused within the remaining set's maximum.
func (s *ProjectStore) Add(p models.Project) (models.Project, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	projects, err := s.loadLocked()
	if err != nil {
		return models.Project{}, err
	}

	next := 1
	for _, existing := range projects {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	p.ID = next
	p.CompletedDate = time.Now().Format("2006-01-02")

	projects = append(projects, p)
	if err := s.file.save(projects); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update shallow-merges patch over the stored record. The id is pinned to
// the id argument and completedDate is immutable, overriding anything the
// patch carries for either.
func (s *ProjectStore) Update(id int, patch map[string]any) (models.Project, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	projects, err := s.loadLocked()
	if err != nil {
		return models.Project{}, err
	}

	idx := -1
	for i := range projects {
		if projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Project{}, ErrNotFound
	}

	merged, err := toMap(projects[idx])
	if err != nil {
		return models.Project{}, err
	}
	for k, v := range patch {
		merged[k] = v
	}
	merged["id"] = id
	merged["completedDate"] = projects[idx].CompletedDate

	updated, err := fromMap(merged)
	if err != nil {
		return models.Project{}, err
	}
	projects[idx] = updated

	if err := s.file.save(projects); err != nil {
		return models.Project{}, err
	}
	return updated, nil
}

// Delete filters the project out. Removing nothing is a not-found condition
// and leaves the file untouched.
func (s *ProjectStore) Delete(id int) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	projects, err := s.loadLocked()
	if err != nil {
		return err
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return ErrNotFound
	}
	return s.file.save(kept)
}

func (s *ProjectStore) loadLocked() ([]models.Project, error) {
	var projects []models.Project
	if err := s.file.load(&projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func toMap(p models.Project) (map[string]any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("merge project: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("merge project: %w", err)
	}
	return m, nil
}

func fromMap(m map[string]any) (models.Project, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return models.Project{}, fmt.Errorf("merge project: %w", err)
	}
	var p models.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Project{}, fmt.Errorf("merge project: %w", err)
	}
	return p, nil
}
