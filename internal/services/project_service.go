package services

import (
	"portfolio/internal/models"
	"portfolio/internal/store"
)

// ProjectService covers the public reads and the admin CRUD over the
// projects collection.
type ProjectService struct {
	projects *store.ProjectStore
}

func NewProjectService(projects *store.ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Image           string   `json:"image"`
	Category        string   `json:"category"`
	Technologies    []string `json:"technologies"`
	Featured        bool     `json:"featured"`
	LiveURL         string   `json:"liveUrl"`
	GithubURL       string   `json:"githubUrl"`
}

func (s *ProjectService) List() ([]models.Project, error) {
	projects, err := s.projects.All()
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (s *ProjectService) Get(id int) (*models.Project, error) {
	return s.projects.Get(id)
}

// Create assigns the id and completedDate in the store; client-supplied
// values for either are ignored.
func (s *ProjectService) Create(req CreateProjectRequest) (models.Project, error) {
	return s.projects.Add(models.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           req.Image,
		Category:        req.Category,
		Technologies:    req.Technologies,
		Featured:        req.Featured,
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
	})
}

// Update shallow-merges the patch over the stored record.
func (s *ProjectService) Update(id int, patch map[string]any) (models.Project, error) {
	return s.projects.Update(id, patch)
}

func (s *ProjectService) Delete(id int) error {
	return s.projects.Delete(id)
}
