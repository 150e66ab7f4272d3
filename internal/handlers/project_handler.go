package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/responses"
	"portfolio/internal/services"
	"portfolio/internal/store"
)

// ProjectHandler serves the public project reads and the admin CRUD.
type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/projects and GET /api/admin/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		responses.Fail(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	responses.List(c, projects, len(projects))
}

// Get handles GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Project not found")
		return
	}

	project, err := h.projects.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("failed to fetch project", "error", err, "id", id)
		responses.Fail(c, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	responses.Success(c, http.StatusOK, project, "")
}

// Create handles POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projects.Create(req)
	if err != nil {
		slog.Error("failed to add project", "error", err)
		responses.Fail(c, http.StatusInternalServerError, "Failed to add project")
		return
	}
	responses.Success(c, http.StatusOK, project, "Project added successfully")
}

// Update handles PUT /api/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Project not found")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projects.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("failed to update project", "error", err, "id", id)
		responses.Fail(c, http.StatusInternalServerError, "Failed to update project")
		return
	}
	responses.Success(c, http.StatusOK, project, "Project updated successfully")
}

// Delete handles DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Project not found")
		return
	}

	if err := h.projects.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("failed to delete project", "error", err, "id", id)
		responses.Fail(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Project deleted successfully")
}
