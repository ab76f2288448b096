package fakeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

func projectCreated(p *lulu.Project) (time.Time, string) { return p.CreatedAt, p.ID }

func (s *Server) listProjects(writer http.ResponseWriter, request *http.Request) {
	page, size, ok := s.paging(writer, request)
	if !ok {
		return
	}

	status, err := lulu.ParseProjectStatus(request.URL.Query().Get("status"))
	if err != nil {
		s.invalid(writer, "status", err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := sortedValues(s.projects, projectCreated)

	filtered := all[:0]

	for _, project := range all {
		if status == "" || project.Status == status {
			filtered = append(filtered, project)
		}
	}

	s.writeJSON(writer, http.StatusOK, paginate(filtered, page, size))
}

func (s *Server) createProject(writer http.ResponseWriter, request *http.Request) {
	var body lulu.CreateProjectRequest
	if !s.decode(writer, request, &body) {
		return
	}

	if strings.TrimSpace(body.Title) == "" {
		s.invalid(writer, "title", "title is required")

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	project := &lulu.Project{
		ID:          newID("proj"),
		Title:       body.Title,
		Description: body.Description,
		Status:      lulu.ProjectStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
		Author:      body.Author,
		Metadata:    body.Metadata,
	}
	s.projects[project.ID] = project

	s.writeJSON(writer, http.StatusCreated, project)
}

func (s *Server) getProject(writer http.ResponseWriter, request *http.Request) {
	projectID := chi.URLParam(request, "projectID")

	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok {
		s.notFound(writer, "project", projectID)

		return
	}

	s.writeJSON(writer, http.StatusOK, project)
}

func (s *Server) updateProject(writer http.ResponseWriter, request *http.Request) {
	projectID := chi.URLParam(request, "projectID")

	var body lulu.UpdateProjectRequest
	if !s.decode(writer, request, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok {
		s.notFound(writer, "project", projectID)

		return
	}

	if body.Title != nil {
		if strings.TrimSpace(*body.Title) == "" {
			s.invalid(writer, "title", "title cannot be blank")

			return
		}

		project.Title = *body.Title
	}

	if body.Description != nil {
		project.Description = body.Description
	}

	if body.Status != nil {
		project.Status = *body.Status
	}

	if body.Author != nil {
		project.Author = body.Author
	}

	if body.Metadata != nil {
		project.Metadata = body.Metadata
	}

	project.UpdatedAt = s.now().UTC()

	s.writeJSON(writer, http.StatusOK, project)
}

func (s *Server) deleteProject(writer http.ResponseWriter, request *http.Request) {
	projectID := chi.URLParam(request, "projectID")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[projectID]; !ok {
		s.notFound(writer, "project", projectID)

		return
	}

	delete(s.projects, projectID)
	writer.WriteHeader(http.StatusNoContent)
}
