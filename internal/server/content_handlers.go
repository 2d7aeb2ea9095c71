package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/thomas/portfolio-cms/internal/types"
)

// ---------------------------------------------------------------------
// Health and full-state handlers
// ---------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.contentStore.State())
}

// ---------------------------------------------------------------------
// Hero and contact
// ---------------------------------------------------------------------

func (s *Server) handleUpdateHero(w http.ResponseWriter, r *http.Request) {
	var req types.HeroUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PersonalInfo != nil {
		if n := len(req.PersonalInfo.Titles); n < 1 || n > 10 {
			s.errorResponse(w, http.StatusBadRequest, "Between 1 and 10 titles are required")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, s.contentStore.UpdateHero(req))
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var req types.ContactUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.contentStore.UpdateContact(req))
}

// ---------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------

func (s *Server) handleReplaceExperience(w http.ResponseWriter, r *http.Request) {
	var list []types.Experience
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.contentStore.ReplaceExperience(list))
}

func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	var req types.ExperienceRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusCreated, s.contentStore.AddExperience(req))
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var req types.ExperienceRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	updated, err := s.contentStore.UpdateExperience(r.PathValue("id"), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := s.contentStore.DeleteExperience(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleReorderExperience(w http.ResponseWriter, r *http.Request) {
	s.handleReorder(w, r, "experience")
}

// ---------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------

func (s *Server) handleReplaceEducation(w http.ResponseWriter, r *http.Request) {
	var list []types.Education
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.contentStore.ReplaceEducation(list))
}

func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	var req types.EducationRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusCreated, s.contentStore.AddEducation(req))
}

func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	var req types.EducationRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	updated, err := s.contentStore.UpdateEducation(r.PathValue("id"), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	if err := s.contentStore.DeleteEducation(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleReorderEducation(w http.ResponseWriter, r *http.Request) {
	s.handleReorder(w, r, "education")
}

// ---------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------

func (s *Server) handleReplaceProjects(w http.ResponseWriter, r *http.Request) {
	var list []types.Project
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.contentStore.ReplaceProjects(list))
}

func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusCreated, s.contentStore.AddProject(req))
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	updated, err := s.contentStore.UpdateProject(r.PathValue("id"), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.contentStore.DeleteProject(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleReorderProjects(w http.ResponseWriter, r *http.Request) {
	s.handleReorder(w, r, "projects")
}

// ---------------------------------------------------------------------
// Skills
// ---------------------------------------------------------------------

func (s *Server) handleReplaceSkills(w http.ResponseWriter, r *http.Request) {
	var skills map[string][]types.Skill
	if err := json.NewDecoder(r.Body).Decode(&skills); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.contentStore.ReplaceSkills(skills))
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req types.CategoryRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	if err := s.contentStore.CreateCategory(req.Name); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.contentStore.DeleteCategory(r.PathValue("name")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req types.SkillRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	created, err := s.contentStore.AddSkill(r.PathValue("name"), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var req types.SkillRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	updated, err := s.contentStore.UpdateSkill(r.PathValue("name"), r.PathValue("id"), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := s.contentStore.DeleteSkill(r.PathValue("name"), r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleReorderSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ReorderRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	if err := s.contentStore.ReorderSkills(r.PathValue("name"), req.FromIndex, req.ToIndex); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reordered"})
}

// ---------------------------------------------------------------------
// Bulk operations
// ---------------------------------------------------------------------

func (s *Server) handleExportContent(w http.ResponseWriter, r *http.Request) {
	doc, err := s.contentStore.Export()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-content.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (s *Server) handleImportContent(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := s.contentStore.Import(doc); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.contentStore.State())
}

func (s *Server) handleResetContent(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.contentStore.Reset())
}

// ---------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------

// handleReorder serves the reorder endpoint for one of the reorderable list
// sections.
func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request, section string) {
	var req types.ReorderRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	if err := s.contentStore.Reorder(section, req.FromIndex, req.ToIndex); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reordered"})
}

// decodeValid decodes the request body into dst and runs struct validation.
// It writes the error response itself and reports whether the handler should
// continue.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := s.validator.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}

	return true
}
