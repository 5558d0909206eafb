package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"milxos/internal/catalog"
	"milxos/internal/library"
	"milxos/internal/model"
	"milxos/internal/prefs"
)

// DefaultProfile is used when /projects is called without ?profile=.
const DefaultProfile = model.ProfileStranger

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

type profileDTO struct {
	ID      model.Profile `json:"id"`
	Label   string        `json:"label"`
	Initial string        `json:"initial"`
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	out := make([]profileDTO, 0, len(model.Profiles()))
	for _, p := range model.Profiles() {
		out = append(out, profileDTO{ID: p, Label: p.Label(), Initial: p.Initial()})
	}
	respondJSON(w, http.StatusOK, out)
}

type projectListDTO struct {
	Profile  model.Profile   `json:"profile"`
	Query    string          `json:"query,omitempty"`
	Count    int             `json:"count"`
	Projects []model.Project `json:"projects"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	profile := DefaultProfile
	if raw := strings.TrimSpace(r.URL.Query().Get("profile")); raw != "" {
		p, err := model.ParseProfile(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_profile", err.Error())
			return
		}
		profile = p
	}
	q := r.URL.Query().Get("q")

	projects := library.Filter(s.catalog.ProjectsForProfile(profile), q)
	if projects == nil {
		projects = []model.Project{}
	}
	respondJSON(w, http.StatusOK, projectListDTO{
		Profile:  profile,
		Query:    strings.TrimSpace(q),
		Count:    len(projects),
		Projects: projects,
	})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.catalog.Find(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "project not found: "+id)
			return
		}
		slog.Error("failed to find project", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load project")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type accentDTO struct {
	Accent  prefs.Accent                  `json:"accent"`
	Swatch  prefs.Swatch                  `json:"swatch"`
	Palette map[prefs.Accent]prefs.Swatch `json:"palette"`
}

func (s *Server) accentView() accentDTO {
	a := s.prefs.Accent()
	palette := map[prefs.Accent]prefs.Swatch{}
	for _, x := range prefs.Accents() {
		palette[x] = x.Swatch()
	}
	return accentDTO{Accent: a, Swatch: a.Swatch(), Palette: palette}
}

func (s *Server) handleGetAccent(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.accentView())
}

type setAccentRequest struct {
	Accent string `json:"accent"`
}

func (s *Server) handleSetAccent(w http.ResponseWriter, r *http.Request) {
	var req setAccentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	a, err := prefs.ParseAccent(req.Accent)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_accent", err.Error())
		return
	}
	if err := s.prefs.SetAccent(r.Context(), a); err != nil {
		slog.Error("failed to save accent", "accent", a, "error", err)
		respondError(w, http.StatusInternalServerError, "save_failed", "failed to save accent")
		return
	}
	slog.Info("accent changed", "accent", a, "request_id", middleware.GetReqID(r.Context()))
	respondJSON(w, http.StatusOK, s.accentView())
}
