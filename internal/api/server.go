// Package api exposes the project catalog and the accent preference over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"milxos/internal/model"
	"milxos/internal/prefs"
)

// Catalog is the read side of the project catalog.
type Catalog interface {
	ProjectsForProfile(model.Profile) []model.Project
	Find(id string) (model.Project, error)
}

// Preferences is the accent cell shared with the TUI sessions.
type Preferences interface {
	Accent() prefs.Accent
	SetAccent(ctx context.Context, a prefs.Accent) error
}

// Server represents the HTTP API server
type Server struct {
	router  *chi.Mux
	catalog Catalog
	prefs   Preferences
}

// Mount attaches an extra handler (the web terminal) under the same router.
type Mount struct {
	Pattern string
	Handler http.Handler
}

func NewServer(cat Catalog, p Preferences, mounts ...Mount) *Server {
	s := &Server{catalog: cat, prefs: p}
	s.setupRouter(mounts)
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter(mounts []Mount) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		// Timeout only wraps the JSON API; the web terminal holds long-lived websockets.
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/profiles", s.handleListProfiles)
		r.Get("/projects", s.handleListProjects)
		r.Get("/projects/{id}", s.handleGetProject)
		r.Get("/accent", s.handleGetAccent)
		r.Put("/accent", s.handleSetAccent)
	})

	for _, m := range mounts {
		r.Handle(m.Pattern, m.Handler)
	}

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
