// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the slide pipeline and validator over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/deckgen/internal/library"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Server is the deckgen HTTP API server.
type Server struct {
	router chi.Router
	store  *library.Store
	log    *slog.Logger
	cfg    types.ServerConfig
}

// NewServer creates and configures the HTTP server. store may be nil
// when no deck library is configured; library routes are then omitted.
func NewServer(store *library.Store, log *slog.Logger, cfg types.ServerConfig) *Server {
	s := &Server{
		store: store,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints. Auth is disabled when no key is set.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/generate", s.handleGenerate)
		r.Post("/api/validate", s.handleValidate)

		if s.store != nil {
			r.Get("/api/library/decks", s.handleListDecks)
			r.Get("/api/library/search", s.handleSearch)
		}
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
