// Package api serves liveness and run-progress endpoints while the pipeline
// sleeps its way through the rate-limited fetch loop.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/pipeline"
)

type Server struct {
	router   *chi.Mux
	port     int
	progress *pipeline.Progress
}

func NewServer(port int, progress *pipeline.Progress) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     port,
		progress: progress,
	}

	router.Get("/healthz", s.health)
	router.Get("/api/v1/run/status", s.status)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("status server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(s.progress.Snapshot())
}
