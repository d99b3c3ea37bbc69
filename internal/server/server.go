// Package server exposes the sync HTTP API used by the capture clients
// and the reviewer dashboard: survey upload, retrieval, deletion, and
// storage statistics.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// SurveyStore is the persistence the server needs.
type SurveyStore interface {
	SaveSurvey(ctx context.Context, survey *model.Survey) error
	GetSurvey(ctx context.Context, id string) (*model.Survey, error)
	ListSurveys(ctx context.Context) ([]model.Survey, error)
	DeleteSurvey(ctx context.Context, id string) error
	GetStats(ctx context.Context) (model.Stats, error)
}

// Server is the sync HTTP API.
type Server struct {
	store  SurveyStore
	router chi.Router
}

// New creates a sync server backed by the given store.
func New(store SurveyStore) *Server {
	s := &Server{store: store}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sync", s.handleSync)
		r.Get("/surveys", s.handleListSurveys)
		r.Get("/survey/{id}", s.handleGetSurvey)
		r.Delete("/survey/{id}", s.handleDeleteSurvey)
		r.Get("/stats", s.handleStats)
		r.Get("/health", s.handleHealth)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("sync server listening", "addr", addr)

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// corsMiddleware sets the permissive CORS headers the browser capture
// clients rely on.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
