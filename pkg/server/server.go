// Package server wires the view API behind an HTTP server with structured
// request logging.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dtolley1/go-tabview/pkg/api"
	"github.com/dtolley1/go-tabview/pkg/dataset"
	"github.com/dtolley1/go-tabview/pkg/domain"
	"github.com/dtolley1/go-tabview/pkg/view"
)

// Server holds the router, handler registry and logger.
type Server struct {
	router  *mux.Router
	handler *api.Handler
	log     *zap.Logger
	cfg     Config
}

// NewServer creates a server around a fresh view registry.
func NewServer(cfg Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	factory := func(ds *domain.Dataset) domain.View {
		return api.NewRecordView(ds, view.WithPageSize[domain.Record](cfg.DefaultPageSize))
	}

	s := &Server{
		router:  mux.NewRouter(),
		handler: api.NewHandler(log, factory),
		log:     log,
		cfg:     cfg,
	}

	s.handler.RegisterRoutes(s.router)
	s.router.Use(s.requestLogger)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Warn("no route", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		http.NotFound(w, r)
	})

	return s
}

// requestLogger logs the method, path and duration of each request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}

// Handler exposes the API handler for in-process use.
func (s *Server) Handler() *api.Handler {
	return s.handler
}

// PreloadDataset loads a dataset file and registers a view over it,
// returning the new view's ID.
func (s *Server) PreloadDataset(path string) (string, error) {
	ds, err := dataset.LoadAny(path)
	if err != nil {
		return "", err
	}
	id, err := s.handler.CreateView(ds)
	if err != nil {
		return "", err
	}
	s.log.Info("dataset preloaded",
		zap.String("path", path),
		zap.String("view_id", id),
		zap.Int("records", len(ds.Records)))
	return id, nil
}
