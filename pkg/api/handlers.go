package api

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dtolley1/go-tabview/pkg/domain"
)

// ViewFactory builds a domain.View for a dataset. Tests substitute a factory
// returning mocks.
type ViewFactory func(ds *domain.Dataset) domain.View

// Handler provides HTTP handlers over a registry of view sessions.
type Handler struct {
	log     *zap.Logger
	factory ViewFactory

	mu       sync.RWMutex
	sessions map[string]*session
}

// session serializes access to one view. The engine itself is
// single-threaded; the lock is the HTTP layer's serialization of callers.
type session struct {
	mu   sync.Mutex
	name string
	view domain.View
}

// NewHandler creates an API handler. A nil factory defaults to real engine
// sessions; a nil logger defaults to a no-op logger.
func NewHandler(log *zap.Logger, factory ViewFactory) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if factory == nil {
		factory = func(ds *domain.Dataset) domain.View { return NewRecordView(ds) }
	}
	return &Handler{
		log:      log,
		factory:  factory,
		sessions: make(map[string]*session),
	}
}

// CreateView registers a new view session over the dataset and returns its ID.
func (h *Handler) CreateView(ds *domain.Dataset) (string, error) {
	if err := ds.Validate(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	s := &session{name: ds.Name, view: h.factory(ds)}

	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()

	h.log.Info("view created",
		zap.String("view_id", id),
		zap.String("dataset", ds.Name),
		zap.Int("records", len(ds.Records)),
		zap.Int("columns", len(ds.Columns)))
	return id, nil
}

// ViewIDs lists the registered session IDs.
func (h *Handler) ViewIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (h *Handler) getSession(id string) (*session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

func (h *Handler) dropSession(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[id]; !ok {
		return false
	}
	delete(h.sessions, id)
	return true
}
