package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dtolley1/go-tabview/pkg/domain"
)

// CreateViewResponse is returned when a view session is created.
type CreateViewResponse struct {
	ViewID string           `json:"view_id"`
	Name   string           `json:"name,omitempty"`
	State  domain.ViewState `json:"state"`
}

// HandleCreateView handles POST /views: the body is a JSON dataset.
func (h *Handler) HandleCreateView(w http.ResponseWriter, r *http.Request) {
	var ds domain.Dataset
	if err := json.NewDecoder(r.Body).Decode(&ds); err != nil {
		h.log.Warn("create view: bad body", zap.Error(err))
		WriteJSONError(w, http.StatusBadRequest, "invalid dataset body")
		return
	}

	id, err := h.CreateView(&ds)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, _ := h.getSession(id)
	s.mu.Lock()
	state := s.view.State()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateViewResponse{ViewID: id, Name: ds.Name, State: state})
}

// HandleListViews handles GET /views.
func (h *Handler) HandleListViews(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"views": h.ViewIDs()})
}

// HandleGetView handles GET /views/{id}.
func (h *Handler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	s.mu.Lock()
	state := s.view.State()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// HandleDeleteView handles DELETE /views/{id}.
func (h *Handler) HandleDeleteView(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.dropSession(id) {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}
	h.log.Info("view deleted", zap.String("view_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetData handles PUT /views/{id}/data: the body is a JSON array of
// records replacing the view's data source.
func (h *Handler) HandleSetData(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	var records []domain.Record
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid records body")
		return
	}

	s.mu.Lock()
	s.view.SetDataSource(records)
	state := s.view.State()
	s.mu.Unlock()

	h.log.Info("data source replaced",
		zap.String("view_id", mux.Vars(r)["id"]),
		zap.Int("records", len(records)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
