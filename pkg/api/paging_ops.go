package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtolley1/go-tabview/pkg/domain"
)

// PageRequest is the body of PUT /views/{id}/page.
type PageRequest struct {
	Page int `json:"page"`
}

// PageSizeRequest is the body of PUT /views/{id}/page_size.
type PageSizeRequest struct {
	PageSize int `json:"page_size"`
}

// HandleSetPage moves the view to a page. Setting the current page again is a
// no-op; non-positive pages are legal and yield an empty page.
func (h *Handler) HandleSetPage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid page body")
		return
	}

	s.mu.Lock()
	s.view.SetPage(req.Page)
	state := s.view.State()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// HandleSetPageSize changes the page size. The engine silently ignores
// unchanged or non-positive sizes, so the response state is authoritative.
func (h *Handler) HandleSetPageSize(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	var req PageSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid page size body")
		return
	}

	s.mu.Lock()
	s.view.SetPageSize(req.PageSize)
	state := s.view.State()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// HandleEvents drains the view's buffered change notifications.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	s.mu.Lock()
	events := s.view.DrainEvents()
	s.mu.Unlock()

	if events == nil {
		events = []domain.PageEventInfo{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]domain.PageEventInfo{"events": events})
}
