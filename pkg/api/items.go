package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtolley1/go-tabview/pkg/domain"
)

// ItemsResponse returns one of a view's collections.
type ItemsResponse struct {
	Scope string          `json:"scope"`
	Count int             `json:"count"`
	Items []domain.Record `json:"items"`
}

// HandleItems handles GET /views/{id}/items?scope=page|filtered|all|original.
// The default scope is the current page.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	scope := domain.ItemScope(r.URL.Query().Get("scope"))
	if scope == "" {
		scope = domain.ScopePage
	}
	if !domain.ValidScope(scope) {
		WriteJSONError(w, http.StatusBadRequest, "unknown scope: "+string(scope))
		return
	}

	s.mu.Lock()
	items, _ := s.view.Items(scope)
	s.mu.Unlock()

	if items == nil {
		items = []domain.Record{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ItemsResponse{Scope: string(scope), Count: len(items), Items: items})
}

// HandleColumns handles GET /views/{id}/columns.
func (h *Handler) HandleColumns(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	s.mu.Lock()
	columns := s.view.Columns()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]domain.ColumnState{"columns": columns})
}
