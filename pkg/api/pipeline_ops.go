package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dtolley1/go-tabview/pkg/domain"
)

// SearchRequest is the body of POST /views/{id}/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// HandleSearch applies a sticky search query to the view.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid search body")
		return
	}

	s.mu.Lock()
	s.view.Search(req.Query)
	state := s.view.State()
	s.mu.Unlock()

	h.log.Debug("search applied",
		zap.String("view_id", mux.Vars(r)["id"]),
		zap.String("query", req.Query),
		zap.Int("filtered", state.FilteredItems))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// HandleFilter applies a sticky equality filter built from the body's
// field→value map. An empty map clears nothing: filters stick until the view
// is rebuilt, matching the engine contract.
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	var criteria map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid filter body")
		return
	}

	s.mu.Lock()
	s.view.Filter(func(rec domain.Record) bool {
		return domain.MatchesFilter(rec, criteria)
	})
	state := s.view.State()
	s.mu.Unlock()

	h.log.Debug("filter applied",
		zap.String("view_id", mux.Vars(r)["id"]),
		zap.Any("criteria", criteria),
		zap.Int("filtered", state.FilteredItems))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// SortResponse reports the column's direction after a toggle.
type SortResponse struct {
	Column    string           `json:"column"`
	Direction string           `json:"direction"`
	State     domain.ViewState `json:"state"`
}

// HandleSort toggles the sort direction of the column named in the path.
// Unknown columns are not an error; the response direction is "none".
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s, ok := h.getSession(vars["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}
	column := vars["column"]

	s.mu.Lock()
	s.view.Sort(column)
	direction := "none"
	for _, c := range s.view.Columns() {
		for _, name := range c.DisplayNames {
			if name == column {
				direction = c.SortDirection
			}
		}
	}
	state := s.view.State()
	s.mu.Unlock()

	h.log.Debug("sort applied",
		zap.String("view_id", vars["id"]),
		zap.String("column", column),
		zap.String("direction", direction))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SortResponse{Column: column, Direction: direction, State: state})
}

// HandleMultiSort installs a multi-field comparator from the body's ordered
// sort keys, replacing any single-column sort.
func (h *Handler) HandleMultiSort(w http.ResponseWriter, r *http.Request) {
	s, ok := h.getSession(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "view not found")
		return
	}

	var fields []domain.SortField
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid multisort body")
		return
	}
	if len(fields) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "multisort requires at least one field")
		return
	}

	s.mu.Lock()
	s.view.MultiSort(MultiSortFunc(fields))
	state := s.view.State()
	s.mu.Unlock()

	h.log.Debug("multisort applied",
		zap.String("view_id", mux.Vars(r)["id"]),
		zap.Int("fields", len(fields)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}
