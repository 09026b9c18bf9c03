package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// View lifecycle
	router.HandleFunc("/views", h.HandleCreateView).Methods("POST")
	router.HandleFunc("/views", h.HandleListViews).Methods("GET")
	router.HandleFunc("/views/{id}", h.HandleGetView).Methods("GET")
	router.HandleFunc("/views/{id}", h.HandleDeleteView).Methods("DELETE")
	router.HandleFunc("/views/{id}/data", h.HandleSetData).Methods("PUT")

	// Pipeline operations
	router.HandleFunc("/views/{id}/search", h.HandleSearch).Methods("POST")
	router.HandleFunc("/views/{id}/filter", h.HandleFilter).Methods("POST")
	router.HandleFunc("/views/{id}/sort/{column}", h.HandleSort).Methods("POST")
	router.HandleFunc("/views/{id}/multisort", h.HandleMultiSort).Methods("POST")

	// Paging
	router.HandleFunc("/views/{id}/page", h.HandleSetPage).Methods("PUT")
	router.HandleFunc("/views/{id}/page_size", h.HandleSetPageSize).Methods("PUT")
	router.HandleFunc("/views/{id}/events", h.HandleEvents).Methods("GET")

	// Reads
	router.HandleFunc("/views/{id}/items", h.HandleItems).Methods("GET")
	router.HandleFunc("/views/{id}/columns", h.HandleColumns).Methods("GET")

	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
}
