package handlers

import (
	"errors"
	"net/http"

	"tahiru.dev/internal/services"
)

// ItemsHandler serves the assembled item list
type ItemsHandler struct {
	portfolioService *services.PortfolioService
}

// NewItemsHandler creates a new ItemsHandler
func NewItemsHandler(ps *services.PortfolioService) *ItemsHandler {
	return &ItemsHandler{portfolioService: ps}
}

// ListItems handles GET /api/items
func (h *ItemsHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolioService.Items(r.Context())
	if errors.Is(err, services.ErrProfilePending) {
		respondLoading(w)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build items")
		return
	}

	respondJSON(w, http.StatusOK, items)
}
