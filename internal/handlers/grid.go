package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tahiru.dev/internal/models"
	"tahiru.dev/internal/services"
)

// GridHandler exposes grid sessions to the browser bridge
type GridHandler struct {
	gridService *services.GridService
	logger      *zap.Logger
}

// NewGridHandler creates a new GridHandler
func NewGridHandler(gs *services.GridService, logger *zap.Logger) *GridHandler {
	return &GridHandler{gridService: gs, logger: logger}
}

// Open handles POST /api/grid
func (h *GridHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req models.GridOpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.gridService.Open(r.Context(), req)
	if errors.Is(err, services.ErrProfilePending) {
		respondLoading(w)
		return
	}
	if err != nil {
		h.logger.Error("opening grid", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to open grid")
		return
	}

	respondJSON(w, http.StatusCreated, snap)
}

// Get handles GET /api/grid/{handle}
func (h *GridHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.gridService.Snapshot(chi.URLParam(r, "handle"))
	if err != nil {
		h.respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snap)
}

// Dispatch handles POST /api/grid/{handle}/events
func (h *GridHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var ev models.GridEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.gridService.Dispatch(chi.URLParam(r, "handle"), ev)
	if err != nil {
		h.respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Close handles DELETE /api/grid/{handle}
func (h *GridHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.gridService.Close(chi.URLParam(r, "handle"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *GridHandler) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "Grid session not found")
		return
	}
	respondError(w, http.StatusBadRequest, err.Error())
}
