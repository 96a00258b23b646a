package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"tahiru.dev/internal/services"
)

// GitHubHandler proxies the GitHub profile
type GitHubHandler struct {
	githubService *services.GitHubService
	logger        *zap.Logger
}

// NewGitHubHandler creates a new GitHubHandler
func NewGitHubHandler(gs *services.GitHubService, logger *zap.Logger) *GitHubHandler {
	return &GitHubHandler{githubService: gs, logger: logger}
}

// GetProfile handles GET /api/github
func (h *GitHubHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.githubService.Fetch(r.Context())
	if err != nil {
		h.logger.Error("error fetching github data", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch GitHub data")
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=3600")
	respondJSON(w, http.StatusOK, profile)
}
