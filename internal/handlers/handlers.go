package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"tahiru.dev/internal/config"
	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/middleware"
	"tahiru.dev/internal/render"
	"tahiru.dev/internal/services"
)

// Dependencies are the services the routes are built from
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Renderer  *render.Renderer
	Layout    layout.Options
	GitHub    *services.GitHubService
	Portfolio *services.PortfolioService
	Grid      *services.GridService
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps Dependencies) http.Handler {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Compress(5))

	// Initialize handlers
	pageHandler := NewPageHandler(deps.Portfolio, deps.Renderer, deps.Layout, cfg, logger)
	githubHandler := NewGitHubHandler(deps.GitHub, logger)
	itemsHandler := NewItemsHandler(deps.Portfolio)
	gridHandler := NewGridHandler(deps.Grid, logger)
	contactHandler := NewContactHandler(deps.Portfolio.Document())

	// API routes
	r.Route("/api", func(r chi.Router) {
		if len(cfg.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.CORSOrigins,
				AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}

		r.Get("/github", githubHandler.GetProfile)
		r.Get("/items", itemsHandler.ListItems)

		// Grid sessions
		r.Post("/grid", gridHandler.Open)
		r.Get("/grid/{handle}", gridHandler.Get)
		r.Post("/grid/{handle}/events", gridHandler.Dispatch)
		r.Delete("/grid/{handle}", gridHandler.Close)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/contact", contactHandler.Compose)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Get("/cv.pdf", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticPath, "cv.pdf"))
	})

	r.Get("/", pageHandler.Index)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondLoading tells the client the profile is still being fetched
func respondLoading(w http.ResponseWriter) {
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "loading"})
}
