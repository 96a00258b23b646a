package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"tahiru.dev/internal/config"
	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/render"
	"tahiru.dev/internal/services"
)

// loadingRefreshSeconds is how soon the loading page asks for the grid again
const loadingRefreshSeconds = 2

// PageHandler serves the portfolio page
type PageHandler struct {
	portfolio *services.PortfolioService
	renderer  *render.Renderer
	opts      layout.Options
	cfg       *config.Config
	logger    *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PortfolioService, r *render.Renderer, opts layout.Options, cfg *config.Config, logger *zap.Logger) *PageHandler {
	return &PageHandler{portfolio: ps, renderer: r, opts: opts, cfg: cfg, logger: logger}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolio.Items(r.Context())
	if errors.Is(err, services.ErrProfilePending) {
		h.render(w, func(buf *bytes.Buffer) error {
			return h.renderer.RenderLoading(buf, render.LoadingData{
				Title:          h.cfg.Title,
				RefreshSeconds: loadingRefreshSeconds,
			})
		})
		return
	}
	if err != nil {
		h.logger.Error("building items", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	packing := layout.Pack(h.opts, h.cfg.Layout.DefaultViewportWidth, services.Boxes(items))
	data := render.PageData{
		Title:      h.cfg.Title,
		Cards:      render.BuildCards(items, &packing),
		GridHeight: packing.Height,
		Settings:   render.SettingsFrom(h.opts),
		CVPath:     "/cv.pdf",
	}
	h.render(w, func(buf *bytes.Buffer) error { return h.renderer.RenderPage(buf, data) })
}

// render buffers the page so a template error never leaves a half-written
// response
func (h *PageHandler) render(w http.ResponseWriter, exec func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := exec(&buf); err != nil {
		h.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
