package main

import (
	"fmt"

	"go.uber.org/zap"

	"tahiru.dev/internal/config"
	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/logging"
	"tahiru.dev/internal/models"
	"tahiru.dev/internal/render"
	"tahiru.dev/internal/services"
)

// app holds everything built from the configuration
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	doc       *models.Document
	opts      layout.Options
	renderer  *render.Renderer
	github    *services.GitHubService
	portfolio *services.PortfolioService
	grid      *services.GridService
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	// A broken document is fatal, like a failed build
	doc, err := config.LoadDocument(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, err
	}

	opts := layout.DefaultOptions()
	gh := services.NewGitHubService(cfg.GitHub, logger.Named("github"))
	portfolio := services.NewPortfolioService(doc, gh, cfg.GitHub.PageWait)
	grid := services.NewGridService(portfolio, opts, cfg.Layout.MaxSessions, logger.Named("grid"))

	return &app{
		cfg:       cfg,
		logger:    logger,
		doc:       doc,
		opts:      opts,
		renderer:  renderer,
		github:    gh,
		portfolio: portfolio,
		grid:      grid,
	}, nil
}
