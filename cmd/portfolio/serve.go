package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tahiru.dev/internal/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		router := handlers.SetupRoutes(handlers.Dependencies{
			Config:    a.cfg,
			Logger:    a.logger,
			Renderer:  a.renderer,
			Layout:    a.opts,
			GitHub:    a.github,
			Portfolio: a.portfolio,
			Grid:      a.grid,
		})

		srv := &http.Server{
			Addr:              a.cfg.ServerAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Warm the profile cache before the first visitor arrives
		go a.github.Resolve(ctx)

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("server listening", zap.String("addr", a.cfg.ServerAddr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
		a.grid.CloseAll()
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
