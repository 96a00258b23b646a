package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/models"
	"tahiru.dev/internal/render"
	"tahiru.dev/internal/services"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write a static snapshot of the grid",
	Long: `Fetches the GitHub profile once, builds the grid and writes index.html
and items.json to the output directory. A profile that cannot be fetched
leaves the GitHub card with placeholders.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		outputDir := args[0]
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		timeout := a.cfg.GitHub.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		result := a.github.Resolve(ctx)
		if result.State == models.ProfilePending {
			// nobody will refresh a static file
			result = models.ProfileResult{State: models.ProfileFailed, Err: ctx.Err()}
		}
		if result.Err != nil {
			a.logger.Warn("exporting without github profile", zap.Error(result.Err))
		}

		items, err := services.BuildItems(a.doc, result)
		if err != nil {
			return err
		}

		packing := layout.Pack(a.opts, a.cfg.Layout.DefaultViewportWidth, services.Boxes(items))
		var page bytes.Buffer
		if err := a.renderer.RenderPage(&page, render.PageData{
			Title:      a.cfg.Title,
			Cards:      render.BuildCards(items, &packing),
			GridHeight: packing.Height,
			Settings:   render.SettingsFrom(a.opts),
			CVPath:     "/cv.pdf",
		}); err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		if err := os.WriteFile(filepath.Join(outputDir, "index.html"), page.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing index.html: %w", err)
		}

		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling items: %w", err)
		}
		if err := os.WriteFile(filepath.Join(outputDir, "items.json"), data, 0644); err != nil {
			return fmt.Errorf("writing items.json: %w", err)
		}

		a.logger.Info("export complete",
			zap.String("dir", outputDir),
			zap.Int("items", len(items)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
