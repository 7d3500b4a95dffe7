package cmd

import (
	"context"
	"fmt"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/controller"
	"github.com/gdgqassim/robo-roadmap/internal/export"
	"github.com/gdgqassim/robo-roadmap/internal/gemini"
)

// newController wires the catalog and a dispatcher built from cfg
func newController(ctx context.Context) (*controller.Controller, *gemini.Client, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load roadmap: %w", err)
	}
	client, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s client: %w", cfg.Backend, err)
	}
	if !client.Available() {
		internal.LogWarn("No API key configured; set ROBO_API_KEY or GEMINI_API_KEY")
	}
	return controller.New(cat, client, cfg.Language), client, nil
}

// exportTranscript writes the controller's transcript to path
func exportTranscript(ctrl *controller.Controller, source, path, format string) error {
	session := ctrl.Transcript().Session(source, internal.Metadata{
		Name:  "Robo chat",
		Model: cfg.Model,
	})
	if err := export.WriteFile(session, path, format); err != nil {
		return err
	}
	internal.PrintSuccess(fmt.Sprintf("Exported %d message(s) to %s", len(session.Messages), path))
	return nil
}

// interruptedOr reports an interrupt when ctx was cancelled, else the result's fault
func interruptedOr(ctx context.Context, res gemini.Result) error {
	if err := ctx.Err(); err != nil && res.Failed() {
		return fmt.Errorf("interrupted: %w", err)
	}
	return faultError(res)
}

// faultError turns a failed result into the command's error
func faultError(res gemini.Result) error {
	if !res.Failed() {
		return nil
	}
	return fmt.Errorf("generation failed (%s)", res.Kind)
}
