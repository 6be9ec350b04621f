package app

import (
	"context"
	"fmt"
	"log/slog"

	"accessplot/internal/catalog"
	"accessplot/internal/config"
	"accessplot/internal/domain"
	"accessplot/internal/infrastructure/archive"
	"accessplot/internal/infrastructure/render"
	"accessplot/internal/infrastructure/targets"
	"accessplot/internal/logging"
	"accessplot/internal/usecase"
)

// Application wires config to adapters and the pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := catalog.NewRegistry()
	registry.Register(archive.NewTAPClient(cfg.Archive, nil,
		baseLogger.With("component", "source.archive")))
	registry.Register(archive.NewDumpSource(cfg.Catalog.File,
		baseLogger.With("component", "source.file")))

	source, err := registry.Resolve(cfg.Catalog.Source)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewScatter(cfg.Plot, baseLogger.With("component", "render"))
	if err != nil {
		return nil, fmt.Errorf("configure renderer: %w", err)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Catalog:  source,
		Targets:  targets.NewLoader(cfg.Targets.Path),
		Renderer: renderer,
		Logger:   baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline}, nil
}

// Run executes the full pipeline and writes the figure.
func (a *Application) Run(ctx context.Context) error {
	return a.pipeline.Run(ctx)
}

// Classified runs the pipeline without rendering and returns the sorted
// classified-target table.
func (a *Application) Classified(ctx context.Context) ([]domain.ClassifiedTarget, error) {
	_, classified, err := a.pipeline.Classified(ctx)
	return classified, err
}
