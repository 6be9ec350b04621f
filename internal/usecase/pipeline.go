package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"accessplot/internal/catalog"
	"accessplot/internal/domain"
	"accessplot/internal/ports"
)

// PipelineDeps wires all driven adapters into the pipeline.
type PipelineDeps struct {
	Catalog  catalog.Source
	Targets  ports.TargetSource
	Renderer ports.Renderer
	Logger   *slog.Logger
}

// Pipeline implements the fetch -> clean -> join -> classify -> plot workflow.
type Pipeline struct {
	catalogSrc catalog.Source
	targets    ports.TargetSource
	renderer   ports.Renderer
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		catalogSrc: deps.Catalog,
		targets:    deps.Targets,
		renderer:   deps.Renderer,
		logger:     deps.Logger,
	}
}

// Run executes the full pipeline and writes the figure.
func (p *Pipeline) Run(ctx context.Context) error {
	cleaned, classified, err := p.Classified(ctx)
	if err != nil {
		return err
	}

	if p.renderer == nil {
		return nil
	}
	if err := p.renderer.Render(cleaned, classified); err != nil {
		return fmt.Errorf("render figure: %w", err)
	}
	return nil
}

// Classified runs everything up to (and including) the join and returns both
// the cleaned catalog and the sorted classified-target table.
func (p *Pipeline) Classified(ctx context.Context) ([]domain.CatalogRow, []domain.ClassifiedTarget, error) {
	rows, err := p.catalogSrc.Fetch(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch catalog: %w", err)
	}

	cleaned := catalog.Clean(rows)
	p.info("catalog cleaned", "fetched", len(rows), "kept", len(cleaned), "dropped", len(rows)-len(cleaned))

	records, err := p.targets.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load targets: %w", err)
	}

	classified := Join(cleaned, records, p.logger)
	catalog.SortByName(classified)
	p.info("targets classified", "targets", len(records), "rows", len(classified))

	return cleaned, classified, nil
}

// Join restricts the cleaned catalog to the survey's targets and classifies
// each match. Targets are the driving side; a planet reported by several
// facilities fans out into one row per catalog entry. A target with no
// catalog match is excluded from the result but logged, never silently lost.
func Join(cleaned []domain.CatalogRow, records []domain.TargetRecord, logger *slog.Logger) []domain.ClassifiedTarget {
	byName := make(map[string][]domain.CatalogRow, len(cleaned))
	for _, row := range cleaned {
		byName[row.PlanetName] = append(byName[row.PlanetName], row)
	}

	out := make([]domain.ClassifiedTarget, 0, len(records))
	for _, rec := range records {
		matches, ok := byName[rec.PlanetName]
		if !ok {
			if logger != nil {
				logger.Warn("target not found in cleaned catalog", "planet", rec.PlanetName)
			}
			continue
		}

		status := domain.Classify(rec)
		for _, row := range matches {
			out = append(out, domain.ClassifiedTarget{
				CatalogRow: row,
				Target:     rec,
				Status:     status,
			})
		}
	}
	return out
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
