package ports

import (
	"context"

	"accessplot/internal/domain"
)

// TargetSource loads the survey's local target table.
type TargetSource interface {
	Load(ctx context.Context) ([]domain.TargetRecord, error)
}

// Renderer draws the catalog/target figure: the cleaned catalog as the
// background layer, the classified targets colored by status on top.
type Renderer interface {
	Render(background []domain.CatalogRow, targets []domain.ClassifiedTarget) error
}
