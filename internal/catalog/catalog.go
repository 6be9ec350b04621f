package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/facette/natsort"

	"accessplot/internal/domain"
)

// Source fetches the full transiting-exoplanet table from one backing store
// (archive API, local dump, etc.).
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.CatalogRow, error)
}

// Registry keeps a mapping from source names to their implementations.
type Registry struct {
	sources map[string]Source
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

// Register adds or replaces a catalog source.
func (r *Registry) Register(src Source) {
	if r.sources == nil {
		r.sources = map[string]Source{}
	}
	r.sources[src.Name()] = src
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Source, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("catalog source %s is not registered", name)
}

// Clean drops every row missing any of the five numeric fields required for
// filtering and plotting. Dropping to zero rows is valid. Clean is idempotent:
// its output contains only complete rows, so a second pass removes nothing.
func Clean(rows []domain.CatalogRow) []domain.CatalogRow {
	kept := make([]domain.CatalogRow, 0, len(rows))
	for _, row := range rows {
		if row.Complete() {
			kept = append(kept, row)
		}
	}
	return kept
}

// SortByName orders classified targets by planet name using natural ordering,
// so "HD 2 b" sorts before "HD 10 b". The sort is stable to keep a planet's
// facility fan-out rows in fetch order.
func SortByName(rows []domain.ClassifiedTarget) {
	sort.SliceStable(rows, func(i, j int) bool {
		return natsort.Compare(rows[i].PlanetName, rows[j].PlanetName)
	})
}
