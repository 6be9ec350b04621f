package archive

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"accessplot/internal/domain"
)

// DumpSource reads a previously downloaded catalog CSV from disk. It expects
// the same header the TAP endpoint produces.
type DumpSource struct {
	path   string
	logger *slog.Logger
}

// NewDumpSource points the source at a local dump file.
func NewDumpSource(path string, log *slog.Logger) *DumpSource {
	return &DumpSource{path: path, logger: log}
}

// Name identifies the source inside the registry.
func (s *DumpSource) Name() string {
	return "file"
}

// Fetch parses the dump. A missing file is fatal for the run.
func (s *DumpSource) Fetch(ctx context.Context) ([]domain.CatalogRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog dump: %w", err)
	}
	defer f.Close()

	rows, err := decodeCatalogCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog dump %s: %w", s.path, err)
	}

	if s.logger != nil {
		s.logger.Debug("catalog dump loaded", "path", s.path, "rows", len(rows))
	}
	return rows, nil
}
