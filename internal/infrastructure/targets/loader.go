package targets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"accessplot/internal/domain"
	"accessplot/internal/ports"
)

// requiredColumns must all appear in the header. The future column is part of
// the expected schema too but older target files omit it, so it stays optional.
var requiredColumns = []string{"planet_name", "published", "in_prep", "obs_complete"}

// Loader reads the survey's target list from a local CSV file.
type Loader struct {
	path string
}

var _ ports.TargetSource = (*Loader)(nil)

// NewLoader points the loader at the targets file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// targetRecord mirrors the targets file schema; flags are 0/1 integers.
type targetRecord struct {
	PlanetName  string `csv:"planet_name"`
	Published   int    `csv:"published"`
	InPrep      int    `csv:"in_prep"`
	ObsComplete int    `csv:"obs_complete"`
	Future      int    `csv:"future"`
}

// Load parses the file. A missing file, a header without the required
// columns, or a non-integer flag value is fatal. A header-only file yields an
// empty table, which is valid.
func (l *Loader) Load(ctx context.Context) ([]domain.TargetRecord, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	if err := checkHeader(raw); err != nil {
		return nil, fmt.Errorf("targets file %s: %w", l.path, err)
	}

	var records []targetRecord
	if err := gocsv.UnmarshalBytes(raw, &records); err != nil {
		return nil, fmt.Errorf("parse targets file %s: %w", l.path, err)
	}

	out := make([]domain.TargetRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.TargetRecord{
			PlanetName:  rec.PlanetName,
			Published:   rec.Published != 0,
			InPrep:      rec.InPrep != 0,
			ObsComplete: rec.ObsComplete != 0,
			Future:      rec.Future != 0,
		})
	}
	return out, nil
}

func checkHeader(raw []byte) error {
	header, err := csv.NewReader(bytes.NewReader(raw)).Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	present := map[string]bool{}
	for _, name := range header {
		present[name] = true
	}
	for _, name := range requiredColumns {
		if !present[name] {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}
