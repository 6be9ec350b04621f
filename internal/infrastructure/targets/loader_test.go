package targets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTargets(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write targets file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	path := writeTargets(t, `planet_name,published,in_prep,obs_complete,future
WASP-4 b,1,0,0,0
WASP-6 b,0,1,0,0
GJ 1214 b,0,0,0,1
`)

	records, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	if !records[0].Published || records[0].InPrep {
		t.Fatalf("flag conversion wrong for %+v", records[0])
	}
	if !records[2].Future || records[2].Published {
		t.Fatalf("future flag not parsed: %+v", records[2])
	}
}

func TestLoaderAcceptsFileWithoutFutureColumn(t *testing.T) {
	t.Parallel()

	path := writeTargets(t, `planet_name,published,in_prep,obs_complete
WASP-19 b,0,0,1
`)

	records, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(records) != 1 || !records[0].ObsComplete || records[0].Future {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestLoaderHeaderOnlyFileIsEmptyTable(t *testing.T) {
	t.Parallel()

	path := writeTargets(t, "planet_name,published,in_prep,obs_complete,future\n")

	records, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty table, got %d records", len(records))
	}
}

func TestLoaderMissingFileIsFatal(t *testing.T) {
	t.Parallel()

	loader := NewLoader(filepath.Join(t.TempDir(), "absent.csv"))
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoaderSchemaMismatchIsFatal(t *testing.T) {
	t.Parallel()

	path := writeTargets(t, "planet,done\nWASP-4 b,1\n")
	if _, err := NewLoader(path).Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing required columns")
	}
}

func TestLoaderNonIntegerFlagIsFatal(t *testing.T) {
	t.Parallel()

	path := writeTargets(t, `planet_name,published,in_prep,obs_complete,future
WASP-4 b,yes,0,0,0
`)
	if _, err := NewLoader(path).Load(context.Background()); err == nil {
		t.Fatalf("expected error for non-integer flag value")
	}
}
