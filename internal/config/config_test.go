package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}

	if cfg.Catalog.Source != "archive" {
		t.Fatalf("default catalog source = %q", cfg.Catalog.Source)
	}
	if cfg.Plot.XMax != 3000 || cfg.Plot.YMax != 2.2 {
		t.Fatalf("default axis ranges wrong: x max %v, y max %v", cfg.Plot.XMax, cfg.Plot.YMax)
	}
	if len(cfg.Plot.Palette) != 4 {
		t.Fatalf("default palette has %d entries", len(cfg.Plot.Palette))
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
catalog:
  source: file
  file: dump.csv
targets:
  path: my_targets.csv
plot:
  output: out.pdf
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Catalog.Source != "file" || cfg.Catalog.File != "dump.csv" {
		t.Fatalf("catalog override not applied: %+v", cfg.Catalog)
	}
	if cfg.Targets.Path != "my_targets.csv" {
		t.Fatalf("targets override not applied: %q", cfg.Targets.Path)
	}
	if cfg.Plot.Output != "out.pdf" {
		t.Fatalf("plot output override not applied: %q", cfg.Plot.Output)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Plot.Title != "ACCESS Targets" {
		t.Fatalf("default title lost: %q", cfg.Plot.Title)
	}
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidateRejectsBadPalette(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Plot.Palette[0].Status = "Pending"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for palette label outside the category set")
	}

	cfg = defaultConfig()
	cfg.Plot.Palette = cfg.Plot.Palette[:2]
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for short palette")
	}
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Catalog.Source = "ftp"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown catalog source")
	}
}

func TestValidateRejectsInvertedAxes(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Plot.YMin, cfg.Plot.YMax = 2.2, 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for inverted axis range")
	}
}
