package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"accessplot/internal/domain"
)

// Config holds every setting the pipeline needs. Defaults reproduce the
// survey's standard figure; a YAML file overrides individual keys.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Catalog CatalogConfig `yaml:"catalog"`
	Archive ArchiveConfig `yaml:"archive"`
	Targets TargetsConfig `yaml:"targets"`
	Plot    PlotConfig    `yaml:"plot"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CatalogConfig selects which registered catalog source feeds the pipeline.
type CatalogConfig struct {
	// Source is "archive" (live TAP query) or "file" (downloaded CSV dump).
	Source string `yaml:"source"`
	// File is the dump path, used only when Source is "file".
	File string `yaml:"file"`
}

// ArchiveConfig describes the archive TAP endpoint.
type ArchiveConfig struct {
	BaseURL        string `yaml:"baseUrl"`
	Table          string `yaml:"table"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// TargetsConfig locates the local survey-targets file.
type TargetsConfig struct {
	Path string `yaml:"path"`
}

// PlotConfig carries figure geometry, the fixed axis ranges, and the palette.
type PlotConfig struct {
	Output            string         `yaml:"output"`
	Title             string         `yaml:"title"`
	XMin              float64        `yaml:"xMin"`
	XMax              float64        `yaml:"xMax"`
	YMin              float64        `yaml:"yMin"`
	YMax              float64        `yaml:"yMax"`
	WidthInches       float64        `yaml:"widthInches"`
	HeightInches      float64        `yaml:"heightInches"`
	AnnotateMolecules bool           `yaml:"annotateMolecules"`
	Palette           []PaletteEntry `yaml:"palette"`
}

// PaletteEntry binds one status label to a hex color. The list order must
// match the domain category order; that order drives the legend.
type PaletteEntry struct {
	Status string `yaml:"status"`
	Color  string `yaml:"color"`
}

// Load returns the defaults overlaid with the YAML file at path, when given.
// An unreadable or unparsable file is an error, not a silent fallback.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot act on.
func (c Config) Validate() error {
	switch c.Catalog.Source {
	case "archive":
		if c.Archive.BaseURL == "" {
			return fmt.Errorf("catalog source %q requires archive.baseUrl", c.Catalog.Source)
		}
	case "file":
		if c.Catalog.File == "" {
			return fmt.Errorf("catalog source %q requires catalog.file", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	if c.Targets.Path == "" {
		return fmt.Errorf("targets.path is required")
	}
	if c.Plot.XMin >= c.Plot.XMax || c.Plot.YMin >= c.Plot.YMax {
		return fmt.Errorf("plot axis ranges are inverted or empty")
	}

	statuses := domain.Statuses()
	if len(c.Plot.Palette) != len(statuses) {
		return fmt.Errorf("palette must list %d categories, has %d", len(statuses), len(c.Plot.Palette))
	}
	for i, entry := range c.Plot.Palette {
		if entry.Status != string(statuses[i]) {
			return fmt.Errorf("palette entry %d is %q, want %q (fixed category order)",
				i, entry.Status, statuses[i])
		}
		if entry.Color == "" {
			return fmt.Errorf("palette entry %q has no color", entry.Status)
		}
	}

	return nil
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Catalog: CatalogConfig{Source: "archive"},
		Archive: ArchiveConfig{
			BaseURL:        "https://exoplanetarchive.ipac.caltech.edu/TAP/sync",
			Table:          "ps",
			TimeoutSeconds: 30,
		},
		Targets: TargetsConfig{Path: "targets.csv"},
		Plot: PlotConfig{
			Output:            "access_targets.png",
			Title:             "ACCESS Targets",
			XMin:              0,
			XMax:              3000,
			YMin:              0,
			YMax:              2.2,
			WidthInches:       12,
			HeightInches:      7,
			AnnotateMolecules: true,
			Palette: []PaletteEntry{
				{Status: string(domain.StatusPublished), Color: "#2ca02c"},
				{Status: string(domain.StatusInPrep), Color: "#1f77b4"},
				{Status: string(domain.StatusAnalysis), Color: "#ff7f0e"},
				{Status: string(domain.StatusCollecting), Color: "#7f7f7f"},
			},
		},
	}
}
