package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"accessplot/internal/config"
	"accessplot/internal/domain"
	"accessplot/internal/ports"
)

// moleculeGuide marks a transition temperature between molecules that matter
// for transmission spectroscopy. Label positions follow the survey's original
// poster figure.
type moleculeGuide struct {
	temp   float64
	labelY float64
	label  string
}

var moleculeGuides = []moleculeGuide{
	{temp: 300, labelY: 1.3, label: "H2O"},
	{temp: 600, labelY: 1.5, label: "NH3 -> N2"},
	{temp: 1000, labelY: 1.6, label: "CH4 -> CO"},
	{temp: 1300, labelY: 1.75, label: "MnS"},
}

// Condensation region for silicates and metal oxides, shown as a shaded band.
const (
	silicateBandMin = 1600
	silicateBandMax = 1900
)

// Scatter renders the target-status figure: the cleaned catalog as open gray
// circles, classified targets on top in the configured palette, fixed axes.
type Scatter struct {
	opts   config.PlotConfig
	colors []color.Color
	logger *slog.Logger
}

var _ ports.Renderer = (*Scatter)(nil)

// NewScatter validates the palette and binds the plot options.
func NewScatter(cfg config.PlotConfig, log *slog.Logger) (*Scatter, error) {
	colors := make([]color.Color, 0, len(cfg.Palette))
	for _, entry := range cfg.Palette {
		c, err := parseHexColor(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("palette color for %q: %w", entry.Status, err)
		}
		colors = append(colors, c)
	}
	return &Scatter{opts: cfg, colors: colors, logger: log}, nil
}

// Render draws both layers and writes the figure to the configured output
// path. The format follows the file extension (png, pdf, svg, ...). Points
// outside the fixed axis ranges are dropped, not an error.
func (s *Scatter) Render(background []domain.CatalogRow, targets []domain.ClassifiedTarget) error {
	p := plot.New()
	p.Title.Text = s.opts.Title
	p.X.Label.Text = "Equilibrium Temperature (K)"
	p.Y.Label.Text = "Planetary Radius (R_Jup)"
	p.X.Min, p.X.Max = s.opts.XMin, s.opts.XMax
	p.Y.Min, p.Y.Max = s.opts.YMin, s.opts.YMax

	bg, err := plotter.NewScatter(s.clip(backgroundPoints(background)))
	if err != nil {
		return fmt.Errorf("background layer: %w", err)
	}
	bg.GlyphStyle = draw.GlyphStyle{
		Color:  color.Gray{Y: 0xcc},
		Radius: vg.Points(2),
		Shape:  draw.RingGlyph{},
	}
	p.Add(bg)

	if s.opts.AnnotateMolecules {
		if err := s.annotateMolecules(p); err != nil {
			return fmt.Errorf("molecule annotations: %w", err)
		}
	}

	for i, status := range domain.Statuses() {
		sc, err := plotter.NewScatter(s.clip(statusPoints(targets, status)))
		if err != nil {
			return fmt.Errorf("layer %q: %w", status, err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  s.colors[i],
			Radius: vg.Points(4),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(sc)
		p.Legend.Add(string(status), sc)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	width := vg.Length(s.opts.WidthInches) * vg.Inch
	height := vg.Length(s.opts.HeightInches) * vg.Inch
	if err := p.Save(width, height, s.opts.Output); err != nil {
		return fmt.Errorf("save figure: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("figure written",
			"path", s.opts.Output,
			"background", len(background),
			"targets", len(targets))
	}
	return nil
}

func (s *Scatter) annotateMolecules(p *plot.Plot) error {
	guideStyle := draw.LineStyle{
		Color:  color.Gray{Y: 0x66},
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
	}

	labels := plotter.XYLabels{}
	var legendLine *plotter.Line
	for _, g := range moleculeGuides {
		line, err := plotter.NewLine(plotter.XYs{
			{X: g.temp, Y: s.opts.YMin},
			{X: g.temp, Y: s.opts.YMax},
		})
		if err != nil {
			return err
		}
		line.LineStyle = guideStyle
		p.Add(line)
		legendLine = line

		labels.XYs = append(labels.XYs, plotter.XY{X: g.temp, Y: g.labelY})
		labels.Labels = append(labels.Labels, g.label)
	}

	band, err := plotter.NewPolygon(plotter.XYs{
		{X: silicateBandMin, Y: s.opts.YMin},
		{X: silicateBandMax, Y: s.opts.YMin},
		{X: silicateBandMax, Y: s.opts.YMax},
		{X: silicateBandMin, Y: s.opts.YMax},
	})
	if err != nil {
		return err
	}
	band.Color = color.NRGBA{A: 0x30}
	band.LineStyle.Width = 0
	p.Add(band)

	labels.XYs = append(labels.XYs, plotter.XY{X: silicateBandMin, Y: 0.6})
	labels.Labels = append(labels.Labels, "Silicates/Metal-oxides")

	text, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(text)

	if legendLine != nil {
		p.Legend.Add("Temp. transition of molecules", legendLine)
	}
	return nil
}

// clip drops points outside the fixed axis ranges so they are hidden rather
// than drawn past the frame.
func (s *Scatter) clip(pts plotter.XYs) plotter.XYs {
	kept := make(plotter.XYs, 0, len(pts))
	for _, pt := range pts {
		if pt.X < s.opts.XMin || pt.X > s.opts.XMax {
			continue
		}
		if pt.Y < s.opts.YMin || pt.Y > s.opts.YMax {
			continue
		}
		kept = append(kept, pt)
	}
	return kept
}

func backgroundPoints(rows []domain.CatalogRow) plotter.XYs {
	pts := make(plotter.XYs, 0, len(rows))
	for _, row := range rows {
		if !row.Complete() {
			continue
		}
		pts = append(pts, plotter.XY{X: *row.EqTempK, Y: *row.RadiusJup})
	}
	return pts
}

func statusPoints(targets []domain.ClassifiedTarget, status domain.Status) plotter.XYs {
	pts := make(plotter.XYs, 0, len(targets))
	for _, t := range targets {
		if t.Status != status || !t.Complete() {
			continue
		}
		pts = append(pts, plotter.XY{X: *t.EqTempK, Y: *t.RadiusJup})
	}
	return pts
}

func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
