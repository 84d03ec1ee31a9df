package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("nothing to plot")

// ExportOccupantLoadChart exports a bar chart of occupant load per floor
func ExportOccupantLoadChart(data ElevationData, filename string) (string, error) {
	if len(data.Floors) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Occupant Load per Floor"
	if data.Title != "" {
		p.Title.Text = data.Title + " - Occupant Load per Floor"
	}
	p.X.Label.Text = "Floor"
	p.Y.Label.Text = "Occupant load (persons)"
	p.Y.Min = 0

	values := make(plotter.Values, len(data.Floors))
	names := make([]string, len(data.Floors))
	labels := plotter.XYLabels{
		XYs:    make([]plotter.XY, len(data.Floors)),
		Labels: make([]string, len(data.Floors)),
	}
	for i, f := range data.Floors {
		values[i] = float64(f.OccupantLoad)
		names[i] = fmt.Sprintf("F%d", f.Number)
		labels.XYs[i] = plotter.XY{X: float64(i), Y: float64(f.OccupantLoad)}
		labels.Labels[i] = fmt.Sprintf("%d (%.0f m²)", f.OccupantLoad, f.Area)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", err
	}
	bars.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	bars.LineStyle.Color = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	p.Add(bars)

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return "", err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(l)
	p.NominalX(names...)
	p.Add(plotter.NewGrid())

	return save(p, filename)
}

// ExportFireFlowCurve exports required fire flow against percent involvement
func ExportFireFlowCurve(gpm []float64, filename string) (string, error) {
	if len(gpm) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Required Fire Flow"
	p.X.Label.Text = "Involvement (%)"
	p.Y.Label.Text = "Flow (gpm)"
	p.Y.Min = 0

	pts := make(plotter.XYs, len(gpm))
	for i, v := range gpm {
		pts[i] = plotter.XY{X: float64(i+1) * 100 / float64(len(gpm)), Y: v}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(line, points, plotter.NewGrid())

	return save(p, filename)
}

// save writes the plot, picking the format from the extension.
// Unknown extensions get .png appended. Returns the path written.
func save(p *plot.Plot, filename string) (string, error) {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
