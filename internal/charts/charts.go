package charts

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/streamlens/streamlens/internal/analysis"
)

// accentRed is the brand accent used for every bar.
var accentRed = color.RGBA{R: 0xE5, G: 0x09, B: 0x14, A: 0xFF}

const renderDPI = 300

// SaveTypeChart renders the content-type distribution as a bar chart.
func SaveTypeChart(counts []analysis.TypeCount, path string) error {
	labels := make([]string, len(counts))
	values := make(plotter.Values, len(counts))
	for i, tc := range counts {
		labels[i] = tc.Type
		values[i] = float64(tc.Count)
	}
	return renderBars("Content Distribution: Movies vs TV Shows",
		"Content Type", "Number of Titles", labels, values, 10*vg.Inch, 6*vg.Inch, path)
}

// SaveCountryChart renders the top producing countries as a bar chart.
func SaveCountryChart(ranked []analysis.CountryCount, path string) error {
	labels := make([]string, len(ranked))
	values := make(plotter.Values, len(ranked))
	for i, cc := range ranked {
		labels[i] = cc.Country
		values[i] = float64(cc.Count)
	}
	return renderBars(fmt.Sprintf("Top %d Countries by Content Production", len(ranked)),
		"Country", "Number of Titles", labels, values, 12*vg.Inch, 7*vg.Inch, path)
}

func renderBars(title, xLabel, yLabel string, labels []string, values plotter.Values, w, h vg.Length, path string) error {
	if len(values) == 0 {
		return fmt.Errorf("no data to chart for %q", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = accentRed
	bars.LineStyle.Width = vg.Length(1)
	bars.LineStyle.Color = color.Black
	p.Add(bars)
	p.NominalX(labels...)

	maxVal := values[0]
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	p.Y.Min = 0
	p.Y.Max = maxVal * 1.15

	// Value label on top of each bar.
	xys := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v + maxVal*0.02}
		texts[i] = fmt.Sprintf("%.0f", v)
	}
	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("failed to build value labels: %w", err)
	}
	p.Add(valueLabels)

	return writePNG(p, w, h, path)
}

// writePNG draws the plot on a raster canvas at the fixed render DPI.
// plot.Save would use the default 72 DPI, too coarse for print output.
func writePNG(p *plot.Plot, w, h vg.Length, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(renderDPI))
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
