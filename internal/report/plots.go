package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/motion.report/internal/geom"
)

// Axis limits match the camera field the pipeline is calibrated for.
const (
	trajectoryXMax = 900
	trajectoryYMax = 550
)

// SaveTrajectoryPlot renders the complete trajectory in image
// coordinates, y growing downward.
func SaveTrajectoryPlot(history []geom.Point, path string) error {
	p := plot.New()
	p.Title.Text = "Complete Trajectory"
	p.X.Label.Text = "Horizontal Position"
	p.Y.Label.Text = "Vertical Position"
	p.X.Min, p.X.Max = 0, trajectoryXMax
	p.Y.Min, p.Y.Max = 0, trajectoryYMax
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	pts := make(plotter.XYs, len(history))
	for i, h := range history {
		pts[i] = plotter.XY{X: h.X, Y: h.Y}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trajectory line: %w", err)
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("Complete Trajectory", line)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("trajectory points: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.RingGlyph{}
	scatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("Trajectory Points", scatter)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save trajectory plot: %w", err)
	}
	return nil
}

// SaveAnglePlot renders the stabilized orientation angle per detected
// frame.
func SaveAnglePlot(angles []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Angle in Each Frame"
	p.X.Label.Text = "Frame Number"
	p.Y.Label.Text = "Angle (degrees)"

	pts := make(plotter.XYs, len(angles))
	for i, a := range angles {
		pts[i] = plotter.XY{X: float64(i), Y: a}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("angle line: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("Angle", line)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save angle plot: %w", err)
	}
	return nil
}
