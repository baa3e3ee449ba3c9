package report

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/motion.report/internal/estimator"
	"github.com/banshee-data/motion.report/internal/fsutil"
	"github.com/banshee-data/motion.report/internal/geom"
	"github.com/banshee-data/motion.report/internal/units"
)

// WriteMotionCharts renders an interactive HTML page with the
// trajectory scatter and the per-sample speed line.
func WriteMotionCharts(fs fsutil.FileSystem, path string, history []geom.Point, speeds []float64, s *estimator.Summary) error {
	scatterData := make([]opts.ScatterData, 0, len(history))
	for _, h := range history {
		scatterData = append(scatterData, opts.ScatterData{Value: []interface{}{h.X, h.Y}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Motion Report",
			Width:     "900px",
			Height:    "550px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Trajectory",
			Subtitle: fmt.Sprintf("run=%s frames=%d distance=%.2fpx", s.RunID, s.Frames, s.TotalDistance),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: trajectoryXMax, Name: "X (px)"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: trajectoryYMax, Name: "Y (px)"}),
	)
	scatter.AddSeries("positions", scatterData,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	xs := make([]int, len(speeds))
	lineData := make([]opts.LineData, 0, len(speeds))
	for i, v := range speeds {
		xs[i] = i + 1
		lineData = append(lineData, opts.LineData{Value: v})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Speed per Sample",
			Subtitle: fmt.Sprintf("average %s", units.FormatSpeed(s.AverageSpeed, units.PxPerSecond)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Sample"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speed (px/frame)"}),
	)
	line.SetXAxis(xs).AddSeries("speed", lineData)

	page := components.NewPage()
	page.AddCharts(scatter, line)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render motion charts: %w", err)
	}
	if err := fs.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write motion charts %s: %w", path, err)
	}
	return nil
}
