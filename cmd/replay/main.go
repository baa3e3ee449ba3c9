// Command replay regenerates report artifacts from a run recorded in
// the sqlite motion store, without reprocessing the source video.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/estimator"
	"github.com/banshee-data/motion.report/internal/fsutil"
	"github.com/banshee-data/motion.report/internal/geom"
	"github.com/banshee-data/motion.report/internal/report"
	"github.com/banshee-data/motion.report/internal/version"
)

var (
	dbFile         = flag.String("db", "", "Sqlite motion store to replay from")
	runID          = flag.String("run", "", "Run id to replay (default: most recent)")
	listRuns       = flag.Bool("list", false, "List recorded runs and exit")
	infoFile       = flag.String("info", config.DefaultInfoFile, "Parameter report file")
	trajectoryPlot = flag.String("trajectory-plot", config.DefaultTrajectoryPlot, "Trajectory plot file")
	anglePlot      = flag.String("angle-plot", config.DefaultAnglePlot, "Angle plot file")
	htmlReport     = flag.String("html", "", "Optional HTML chart page")
	showVersion    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *dbFile == "" {
		log.Fatal("a motion store is required (-db)")
	}

	store, err := db.NewDB(*dbFile)
	if err != nil {
		log.Fatalf("failed to open motion store %s: %v", *dbFile, err)
	}
	defer store.Close()

	if *listRuns {
		if err := printRuns(store); err != nil {
			log.Fatalf("failed to list runs: %v", err)
		}
		return
	}

	if err := replay(store, *runID); err != nil {
		log.Fatalf("replay failed: %v", err)
	}
}

func printRuns(store *db.DB) error {
	runs, err := store.Runs(20)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  %d frames (%d processed)  %.2f px  %.2f px/s\n",
			r.RunID, r.VideoFile, r.Frames, r.Processed, r.TotalDistance, r.AverageSpeed)
	}
	return nil
}

// replay rebuilds the trajectory, angle, and speed series from the
// stored samples and rewrites the report artifacts for the run.
func replay(store *db.DB, id string) error {
	if id == "" {
		runs, err := store.Runs(1)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			return fmt.Errorf("motion store has no recorded runs")
		}
		id = runs[0].RunID
	}

	run, err := store.LoadRun(id)
	if err != nil {
		return fmt.Errorf("load run %s: %w", id, err)
	}
	samples, err := store.Samples(id)
	if err != nil {
		return fmt.Errorf("load samples for run %s: %w", id, err)
	}
	if len(samples) == 0 {
		return fmt.Errorf("run %s has no samples", id)
	}

	history := make([]geom.Point, 0, len(samples))
	angles := make([]float64, 0, len(samples))
	var speeds []float64
	for _, s := range samples {
		history = append(history, s.Centroid)
		angles = append(angles, s.AngleDeg)
		if s.Speed != nil {
			speeds = append(speeds, *s.Speed)
		}
	}

	summary := &estimator.Summary{
		RunID:          run.RunID,
		FPS:            run.FPS,
		SampleInterval: run.SampleInterval,
		Frames:         run.Frames,
		Processed:      run.Processed,
		TotalDistance:  run.TotalDistance,
		TotalTime:      run.TotalTime,
		AverageSpeed:   run.AverageSpeed,
	}

	fs := fsutil.OSFileSystem{}
	outputs := []string{*infoFile, *trajectoryPlot, *anglePlot, *htmlReport}
	for _, out := range outputs {
		if out == "" {
			continue
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := fs.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory %s: %w", dir, err)
			}
		}
	}

	if err := report.WriteSummary(fs, *infoFile, summary); err != nil {
		return err
	}
	if err := report.SaveTrajectoryPlot(history, *trajectoryPlot); err != nil {
		return err
	}
	if err := report.SaveAnglePlot(angles, *anglePlot); err != nil {
		return err
	}
	if *htmlReport != "" {
		if err := report.WriteMotionCharts(fs, *htmlReport, history, speeds, summary); err != nil {
			return err
		}
	}

	log.Printf("replayed run %s: %d samples, distance %.2f px, average speed %.2f px/s",
		run.RunID, len(samples), run.TotalDistance, run.AverageSpeed)
	return nil
}
