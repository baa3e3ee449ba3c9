// Command motion measures the movement of a tracked object in a video
// and produces an annotated clip, plots, a parameter report, and an
// optional sqlite record of the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/estimator"
	"github.com/banshee-data/motion.report/internal/fsutil"
	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/report"
	"github.com/banshee-data/motion.report/internal/version"
	"github.com/banshee-data/motion.report/internal/video"
	"github.com/banshee-data/motion.report/internal/vision"
)

var (
	configFile     = flag.String("config", "", "JSON config file")
	videoFile      = flag.String("video", "", "Input video file")
	outputVideo    = flag.String("out", config.DefaultOutputVideo, "Annotated output video")
	infoFile       = flag.String("info", config.DefaultInfoFile, "Parameter report file")
	fps            = flag.Int("fps", config.DefaultFPS, "Video frame rate")
	interval       = flag.Int("interval", config.DefaultSampleInterval, "Process every Nth frame")
	dbFile         = flag.String("db", "", "Optional sqlite motion store")
	htmlReport     = flag.String("html", "", "Optional HTML chart page")
	trajectoryPlot = flag.String("trajectory-plot", config.DefaultTrajectoryPlot, "Trajectory plot file")
	anglePlot      = flag.String("angle-plot", config.DefaultAnglePlot, "Angle plot file")
	showVersion    = flag.Bool("version", false, "Print version and exit")
)

// applyFlagOverrides copies explicitly-set flags over config file
// values; flags the user never touched leave the config alone.
func applyFlagOverrides(cfg *config.EstimatorConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "video":
			cfg.VideoFile = videoFile
		case "out":
			cfg.OutputVideo = outputVideo
		case "info":
			cfg.InfoFile = infoFile
		case "fps":
			cfg.FPS = fps
		case "interval":
			cfg.SampleInterval = interval
		case "db":
			cfg.DatabaseFile = dbFile
		case "html":
			cfg.HTMLReport = htmlReport
		case "trajectory-plot":
			cfg.TrajectoryPlot = trajectoryPlot
		case "angle-plot":
			cfg.AnglePlot = anglePlot
		}
	})
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg := config.EmptyConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatalf("failed to load config %s: %v", *configFile, err)
		}
		cfg = loaded
	}
	applyFlagOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	if cfg.GetVideoFile() == "" {
		log.Fatal("input video is required (-video or video_file in the config)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("motion run failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.EstimatorConfig) error {
	fs := fsutil.OSFileSystem{}
	outputs := []string{
		cfg.GetOutputVideo(),
		cfg.GetInfoFile(),
		cfg.GetTrajectoryPlot(),
		cfg.GetAnglePlot(),
		cfg.GetHTMLReport(),
		cfg.GetDatabaseFile(),
	}
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

	source, err := video.NewFileSource(cfg.GetVideoFile())
	if err != nil {
		return err
	}
	defer func() {
		if err := source.Close(); err != nil {
			log.Printf("closing video source: %v", err)
		}
	}()

	var store *db.DB
	if path := cfg.GetDatabaseFile(); path != "" {
		store, err = db.NewDB(path)
		if err != nil {
			return fmt.Errorf("open motion store %s: %w", path, err)
		}
		defer store.Close()
	}

	est, err := estimator.New(estimator.Options{
		Source:         source,
		Sink:           video.NewWriterSink(cfg.GetOutputVideo(), float64(cfg.GetFPS())),
		FPS:            cfg.GetFPS(),
		SampleInterval: cfg.GetSampleInterval(),
		Segmenter: &vision.RedChromaticity{
			MinRed:   cfg.GetMinRedChromaticity(),
			MaxGreen: cfg.GetMaxGreenChromaticity(),
		},
		AngleJumpThreshold: cfg.GetAngleJumpThreshold(),
		Store:              store,
	})
	if err != nil {
		return err
	}

	log.Printf("run %s: processing %s (every %d frames at %d fps)",
		est.RunID(), cfg.GetVideoFile(), cfg.GetSampleInterval(), cfg.GetFPS())

	summary, err := est.Run(ctx)
	if err != nil {
		return err
	}

	if err := report.WriteSummary(fs, cfg.GetInfoFile(), summary); err != nil {
		return err
	}
	if err := report.SaveTrajectoryPlot(est.History(), cfg.GetTrajectoryPlot()); err != nil {
		return err
	}
	if err := report.SaveAnglePlot(est.Angles(), cfg.GetAnglePlot()); err != nil {
		return err
	}
	if path := cfg.GetHTMLReport(); path != "" {
		if err := report.WriteMotionCharts(fs, path, est.History(), est.Speeds(), summary); err != nil {
			return err
		}
	}

	if store != nil {
		err := store.RecordRun(db.Run{
			RunID:          summary.RunID,
			VideoFile:      cfg.GetVideoFile(),
			FPS:            summary.FPS,
			SampleInterval: summary.SampleInterval,
			Frames:         summary.Frames,
			Processed:      summary.Processed,
			TotalDistance:  summary.TotalDistance,
			TotalTime:      summary.TotalTime,
			AverageSpeed:   summary.AverageSpeed,
		})
		if err != nil {
			log.Printf("recording run summary: %v", err)
		}
	}

	monitoring.Logf("run %s: %d frames (%d processed) in %s, distance %.2f px, average speed %.2f px/s",
		summary.RunID, summary.Frames, summary.Processed, summary.Elapsed,
		summary.TotalDistance, summary.AverageSpeed)
	return nil
}
