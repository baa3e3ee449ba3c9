// Package estimator runs the motion measurement pipeline over a video:
// segment each sampled frame, locate the tracked object, publish its
// centroid, and write the annotated frame to the output sink.
package estimator

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/geom"
	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/render"
	"github.com/banshee-data/motion.report/internal/timeutil"
	"github.com/banshee-data/motion.report/internal/track"
	"github.com/banshee-data/motion.report/internal/video"
	"github.com/banshee-data/motion.report/internal/vision"
)

// Options wires an Estimator. Source, Sink, FPS and SampleInterval are
// required; the rest default to production implementations.
type Options struct {
	Source video.Source
	Sink   video.Sink

	// FPS is the frame rate used to convert frame counts to seconds.
	FPS int
	// SampleInterval processes every Nth frame, starting at frame 0.
	SampleInterval int

	// Segmenter defaults to the red-chromaticity rule.
	Segmenter vision.Segmenter
	// AngleJumpThreshold defaults to the stabilizer's own default.
	AngleJumpThreshold float64
	// Store is optional; nil disables persistence.
	Store *db.DB
	// Clock defaults to the wall clock.
	Clock timeutil.Clock
	// RunID defaults to a fresh UUID.
	RunID string
}

// Estimator drives one measurement run.
type Estimator struct {
	source   video.Source
	sink     video.Sink
	segment  vision.Segmenter
	angles   *vision.AngleLog
	registry *track.Registry
	recorder *track.Recorder
	store    *db.DB
	clock    timeutil.Clock
	runID    string
	fps      int
	interval int

	speeds        []float64
	totalDistance float64
}

// New validates opts and builds an Estimator with its trajectory
// recorder attached.
func New(opts Options) (*Estimator, error) {
	if opts.Source == nil {
		return nil, errors.New("estimator needs a frame source")
	}
	if opts.Sink == nil {
		return nil, errors.New("estimator needs a video sink")
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", opts.FPS)
	}
	if opts.SampleInterval < 1 {
		return nil, fmt.Errorf("sample interval must be at least 1, got %d", opts.SampleInterval)
	}

	segment := opts.Segmenter
	if segment == nil {
		segment = vision.NewRedChromaticity()
	}
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	e := &Estimator{
		source:   opts.Source,
		sink:     opts.Sink,
		segment:  segment,
		angles:   vision.NewAngleLog(opts.AngleJumpThreshold),
		registry: track.NewRegistry(),
		recorder: track.NewRecorder(),
		store:    opts.Store,
		clock:    clock,
		runID:    runID,
		fps:      opts.FPS,
		interval: opts.SampleInterval,
	}
	if err := e.registry.Attach("trajectory-recorder", e.recorder); err != nil {
		return nil, err
	}
	return e, nil
}

// Summary aggregates the measurements of one run.
type Summary struct {
	RunID          string
	FPS            int
	SampleInterval int
	// Frames counts every frame read; Processed counts sampled ones.
	Frames    int
	Processed int
	// TotalDistance sums the displacement between consecutive sampled
	// positions, in pixels.
	TotalDistance float64
	// TotalTime is Frames/FPS in seconds.
	TotalTime float64
	// AverageSpeed is TotalDistance/TotalTime, zero for empty videos.
	AverageSpeed float64
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Run reads the source to exhaustion, processing every Nth frame. The
// sink is closed exactly once before returning; a finalize failure
// turns an otherwise successful run into an error.
func (e *Estimator) Run(ctx context.Context) (summary *Summary, err error) {
	start := e.clock.Now()
	defer func() {
		if cerr := e.sink.Close(); cerr != nil && err == nil {
			summary = nil
			err = fmt.Errorf("finalize annotated video: %w", cerr)
		}
	}()

	frames := 0
	processed := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		frame, rerr := e.source.Read()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("read frame %d: %w", frames, rerr)
		}

		if frames%e.interval == 0 {
			if perr := e.processFrame(frames, frame); perr != nil {
				return nil, perr
			}
			processed++
		}
		frames++
	}

	totalTime := float64(frames) / float64(e.fps)
	averageSpeed := 0.0
	if totalTime > 0 {
		averageSpeed = e.totalDistance / totalTime
	}

	return &Summary{
		RunID:          e.runID,
		FPS:            e.fps,
		SampleInterval: e.interval,
		Frames:         frames,
		Processed:      processed,
		TotalDistance:  e.totalDistance,
		TotalTime:      totalTime,
		AverageSpeed:   averageSpeed,
		Elapsed:        e.clock.Since(start),
	}, nil
}

// processFrame measures one sampled frame and appends its annotated
// raster to the sink. Frames without a detectable object pass through
// unannotated.
func (e *Estimator) processFrame(index int, frame image.Image) error {
	mask, err := e.segment.Segment(frame)
	if err != nil {
		return fmt.Errorf("segment frame %d: %w", index, err)
	}

	merged, components, err := vision.ExtractRegions(vision.Close(mask))
	if err != nil {
		if errors.Is(err, vision.ErrNoObject) {
			monitoring.Logf("frame %d: no object detected", index)
			return e.appendFrame(index, render.NewFrameSurface(frame))
		}
		return fmt.Errorf("extract regions in frame %d: %w", index, err)
	}

	mom, err := vision.Analyze(merged)
	if err != nil {
		return fmt.Errorf("analyze frame %d: %w", index, err)
	}

	angle := e.angles.Append(mom.AngleDeg)
	e.registry.Publish(mom.Centroid)

	var speed *float64
	if d, derr := e.recorder.LastDisplacement(); derr == nil {
		e.speeds = append(e.speeds, d)
		e.totalDistance += d
		speed = &d
	} else if !errors.Is(derr, track.ErrEmptyHistory) {
		return fmt.Errorf("measure displacement at frame %d: %w", index, derr)
	}

	surface := render.NewFrameSurface(frame)
	render.Annotate(surface, mom, e.recorder.History())
	if err := e.appendFrame(index, surface); err != nil {
		return err
	}

	if e.store != nil {
		err := e.store.RecordSample(e.runID, index, mom.Centroid, angle, speed, mom.Area, components)
		if err != nil {
			monitoring.Logf("frame %d: recording sample: %v", index, err)
		}
	}
	return nil
}

func (e *Estimator) appendFrame(index int, surface render.Surface) error {
	if err := e.sink.Append(surface.Finalize()); err != nil {
		return fmt.Errorf("append frame %d to sink: %w", index, err)
	}
	return nil
}

// RunID identifies this run in logs and the motion store.
func (e *Estimator) RunID() string {
	return e.runID
}

// Registry exposes the pub-sub fan-out so callers can attach their own
// position subscribers before Run.
func (e *Estimator) Registry() *track.Registry {
	return e.registry
}

// Angles returns the stabilized angle log, one entry per detected
// frame, for plotting.
func (e *Estimator) Angles() []float64 {
	return e.angles.Samples()
}

// History returns the recorded trajectory.
func (e *Estimator) History() []geom.Point {
	return e.recorder.History()
}

// Speeds returns the per-sample displacements in pixels per processed
// frame.
func (e *Estimator) Speeds() []float64 {
	out := make([]float64, len(e.speeds))
	copy(out, e.speeds)
	return out
}
