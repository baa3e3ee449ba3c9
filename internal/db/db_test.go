package db

import (
	"path/filepath"
	"testing"

	"github.com/banshee-data/motion.report/internal/geom"
)

// setupTestDB creates a fresh sqlite database in a per-test temp dir.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "motion_test.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing test db: %v", err)
		}
	})
	return db
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestRecordRun(t *testing.T) {
	db := setupTestDB(t)

	run := Run{
		RunID:          "run-1",
		VideoFile:      "robot.mp4",
		FPS:            30,
		SampleInterval: 10,
		Frames:         300,
		Processed:      30,
		TotalDistance:  120.5,
		TotalTime:      10.0,
		AverageSpeed:   12.05,
	}
	if err := db.RecordRun(run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	speed, err := db.RunAverageSpeed("run-1")
	if err != nil {
		t.Fatalf("RunAverageSpeed failed: %v", err)
	}
	if speed != 12.05 {
		t.Errorf("average speed = %v, want 12.05", speed)
	}
}

func TestRecordRunDuplicateID(t *testing.T) {
	db := setupTestDB(t)

	run := Run{RunID: "run-1"}
	if err := db.RecordRun(run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if err := db.RecordRun(run); err == nil {
		t.Error("duplicate run_id insert succeeded, want primary key error")
	}
}

func TestRecordSample(t *testing.T) {
	db := setupTestDB(t)

	// First sample of a run has no speed yet.
	err := db.RecordSample("run-1", 0, geom.Point{X: 10, Y: 20}, 15.5, nil, 250, 1)
	if err != nil {
		t.Fatalf("RecordSample failed: %v", err)
	}
	err = db.RecordSample("run-1", 10, geom.Point{X: 13, Y: 24}, 16.1, floatPtr(5.0), 248, 2)
	if err != nil {
		t.Fatalf("RecordSample failed: %v", err)
	}

	count, err := db.SampleCount("run-1")
	if err != nil {
		t.Fatalf("SampleCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("sample count = %d, want 2", count)
	}
}

func TestSamplesReadBack(t *testing.T) {
	db := setupTestDB(t)

	if err := db.RecordSample("run-1", 10, geom.Point{X: 2, Y: 3}, 45, floatPtr(1.5), 100, 1); err != nil {
		t.Fatalf("RecordSample failed: %v", err)
	}
	if err := db.RecordSample("run-1", 0, geom.Point{X: 1, Y: 1}, 40, nil, 101, 1); err != nil {
		t.Fatalf("RecordSample failed: %v", err)
	}
	if err := db.RecordSample("run-2", 0, geom.Point{X: 9, Y: 9}, 0, nil, 50, 3); err != nil {
		t.Fatalf("RecordSample failed: %v", err)
	}

	samples, err := db.Samples("run-1")
	if err != nil {
		t.Fatalf("Samples failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if samples[0].FrameIndex != 0 || samples[1].FrameIndex != 10 {
		t.Errorf("samples not in frame order: %v, %v", samples[0].FrameIndex, samples[1].FrameIndex)
	}
	if samples[0].Speed != nil {
		t.Errorf("first sample speed = %v, want nil", *samples[0].Speed)
	}
	if samples[1].Speed == nil || *samples[1].Speed != 1.5 {
		t.Errorf("second sample speed = %v, want 1.5", samples[1].Speed)
	}
	if samples[1].Centroid != (geom.Point{X: 2, Y: 3}) {
		t.Errorf("centroid = %v, want (2,3)", samples[1].Centroid)
	}
}

func TestSamplesEmptyRun(t *testing.T) {
	db := setupTestDB(t)

	samples, err := db.Samples("missing")
	if err != nil {
		t.Fatalf("Samples failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("got %d samples for unknown run, want 0", len(samples))
	}
}

func TestSampleString(t *testing.T) {
	s := &Sample{
		RunID:      "run-1",
		FrameIndex: 5,
		Centroid:   geom.Point{X: 1.234, Y: 5.678},
		AngleDeg:   90,
		Area:       42,
		Components: 1,
	}
	got := s.String()
	want := "Run: run-1, Frame: 5, Centroid: (1.23, 5.68), Angle: 90.00, Speed: none, Area: 42, Components: 1"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLoadRunRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	want := Run{
		RunID:          "run-9",
		VideoFile:      "robot.mp4",
		FPS:            25,
		SampleInterval: 5,
		Frames:         100,
		Processed:      20,
		TotalDistance:  64.25,
		TotalTime:      4.0,
		AverageSpeed:   16.0625,
	}
	if err := db.RecordRun(want); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	got, err := db.LoadRun("run-9")
	if err != nil {
		t.Fatalf("LoadRun failed: %v", err)
	}
	if *got != want {
		t.Errorf("LoadRun = %+v, want %+v", *got, want)
	}
}

func TestLoadRunMissing(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.LoadRun("missing"); err == nil {
		t.Fatal("expected error for unknown run id")
	}
}

func TestRunsListsRecorded(t *testing.T) {
	db := setupTestDB(t)

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		if err := db.RecordRun(Run{RunID: id, VideoFile: id + ".mp4"}); err != nil {
			t.Fatalf("RecordRun %s failed: %v", id, err)
		}
	}

	runs, err := db.Runs(10)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	seen := map[string]bool{}
	for _, r := range runs {
		seen[r.RunID] = true
	}
	for _, id := range []string{"run-a", "run-b", "run-c"} {
		if !seen[id] {
			t.Errorf("run %s missing from listing", id)
		}
	}

	limited, err := db.Runs(2)
	if err != nil {
		t.Fatalf("Runs with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d runs with limit 2, want 2", len(limited))
	}
}
