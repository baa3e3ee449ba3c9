// Package db persists measurement runs and per-frame samples to a
// local sqlite database.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/banshee-data/motion.report/internal/geom"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if needed) the sqlite database at path and
// ensures the motion schema exists.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			video_file        TEXT,
			fps               BIGINT,
			sample_interval   BIGINT,
			frames            BIGINT,
			processed         BIGINT,
			total_distance    DOUBLE,
			total_time        DOUBLE,
			average_speed     DOUBLE,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS samples (
			run_id            TEXT,
			frame_index       BIGINT,
			centroid_x        DOUBLE,
			centroid_y        DOUBLE,
			angle_deg         DOUBLE,
			speed             DOUBLE,
			area              DOUBLE,
			components        BIGINT,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// Run summarizes one completed measurement run.
type Run struct {
	RunID          string
	VideoFile      string
	FPS            int
	SampleInterval int
	Frames         int
	Processed      int
	TotalDistance  float64
	TotalTime      float64
	AverageSpeed   float64
}

// RecordRun inserts the summary row for a run.
func (db *DB) RecordRun(run Run) error {
	_, err := db.Exec(
		`INSERT INTO runs (
			run_id, video_file, fps, sample_interval, frames, processed,
			total_distance, total_time, average_speed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.VideoFile, run.FPS, run.SampleInterval,
		run.Frames, run.Processed,
		run.TotalDistance, run.TotalTime, run.AverageSpeed,
	)
	if err != nil {
		return err
	}
	return nil
}

// RecordSample inserts one per-frame measurement. speed is nil on the
// first sample of a run, where no displacement exists yet.
func (db *DB) RecordSample(
	runID string,
	frameIndex int,
	centroid geom.Point,
	angleDeg float64,
	speed *float64,
	area float64,
	components int,
) error {
	_, err := db.Exec(
		`INSERT INTO samples (
			run_id, frame_index, centroid_x, centroid_y, angle_deg,
			speed, area, components
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, frameIndex, centroid.X, centroid.Y, angleDeg,
		speed, area, components,
	)
	if err != nil {
		return err
	}
	return nil
}

// Sample is one recorded per-frame measurement.
type Sample struct {
	RunID      string
	FrameIndex int
	Centroid   geom.Point
	AngleDeg   float64
	Speed      *float64
	Area       float64
	Components int
}

func (s *Sample) String() string {
	speed := "none"
	if s.Speed != nil {
		speed = fmt.Sprintf("%.2f", *s.Speed)
	}
	return fmt.Sprintf(
		"Run: %s, Frame: %d, Centroid: (%.2f, %.2f), Angle: %.2f, Speed: %s, Area: %.0f, Components: %d",
		s.RunID, s.FrameIndex, s.Centroid.X, s.Centroid.Y,
		s.AngleDeg, speed, s.Area, s.Components,
	)
}

// Samples returns the recorded measurements of a run in frame order.
func (db *DB) Samples(runID string) ([]Sample, error) {
	rows, err := db.Query(
		`SELECT run_id, frame_index, centroid_x, centroid_y, angle_deg,
			speed, area, components
		FROM samples WHERE run_id = ? ORDER BY frame_index ASC`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var (
			s     Sample
			speed sql.NullFloat64
		)
		if err := rows.Scan(
			&s.RunID,
			&s.FrameIndex,
			&s.Centroid.X,
			&s.Centroid.Y,
			&s.AngleDeg,
			&speed,
			&s.Area,
			&s.Components,
		); err != nil {
			return nil, err
		}
		if speed.Valid {
			s.Speed = &speed.Float64
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// Runs returns the most recent run summaries, newest first.
func (db *DB) Runs(limit int) ([]Run, error) {
	rows, err := db.Query(
		`SELECT run_id, video_file, fps, sample_interval, frames, processed,
			total_distance, total_time, average_speed
		FROM runs ORDER BY timestamp DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.RunID,
			&r.VideoFile,
			&r.FPS,
			&r.SampleInterval,
			&r.Frames,
			&r.Processed,
			&r.TotalDistance,
			&r.TotalTime,
			&r.AverageSpeed,
		); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadRun fetches one run summary by id.
func (db *DB) LoadRun(runID string) (*Run, error) {
	var r Run
	err := db.QueryRow(
		`SELECT run_id, video_file, fps, sample_interval, frames, processed,
			total_distance, total_time, average_speed
		FROM runs WHERE run_id = ?`,
		runID,
	).Scan(
		&r.RunID,
		&r.VideoFile,
		&r.FPS,
		&r.SampleInterval,
		&r.Frames,
		&r.Processed,
		&r.TotalDistance,
		&r.TotalTime,
		&r.AverageSpeed,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SampleCount reports how many samples a run recorded.
func (db *DB) SampleCount(runID string) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM samples WHERE run_id = ?`, runID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// RunAverageSpeed reads back the stored average speed of a run.
func (db *DB) RunAverageSpeed(runID string) (float64, error) {
	var speed float64
	err := db.QueryRow(
		`SELECT average_speed FROM runs WHERE run_id = ?`, runID,
	).Scan(&speed)
	if err != nil {
		return 0, err
	}
	return speed, nil
}
