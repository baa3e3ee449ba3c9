package track

import (
	"errors"
	"sync"

	"github.com/banshee-data/motion.report/internal/geom"
)

// ErrEmptyHistory reports that too few positions have been recorded to
// measure a displacement. It marks absence, not failure.
var ErrEmptyHistory = errors.New("trajectory history has fewer than two points")

// Recorder is a Subscriber that accumulates every published position
// into an append-only trajectory.
type Recorder struct {
	mu      sync.Mutex
	history []geom.Point
}

// NewRecorder returns a Recorder with an empty trajectory.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Update appends p to the trajectory.
func (r *Recorder) Update(p geom.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, p)
}

// History returns a copy of the recorded trajectory in arrival order.
func (r *Recorder) History() []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]geom.Point, len(r.history))
	copy(out, r.history)
	return out
}

// LastDisplacement returns the Euclidean distance between the two most
// recent positions, or ErrEmptyHistory when fewer than two exist.
func (r *Recorder) LastDisplacement() (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.history)
	if n < 2 {
		return 0, ErrEmptyHistory
	}
	return geom.Distance(r.history[n-2], r.history[n-1]), nil
}

// Len reports the number of recorded positions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}
