package vision

import "errors"

var (
	// ErrNoObject reports that a mask contains no foreground pixels. Callers
	// skip publication and annotation overlays for that frame; the run
	// continues.
	ErrNoObject = errors.New("no foreground object in mask")

	// ErrDimensionMismatch reports a frame/mask size disagreement. This is a
	// pipeline wiring defect and aborts the run.
	ErrDimensionMismatch = errors.New("frame and mask dimensions disagree")
)
