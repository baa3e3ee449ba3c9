// Package video provides the frame source and annotated-frame sink
// collaborators for a measurement run. File-backed implementations go
// through OpenCV; in-memory implementations back tests and synthetic
// runs.
package video

import "image"

// Source yields video frames in presentation order.
type Source interface {
	// Read returns the next frame, or io.EOF once the stream ends.
	Read() (image.Image, error)
	// Close releases the underlying stream.
	Close() error
}

// Sink accepts annotated frames. Implementations fix their output
// resolution on the first appended frame.
type Sink interface {
	// Append writes one annotated frame.
	Append(frame *image.RGBA) error
	// Close finalizes the output. Closing twice is an error so run
	// lifecycles can assert exactly-once finalization.
	Close() error
}
