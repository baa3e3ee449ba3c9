package video

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// MJPG keeps the output playable without container-specific codecs.
const videoCodec = "MJPG"

// WriterSink writes annotated frames to a motion-JPEG video file. The
// writer opens lazily on the first Append, which fixes the output
// resolution for the rest of the run.
type WriterSink struct {
	path   string
	fps    float64
	writer *gocv.VideoWriter
	width  int
	height int
	closed bool
}

// NewWriterSink prepares a sink writing to path at the given frame
// rate. No file is created until the first frame arrives.
func NewWriterSink(path string, fps float64) *WriterSink {
	return &WriterSink{path: path, fps: fps}
}

// Append encodes one frame. The first frame determines the output
// resolution; any later frame with different dimensions is rejected.
func (s *WriterSink) Append(frame *image.RGBA) error {
	if s.closed {
		return errors.New("append to closed video sink")
	}
	b := frame.Bounds()
	if s.writer == nil {
		w, err := gocv.VideoWriterFile(s.path, videoCodec, s.fps, b.Dx(), b.Dy(), true)
		if err != nil {
			return fmt.Errorf("open video writer %s: %w", s.path, err)
		}
		s.writer = w
		s.width, s.height = b.Dx(), b.Dy()
	}
	if b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("frame is %dx%d, output fixed at %dx%d",
			b.Dx(), b.Dy(), s.width, s.height)
	}

	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return fmt.Errorf("convert frame for encoding: %w", err)
	}
	defer mat.Close()

	if err := s.writer.Write(mat); err != nil {
		return fmt.Errorf("write frame to %s: %w", s.path, err)
	}
	return nil
}

// Close finalizes the video file. A sink that never received a frame
// closes cleanly without creating a file.
func (s *WriterSink) Close() error {
	if s.closed {
		return errors.New("video sink already closed")
	}
	s.closed = true
	if s.writer == nil {
		return nil
	}
	if err := s.writer.Close(); err != nil {
		return fmt.Errorf("finalize video %s: %w", s.path, err)
	}
	return nil
}
