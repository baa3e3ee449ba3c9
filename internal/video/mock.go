package video

import (
	"errors"
	"image"
	"io"
)

// SliceSource serves in-memory frames, for tests and synthetic runs.
type SliceSource struct {
	Frames    []image.Image
	ReadError error
	Closed    bool
	next      int
}

// NewSliceSource builds a source over the given frames.
func NewSliceSource(frames ...image.Image) *SliceSource {
	return &SliceSource{Frames: frames}
}

func (s *SliceSource) Read() (image.Image, error) {
	if s.ReadError != nil {
		return nil, s.ReadError
	}
	if s.next >= len(s.Frames) {
		return nil, io.EOF
	}
	frame := s.Frames[s.next]
	s.next++
	return frame, nil
}

func (s *SliceSource) Close() error {
	s.Closed = true
	return nil
}

// MemorySink records appended frames for inspection.
type MemorySink struct {
	Frames      []*image.RGBA
	AppendError error
	CloseError  error
	Closed      bool
}

func (m *MemorySink) Append(frame *image.RGBA) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	if m.Closed {
		return errors.New("append to closed video sink")
	}
	m.Frames = append(m.Frames, frame)
	return nil
}

func (m *MemorySink) Close() error {
	if m.Closed {
		return errors.New("video sink already closed")
	}
	m.Closed = true
	return m.CloseError
}
