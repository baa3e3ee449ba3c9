package video

import (
	"fmt"
	"image"
	"io"

	"gocv.io/x/gocv"
)

// FileSource reads frames from a video file through OpenCV.
type FileSource struct {
	path string
	cap  *gocv.VideoCapture
	mat  gocv.Mat
}

// NewFileSource opens the video file at path for reading.
func NewFileSource(path string) (*FileSource, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", path, err)
	}
	return &FileSource{path: path, cap: cap, mat: gocv.NewMat()}, nil
}

// Read decodes the next frame. The capture reports end of stream with
// an empty read, surfaced here as io.EOF.
func (s *FileSource) Read() (image.Image, error) {
	if ok := s.cap.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, io.EOF
	}
	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("decode frame from %s: %w", s.path, err)
	}
	return img, nil
}

// Close releases the capture and its scratch buffer.
func (s *FileSource) Close() error {
	if err := s.mat.Close(); err != nil {
		return fmt.Errorf("release frame buffer: %w", err)
	}
	if err := s.cap.Close(); err != nil {
		return fmt.Errorf("close capture %s: %w", s.path, err)
	}
	return nil
}
