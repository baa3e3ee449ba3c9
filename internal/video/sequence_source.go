package video

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/jpeg"
	_ "image/png"
)

// ImageSequenceSource serves still images from disk as consecutive
// frames, in the order the paths were given.
type ImageSequenceSource struct {
	paths []string
	next  int
}

// NewImageSequenceSource builds a source over the given image paths.
func NewImageSequenceSource(paths ...string) *ImageSequenceSource {
	return &ImageSequenceSource{paths: paths}
}

func (s *ImageSequenceSource) Read() (image.Image, error) {
	if s.next >= len(s.paths) {
		return nil, io.EOF
	}
	path := s.paths[s.next]
	s.next++

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", path, err)
	}
	return img, nil
}

func (s *ImageSequenceSource) Close() error {
	return nil
}
