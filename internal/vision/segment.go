package vision

import (
	"fmt"
	"image"
)

// Segmenter classifies each pixel of a frame as foreground or background.
// Implementations must be deterministic and free of side effects; new
// segmentation rules are added as new implementations, never by branching
// inside an existing one.
type Segmenter interface {
	Segment(frame image.Image) (*Mask, error)
}

// Default chromaticity thresholds for the red tracking target.
const (
	DefaultMinRed   = 0.5
	DefaultMaxGreen = 0.2
)

// RedChromaticity marks a pixel foreground when its red chromaticity
// R/(R+G+B) reaches MinRed and its green chromaticity G/(R+G+B) stays at or
// below MaxGreen. Pixels with zero total intensity are background, which
// also guards the division.
type RedChromaticity struct {
	MinRed   float64
	MaxGreen float64
}

// NewRedChromaticity returns the rule with the default thresholds.
func NewRedChromaticity() RedChromaticity {
	return RedChromaticity{MinRed: DefaultMinRed, MaxGreen: DefaultMaxGreen}
}

// Segment applies the chromaticity rule to every pixel of frame. The mask is
// anchored at the origin regardless of the frame's bounds offset.
func (s RedChromaticity) Segment(frame image.Image) (*Mask, error) {
	bounds := frame.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("segment %dx%d frame: %w", bounds.Dx(), bounds.Dy(), ErrDimensionMismatch)
	}

	mask := NewMask(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := frame.At(x, y).RGBA()
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			b := float64(b16 >> 8)

			total := r + g + b
			if total == 0 {
				continue
			}
			if r/total >= s.MinRed && g/total <= s.MaxGreen {
				mask.Set(x-bounds.Min.X, y-bounds.Min.Y, true)
			}
		}
	}
	return mask, nil
}
