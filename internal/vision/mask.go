// Package vision implements the per-frame motion-estimation pipeline:
// color-rule segmentation, morphological cleanup, connected-region
// extraction, moment analysis, and principal-axis angle stabilization.
//
// Masks and moments use the image coordinate convention throughout: origin
// at the top-left pixel, x increasing rightward, y increasing downward.
package vision

import "image"

// Mask is a binary foreground map with the same spatial dimensions as the
// frame it was segmented from. Bits are stored flat, row-major.
type Mask struct {
	W, H int
	bits []bool
}

// NewMask returns an all-background mask of the given dimensions.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, bits: make([]bool, w*h)}
}

// At reports whether (x, y) is foreground. Reads outside the mask return
// background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Set marks (x, y) as foreground or background.
func (m *Mask) Set(x, y int, v bool) {
	m.bits[y*m.W+x] = v
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Bounds returns the mask extent as an image rectangle anchored at the
// origin.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.W, m.H)
}
