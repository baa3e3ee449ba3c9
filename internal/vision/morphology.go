package vision

// Morphological operations with a fixed 3x3 all-ones structuring element.
// Border semantics follow the usual convention: neighbors outside the mask
// count as background for dilation and as foreground for erosion, so blobs
// touching the border are not eaten away.

// Dilate marks a pixel foreground when any pixel under the 3x3 element is
// foreground.
func Dilate(m *Mask) *Mask {
	out := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if anyNeighbor(m, x, y) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// Erode keeps a pixel foreground only when every in-bounds pixel under the
// 3x3 element is foreground.
func Erode(m *Mask) *Mask {
	out := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if allNeighbors(m, x, y) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// Close applies dilation followed by erosion, filling pin holes and sealing
// thin gaps while approximately preserving blob extent.
func Close(m *Mask) *Mask {
	return Erode(Dilate(m))
}

func anyNeighbor(m *Mask, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if m.At(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

func allNeighbors(m *Mask, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= m.W || ny >= m.H {
				continue
			}
			if !m.bits[ny*m.W+nx] {
				return false
			}
		}
	}
	return true
}
