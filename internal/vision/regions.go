package vision

import (
	"fmt"
	"image"
)

// eightNeighbors is the 8-connectivity neighborhood used for labeling.
var eightNeighbors = []image.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// ExtractRegions labels 8-connected foreground components with a
// breadth-first flood fill and merges every labeled pixel into a single
// foreground mask; the tracked object is treated as one blob regardless of
// how many fragments segmentation produced. The component count is returned
// for diagnostics. An all-background mask yields ErrNoObject.
func ExtractRegions(m *Mask) (*Mask, int, error) {
	merged := NewMask(m.W, m.H)
	seen := make([]bool, m.W*m.H)
	count := 0

	var queue []image.Point
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.At(x, y) || seen[y*m.W+x] {
				continue
			}
			count++

			queue = append(queue[:0], image.Pt(x, y))
			seen[y*m.W+x] = true
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				merged.Set(p.X, p.Y, true)

				for _, d := range eightNeighbors {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || ny < 0 || nx >= m.W || ny >= m.H {
						continue
					}
					if m.bits[ny*m.W+nx] && !seen[ny*m.W+nx] {
						seen[ny*m.W+nx] = true
						queue = append(queue, image.Pt(nx, ny))
					}
				}
			}
		}
	}

	if count == 0 {
		return nil, 0, fmt.Errorf("extract regions: %w", ErrNoObject)
	}
	return merged, count, nil
}
