package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/motion.report/internal/geom"
	"github.com/banshee-data/motion.report/internal/vision"
)

// TestAnnotateFirstFrame verifies that with a single recorded position
// only the centroid marker and inertia ellipse are drawn.
func TestAnnotateFirstFrame(t *testing.T) {
	t.Parallel()

	mom := &vision.Moments{
		Centroid:    geom.Point{X: 40, Y: 30},
		Eigenvalues: [2]float64{1, 4},
		AngleDeg:    15,
	}
	surface := &MockSurface{}

	Annotate(surface, mom, []geom.Point{{X: 40, Y: 30}})

	assert.Empty(t, surface.Polylines)
	assert.Empty(t, surface.Arrows)
	assert.Empty(t, surface.Texts)

	require.Len(t, surface.Markers, 1)
	assert.Equal(t, geom.Point{X: 40, Y: 30}, surface.Markers[0].Center)

	require.Len(t, surface.Ellipses, 1)
	ell := surface.Ellipses[0]
	assert.InDelta(t, math.Sqrt(4*vision.EllipseScale), ell.A, 1e-12)
	assert.InDelta(t, math.Sqrt(1*vision.EllipseScale), ell.B, 1e-12)
}

// TestAnnotateWithHistory verifies the full overlay once the trajectory
// has at least two positions.
func TestAnnotateWithHistory(t *testing.T) {
	t.Parallel()

	history := []geom.Point{{X: 10, Y: 10}, {X: 13, Y: 14}}
	mom := &vision.Moments{
		Centroid:    geom.Point{X: 13, Y: 14},
		Eigenvalues: [2]float64{2, 8},
		AngleDeg:    -30,
	}
	surface := &MockSurface{}

	Annotate(surface, mom, history)

	require.Len(t, surface.Polylines, 1)
	assert.Equal(t, history, surface.Polylines[0])

	require.Len(t, surface.Arrows, 1)
	arrow := surface.Arrows[0]
	assert.Equal(t, geom.Point{X: 13, Y: 14}, arrow.From)
	assert.Equal(t, 3.0, arrow.DX)
	assert.Equal(t, 4.0, arrow.DY)
	assert.Equal(t, 25.0, arrow.HeadWidth)
	assert.Equal(t, 37.5, arrow.HeadLength)

	require.Len(t, surface.Texts, 1)
	label := surface.Texts[0]
	assert.Equal(t, "5.00 px/frame", label.Text)
	assert.Equal(t, geom.Point{X: 23, Y: 24}, label.At)
	assert.Equal(t, arrow.Color, label.Color, "speed label shares the arrow color")
}

// TestAnnotateUsesRawAngle pins the ellipse to the frame's measured
// angle even when the smoothed log would disagree.
func TestAnnotateUsesRawAngle(t *testing.T) {
	t.Parallel()

	mom := &vision.Moments{
		Centroid:    geom.Point{X: 5, Y: 5},
		Eigenvalues: [2]float64{1, 1},
		AngleDeg:    171,
	}
	surface := &MockSurface{}

	Annotate(surface, mom, []geom.Point{{X: 5, Y: 5}})

	require.Len(t, surface.Ellipses, 1)
	assert.Equal(t, 171.0, surface.Ellipses[0].AngleDeg)
}

// TestAnnotateLayerOrder checks the centroid marker and ellipse land
// after (on top of) the trajectory overlay.
func TestAnnotateLayerOrder(t *testing.T) {
	t.Parallel()

	history := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	mom := &vision.Moments{Centroid: geom.Point{X: 1, Y: 1}}
	surface := &MockSurface{}

	Annotate(surface, mom, history)

	require.Len(t, surface.Markers, 1)
	require.Len(t, surface.Ellipses, 1)
	require.Len(t, surface.Polylines, 1)
}
