package render

import (
	"image/color"
	"math"

	"github.com/banshee-data/motion.report/internal/geom"
	"github.com/banshee-data/motion.report/internal/units"
	"github.com/banshee-data/motion.report/internal/vision"
)

// Arrow head geometry for the velocity overlay.
const (
	ArrowHeadWidth  = 25.0
	ArrowHeadLength = 37.5
)

// centroid marker radius in pixels
const markerRadius = 6.0

var (
	centroidColor   = color.RGBA{B: 255, A: 255}
	trajectoryColor = color.RGBA{R: 255, A: 255}
	velocityColor   = color.RGBA{G: 128, A: 255}
	ellipseColor    = color.RGBA{G: 255, B: 255, A: 255}
)

// Annotate draws the measurement overlay for one frame: the trajectory
// so far, a velocity arrow and per-frame speed label once two positions
// exist, the centroid marker, and the inertia ellipse. The ellipse uses
// the frame's own measured angle, not the smoothed log value.
func Annotate(surface Surface, mom *vision.Moments, history []geom.Point) {
	if len(history) > 1 {
		surface.AddPolyline(history, trajectoryColor)

		last := history[len(history)-1]
		prev := history[len(history)-2]
		dx, dy := last.X-prev.X, last.Y-prev.Y
		surface.AddArrow(last, dx, dy, ArrowHeadWidth, ArrowHeadLength, velocityColor)

		speed := math.Hypot(dx, dy)
		label := units.FormatSpeed(speed, units.PxPerFrame)
		surface.AddText(geom.Point{X: last.X + 10, Y: last.Y + 10}, label, velocityColor)
	}

	surface.AddMarker(mom.Centroid, markerRadius, centroidColor)

	a := math.Sqrt(mom.Eigenvalues[1] * vision.EllipseScale)
	b := math.Sqrt(mom.Eigenvalues[0] * vision.EllipseScale)
	surface.AddEllipse(mom.Centroid, a, b, mom.AngleDeg, ellipseColor)
}
