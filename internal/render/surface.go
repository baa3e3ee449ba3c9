// Package render draws motion annotations onto video frames.
//
// A Surface receives drawing primitives in frame pixel coordinates
// (origin top-left, y increasing downward) and produces the annotated
// raster. The one production implementation is ImageSurface; MockSurface
// records calls for tests.
package render

import (
	"image"
	"image/color"

	"github.com/banshee-data/motion.report/internal/geom"
)

// Surface is a drawing target for frame annotations.
type Surface interface {
	// AddMarker draws a hollow circular marker of the given radius.
	AddMarker(center geom.Point, radius float64, c color.Color)
	// AddEllipse draws an ellipse outline with semi-axes a (along the
	// axis rotated angleDeg from horizontal) and b.
	AddEllipse(center geom.Point, a, b, angleDeg float64, c color.Color)
	// AddPolyline draws straight segments joining consecutive points.
	AddPolyline(points []geom.Point, c color.Color)
	// AddArrow draws a filled-head arrow from p extending by (dx, dy),
	// with the head appended beyond the shaft tip.
	AddArrow(p geom.Point, dx, dy, headWidth, headLength float64, c color.Color)
	// AddText draws s with its baseline origin at p.
	AddText(p geom.Point, s string, c color.Color)
	// Finalize returns the annotated raster.
	Finalize() *image.RGBA
}
