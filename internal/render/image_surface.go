package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/banshee-data/motion.report/internal/geom"
)

// ImageSurface draws annotations onto a copy of a source frame. All
// primitives clip at the frame bounds, and the annotated raster keeps
// the source frame resolution.
type ImageSurface struct {
	img *image.RGBA
}

// NewFrameSurface copies frame into a fresh raster anchored at the
// origin and returns a surface drawing over it.
func NewFrameSurface(frame image.Image) *ImageSurface {
	b := frame.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), frame, b.Min, draw.Src)
	return &ImageSurface{img: img}
}

// NewBlankSurface returns a surface over an all-transparent raster of
// the given size.
func NewBlankSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *ImageSurface) setPixel(x, y int, c color.Color) {
	if (image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		s.img.Set(x, y, c)
	}
}

// drawLine rasterizes the segment from p0 to p1 with Bresenham's
// algorithm.
func (s *ImageSurface) drawLine(p0, p1 image.Point, c color.Color) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *ImageSurface) AddMarker(center geom.Point, radius float64, c color.Color) {
	s.AddEllipse(center, radius, radius, 0, c)
}

func (s *ImageSurface) AddEllipse(center geom.Point, a, b, angleDeg float64, c color.Color) {
	if a <= 0 && b <= 0 {
		s.setPixel(center.ImagePoint().X, center.ImagePoint().Y, c)
		return
	}
	theta := angleDeg * math.Pi / 180
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	steps := int(math.Ceil(4 * math.Max(a, b)))
	if steps < 16 {
		steps = 16
	}
	if steps > 720 {
		steps = 720
	}

	prev := image.Point{}
	for i := 0; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		ex := a * math.Cos(t)
		ey := b * math.Sin(t)
		p := geom.Point{
			X: center.X + ex*cosT - ey*sinT,
			Y: center.Y + ex*sinT + ey*cosT,
		}.ImagePoint()
		if i > 0 {
			s.drawLine(prev, p, c)
		}
		prev = p
	}
}

func (s *ImageSurface) AddPolyline(points []geom.Point, c color.Color) {
	for i := 1; i < len(points); i++ {
		s.drawLine(points[i-1].ImagePoint(), points[i].ImagePoint(), c)
	}
}

func (s *ImageSurface) AddArrow(p geom.Point, dx, dy, headWidth, headLength float64, c color.Color) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	tip := geom.Point{X: p.X + dx, Y: p.Y + dy}
	s.drawLine(p.ImagePoint(), tip.ImagePoint(), c)

	// Unit shaft direction and its perpendicular.
	ux, uy := dx/length, dy/length
	px, py := -uy, ux

	// The head extends beyond the shaft tip.
	apex := geom.Point{X: tip.X + ux*headLength, Y: tip.Y + uy*headLength}
	left := geom.Point{X: tip.X + px*headWidth/2, Y: tip.Y + py*headWidth/2}
	right := geom.Point{X: tip.X - px*headWidth/2, Y: tip.Y - py*headWidth/2}

	// Fill the head by fanning lines from the apex across the base.
	steps := int(math.Max(headWidth, 2))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		base := geom.Point{
			X: left.X + t*(right.X-left.X),
			Y: left.Y + t*(right.Y-left.Y),
		}
		s.drawLine(apex.ImagePoint(), base.ImagePoint(), c)
	}
}

func (s *ImageSurface) AddText(p geom.Point, text string, c color.Color) {
	at := p.ImagePoint()
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

func (s *ImageSurface) Finalize() *image.RGBA {
	return s.img
}
