package render

import (
	"image"
	"image/color"

	"github.com/banshee-data/motion.report/internal/geom"
)

// MarkerCall records one AddMarker invocation.
type MarkerCall struct {
	Center geom.Point
	Radius float64
	Color  color.Color
}

// EllipseCall records one AddEllipse invocation.
type EllipseCall struct {
	Center   geom.Point
	A, B     float64
	AngleDeg float64
	Color    color.Color
}

// ArrowCall records one AddArrow invocation.
type ArrowCall struct {
	From                  geom.Point
	DX, DY                float64
	HeadWidth, HeadLength float64
	Color                 color.Color
}

// TextCall records one AddText invocation.
type TextCall struct {
	At    geom.Point
	Text  string
	Color color.Color
}

// MockSurface implements Surface by recording every call, for tests
// asserting on what was drawn rather than on pixels.
type MockSurface struct {
	Markers   []MarkerCall
	Ellipses  []EllipseCall
	Polylines [][]geom.Point
	Arrows    []ArrowCall
	Texts     []TextCall

	FinalizeCount int
	Result        *image.RGBA
}

func (m *MockSurface) AddMarker(center geom.Point, radius float64, c color.Color) {
	m.Markers = append(m.Markers, MarkerCall{Center: center, Radius: radius, Color: c})
}

func (m *MockSurface) AddEllipse(center geom.Point, a, b, angleDeg float64, c color.Color) {
	m.Ellipses = append(m.Ellipses, EllipseCall{Center: center, A: a, B: b, AngleDeg: angleDeg, Color: c})
}

func (m *MockSurface) AddPolyline(points []geom.Point, c color.Color) {
	path := make([]geom.Point, len(points))
	copy(path, points)
	m.Polylines = append(m.Polylines, path)
}

func (m *MockSurface) AddArrow(p geom.Point, dx, dy, headWidth, headLength float64, c color.Color) {
	m.Arrows = append(m.Arrows, ArrowCall{
		From: p, DX: dx, DY: dy,
		HeadWidth: headWidth, HeadLength: headLength,
		Color: c,
	})
}

func (m *MockSurface) AddText(p geom.Point, text string, c color.Color) {
	m.Texts = append(m.Texts, TextCall{At: p, Text: text, Color: c})
}

func (m *MockSurface) Finalize() *image.RGBA {
	m.FinalizeCount++
	if m.Result == nil {
		m.Result = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return m.Result
}
