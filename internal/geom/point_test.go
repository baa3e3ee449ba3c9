package geom

import (
	"image"
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", NewPoint(3, 4), NewPoint(3, 4), 0},
		{"unit step x", NewPoint(0, 0), NewPoint(1, 0), 1},
		{"diagonal", NewPoint(2, 2), NewPoint(4, 6), math.Sqrt(20)},
		{"negative coords", NewPoint(-1, -1), NewPoint(2, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestImagePoint(t *testing.T) {
	p := NewPoint(2.5, 3.49)
	got := p.ImagePoint()
	want := image.Pt(3, 3)
	if got != want {
		t.Errorf("ImagePoint() = %v, want %v", got, want)
	}
}

func TestNewPointFrom(t *testing.T) {
	p := NewPointFrom(image.Pt(7, 9))
	if p.X != 7 || p.Y != 9 {
		t.Errorf("NewPointFrom = %v, want (7, 9)", p)
	}
}
