package vision

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/motion.report/internal/geom"
)

// EllipseScale is the 95%-confidence scale applied to the inertia
// eigenvalues when sizing the overlay ellipse: the chi-square value for two
// degrees of freedom at p=0.95. Semi-axis length = sqrt(eigenvalue * scale).
const EllipseScale = 5.991

// Moments holds the spatial-moment statistics of one foreground blob.
type Moments struct {
	// Area is the zeroth moment m00, the foreground pixel count.
	Area float64

	// Centroid is the first-moment position estimate.
	Centroid geom.Point

	// Central second moments, each normalized by Area.
	U20, U02, U11 float64

	// Eigenvalues of the inertia matrix {u20, u11; u11, u02} in ascending
	// order; index 1 belongs to the principal axis.
	Eigenvalues [2]float64

	// AngleDeg is the principal-axis orientation in degrees, in
	// (-180, 180]. The axis is only defined modulo 180 degrees; see
	// AngleLog for the jump correction applied across frames.
	AngleDeg float64
}

// Analyze computes the area, centroid, central second moments, and
// principal-axis angle of the foreground in mask. It fails with ErrNoObject
// when the mask is all background so callers never divide by a zero area.
func Analyze(m *Mask) (*Moments, error) {
	var m00, sumX, sumY float64
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				m00++
				sumX += float64(x)
				sumY += float64(y)
			}
		}
	}
	if m00 == 0 {
		return nil, fmt.Errorf("analyze moments: %w", ErrNoObject)
	}

	cx := sumX / m00
	cy := sumY / m00

	var u20, u02, u11 float64
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				dx := float64(x) - cx
				dy := float64(y) - cy
				u20 += dx * dx
				u02 += dy * dy
				u11 += dx * dy
			}
		}
	}
	u20 /= m00
	u02 /= m00
	u11 /= m00

	inertia := mat.NewSymDense(2, []float64{u20, u11, u11, u02})
	var eig mat.EigenSym
	if ok := eig.Factorize(inertia, true); !ok {
		return nil, fmt.Errorf("eigendecomposition of inertia matrix {%g, %g; %g, %g} failed", u20, u11, u11, u02)
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// Values are ascending, so the dominant eigenvector is column 1.
	angle := math.Atan2(vectors.At(1, 1), vectors.At(0, 1)) * 180 / math.Pi

	return &Moments{
		Area:        m00,
		Centroid:    geom.NewPoint(cx, cy),
		U20:         u20,
		U02:         u02,
		U11:         u11,
		Eigenvalues: [2]float64{values[0], values[1]},
		AngleDeg:    angle,
	}, nil
}
