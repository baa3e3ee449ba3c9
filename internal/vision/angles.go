package vision

import "math"

// DefaultJumpThreshold is the absolute frame-to-frame angle difference, in
// degrees, beyond which the newest sample is treated as an eigenvector sign
// flip rather than real rotation.
const DefaultJumpThreshold = 120.0

// AngleLog is the append-only sequence of principal-axis angles, one per
// processed frame. The principal axis is only defined modulo 180 degrees, so
// a small rotation of the true axis can surface as a near-180 jump in the
// raw angle. Append smooths such jumps by rewriting the newest sample, and
// only ever the newest sample, from the two preceding corrected values.
//
// Sequences that legitimately cross the +/-180 wrap (179 to -179) also trip
// the correction; the rule is kept as-is.
type AngleLog struct {
	threshold float64
	samples   []float64
}

// NewAngleLog returns an empty log using the given jump threshold in
// degrees. Non-positive thresholds fall back to DefaultJumpThreshold.
func NewAngleLog(thresholdDeg float64) *AngleLog {
	if thresholdDeg <= 0 {
		thresholdDeg = DefaultJumpThreshold
	}
	return &AngleLog{threshold: thresholdDeg}
}

// Append records the newest raw angle and returns the corrected value. When
// the jump from the previous corrected sample exceeds the threshold, the
// newest entry is replaced by the mean of the previous corrected sample and
// the one before it (the previous sample counted twice when no earlier one
// exists). Earlier history is never rewritten.
func (l *AngleLog) Append(deg float64) float64 {
	l.samples = append(l.samples, deg)
	n := len(l.samples)
	if n > 1 && math.Abs(l.samples[n-1]-l.samples[n-2]) > l.threshold {
		prior := l.samples[n-2]
		if n > 2 {
			prior = l.samples[n-3]
		}
		l.samples[n-1] = (l.samples[n-2] + prior) / 2
	}
	return l.samples[n-1]
}

// Samples returns the corrected angle sequence. The slice is a view; callers
// must not modify it.
func (l *AngleLog) Samples() []float64 {
	return l.samples
}

// Len returns the number of recorded samples.
func (l *AngleLog) Len() int {
	return len(l.samples)
}
