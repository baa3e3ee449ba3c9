// Package units provides shared constants and conversions for pixel-space
// speed units. Instantaneous speeds are measured in pixels per processed
// frame; reports quote pixels per second.
package units

import "fmt"

// Unit constants
const (
	PxPerFrame  = "px/frame"
	PxPerSecond = "px/s"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{PxPerFrame, PxPerSecond}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// PerSecond converts a per-frame displacement to pixels per second given the
// source frame rate.
func PerSecond(pxPerFrame float64, fps int) float64 {
	return pxPerFrame * float64(fps)
}

// PerFrame converts a pixels-per-second speed back to a per-frame
// displacement. A non-positive fps yields zero.
func PerFrame(pxPerSecond float64, fps int) float64 {
	if fps <= 0 {
		return 0
	}
	return pxPerSecond / float64(fps)
}

// FormatSpeed renders a speed value with its unit, two decimal places.
func FormatSpeed(value float64, unit string) string {
	return fmt.Sprintf("%.2f %s", value, unit)
}
