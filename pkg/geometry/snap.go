package geometry

import "math"

// Snap rounds value to the nearest multiple of unit.
// A non-positive unit returns value unchanged.
func Snap(value, unit float64) float64 {
	if unit <= 0 {
		return value
	}
	return math.Round(value/unit) * unit
}

// IsFinite reports whether value is neither NaN nor infinite
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
