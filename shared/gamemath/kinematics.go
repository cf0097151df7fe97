package gamemath

import "math"

// ApexHeight is the rise of a body launched upward at v0 (negative is up)
// under constant gravity g.
func ApexHeight(v0, g float64) float64 {
	return v0 * v0 / (2 * g)
}

// TimeToApex is the time a body launched at v0 needs to stop rising.
func TimeToApex(v0, g float64) float64 {
	return -v0 / g
}

// FallTime is the time needed to drop h pixels from rest.
func FallTime(h, g float64) float64 {
	if h <= 0 {
		return 0
	}
	return math.Sqrt(2 * h / g)
}
