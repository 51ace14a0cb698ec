package common

import "math"

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
