package util

import "math"

// Clamp limits x to the inclusive range [min, max].
func Clamp(x, min, max float64) float64 {
	return math.Max(math.Min(x, max), min)
}

// Wrap maps x into [0, 1), wrapping around like a hue angle.
func Wrap(x float64) float64 {
	x = math.Mod(x, 1.0)
	if x < 0 {
		x += 1.0
	}
	return x
}
