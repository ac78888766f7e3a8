package timeline

import (
	"math"

	"github.com/fogleman/ease"
)

// InterpolateLinear returns min + factor*(max-min). A factor of 0 gives min
// and a factor of 1 gives max.
func InterpolateLinear(factor, min, max float64) float64 {
	return min + ease.Linear(factor)*(max-min)
}

// InterpolateExponential interpolates on factor², easing in.
func InterpolateExponential(factor, min, max float64) float64 {
	return InterpolateLinear(ease.InQuad(factor), min, max)
}

// InterpolateLogarithmic interpolates on sqrt(factor), easing out. factor
// must not be negative.
func InterpolateLogarithmic(factor, min, max float64) float64 {
	return InterpolateLinear(math.Sqrt(factor), min, max)
}

// Interpolate computes the value at factor within the bracket running from
// source to target under policy p. An invalid policy holds the source value.
func Interpolate(p Policy, factor, source, target float64) float64 {
	switch p {
	case Linear:
		return InterpolateLinear(factor, source, target)
	case Exponential:
		return InterpolateExponential(factor, source, target)
	case Logarithmic:
		return InterpolateLogarithmic(factor, source, target)
	case StepToSource:
		return source
	case StepToTarget:
		return target
	default:
		return source
	}
}
