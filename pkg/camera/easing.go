package camera

import "math"

// EaseInOutCubic maps t in [0,1] onto a slow-fast-slow curve.
func EaseInOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
