package anim

import "math"

// Easing maps linear progress in [0,1] onto eased progress. Implementations
// must map 0 to 0 and 1 to 1.
type Easing func(t float32) float32

// Linear progresses at a constant rate.
func Linear(t float32) float32 {
	return t
}

// Ease is the standard "ease" curve, a cubic bezier through (0.42, 0) and
// (1, 1).
var Ease = CubicBezier(0.42, 0, 1, 1)

// InOut makes an easing symmetric: the first half runs e forwards and the
// second half runs it backwards.
func InOut(e Easing) Easing {
	return func(t float32) float32 {
		if t < 0.5 {
			return e(t*2) / 2
		}
		return 1 - e((1-t)*2)/2
	}
}

// EaseInOut is InOut(Ease).
var EaseInOut = InOut(Ease)

// CubicBezier returns the easing described by a unit cubic bezier with control
// points (x1, y1) and (x2, y2). x1 and x2 must lie in [0,1].
func CubicBezier(x1, y1, x2, y2 float32) Easing {
	var (
		cx = 3 * float64(x1)
		bx = 3*(float64(x2)-float64(x1)) - cx
		ax = 1 - cx - bx
		cy = 3 * float64(y1)
		by = 3*(float64(y2)-float64(y1)) - cy
		ay = 1 - cy - by
	)
	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }
	solve := func(x float64) float64 {
		const epsilon = 1e-7
		// Newton-Raphson converges quickly for most curves.
		t := x
		for i := 0; i < 8; i++ {
			d := sampleX(t) - x
			if math.Abs(d) < epsilon {
				return t
			}
			s := slopeX(t)
			if math.Abs(s) < 1e-6 {
				break
			}
			t -= d / s
		}
		// Fall back to bisection.
		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < epsilon {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			t = (hi-lo)/2 + lo
			if hi-lo < epsilon {
				break
			}
		}
		return t
	}
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float32(sampleY(solve(float64(t))))
	}
}
