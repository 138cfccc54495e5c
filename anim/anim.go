/*
Package anim provides the frame-driven animation primitives used by the chat
widgets: clamped interpolation, easing curves, timed transitions and damped
springs.

Every primitive is advanced explicitly with the frame time (gtx.Now) so that
layout code remains deterministic and testable without a window.
*/
package anim

// Clamp v into the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Interpolate maps v from the input range [in0, in1] onto the output range
// [out0, out1] linearly, clamping the result to the output range.
//
// The input range may be given in either order.
func Interpolate(v, in0, in1, out0, out1 float32) float32 {
	if in0 == in1 {
		return out0
	}
	t := Clamp((v-in0)/(in1-in0), 0, 1)
	return out0 + (out1-out0)*t
}
