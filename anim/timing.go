package anim

import "time"

// Timing animates a scalar towards a target over a fixed duration following
// an easing curve. The zero value is settled at 0 and uses linear easing.
//
// Retargeting a running animation starts a fresh transition from the value
// at that instant, so a second request redirects the motion instead of
// jumping.
type Timing struct {
	// Duration of a full transition.
	Duration time.Duration
	// Easing applied to the transition progress. Nil means Linear.
	Easing Easing

	from, to float32
	started  time.Time
}

// Animate begins a transition from the current value towards target.
func (t *Timing) Animate(now time.Time, target float32) {
	t.from = t.Value(now)
	t.to = target
	t.started = now
}

// Set jumps to v without animating.
func (t *Timing) Set(v float32) {
	t.from, t.to = v, v
	t.started = time.Time{}
}

// Target returns the value the animation is heading towards.
func (t *Timing) Target() float32 {
	return t.to
}

// Value returns the animated value at the given time.
func (t *Timing) Value(now time.Time) float32 {
	p := t.progress(now)
	if p >= 1 {
		return t.to
	}
	ease := t.Easing
	if ease == nil {
		ease = Linear
	}
	return t.from + (t.to-t.from)*ease(p)
}

// Animating reports whether a transition is still in flight at now.
func (t *Timing) Animating(now time.Time) bool {
	return t.from != t.to && t.progress(now) < 1
}

// progress returns the linear progress in [0,1] of the current transition.
func (t *Timing) progress(now time.Time) float32 {
	if t.Duration <= 0 || t.started.IsZero() {
		return 1
	}
	elapsed := now.Sub(t.started)
	if elapsed <= 0 {
		return 0
	}
	return Clamp(float32(elapsed)/float32(t.Duration), 0, 1)
}
