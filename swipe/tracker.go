/*
Package swipe implements the gesture math behind swipe-to-reply.

A Tracker follows a single horizontal drag. The offset may only move left of
its rest position and never beyond the threshold distance. Releasing past the
halfway mark requests a reply, and the offset always springs back to rest.

All distances are in Dp.
*/
package swipe

import (
	"time"

	"git.sr.ht/~gioverse/swipechat/anim"
)

// Defaults tuned for a phone-sized chat bubble.
const (
	DefaultThreshold  = 80
	DefaultIconTravel = 50
	DefaultDamping    = 20
	DefaultStiffness  = 300
)

// Tracker holds the state of a horizontal swipe. The zero value is usable
// and applies the package defaults.
type Tracker struct {
	// Threshold is the maximum leftward travel. The offset is clamped to
	// [-Threshold, 0], and a release beyond -Threshold/2 requests a reply.
	Threshold float32
	// IconTravel is how far the reply icon slides while being revealed.
	// Zero selects DefaultIconTravel.
	IconTravel float32
	// Spring returns the offset to rest after release.
	Spring anim.Spring

	offset   float32
	baseline float32
	dragging bool
}

// Start begins a drag at the current offset, halting any spring in flight.
func (t *Tracker) Start(now time.Time) {
	if t.Spring.Running() {
		t.offset = t.Spring.Stop(now)
	}
	t.baseline = t.offset
	t.dragging = true
}

// Move applies the total horizontal translation since Start.
func (t *Tracker) Move(delta float32) {
	if !t.dragging {
		return
	}
	t.offset = anim.Clamp(t.baseline+delta, t.lowerBound(), 0)
}

// End finishes the drag. It reports whether the release qualifies as a reply
// request, and springs the offset back to rest either way.
func (t *Tracker) End(now time.Time) bool {
	if !t.dragging {
		return false
	}
	t.dragging = false
	reply := t.offset < t.lowerBound()/2
	t.release(now)
	return reply
}

// Cancel abandons the drag without requesting a reply.
func (t *Tracker) Cancel(now time.Time) {
	if !t.dragging {
		return
	}
	t.dragging = false
	t.release(now)
}

// Advance moves the spring forward to now. It reports whether the offset is
// still animating and another frame is needed.
func (t *Tracker) Advance(now time.Time) bool {
	if t.dragging || !t.Spring.Running() {
		return false
	}
	v, running := t.Spring.Value(now)
	// The spring may overshoot rest; the row never travels right of it.
	t.offset = anim.Clamp(v, t.lowerBound(), 0)
	return running
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Offset is the current horizontal offset in Dp, within [-Threshold, 0].
func (t *Tracker) Offset() float32 {
	return t.offset
}

// Progress is the fraction of the threshold distance travelled, in [0,1].
func (t *Tracker) Progress() float32 {
	return anim.Interpolate(t.offset, t.lowerBound(), 0, 1, 0)
}

// IconOpacity is the opacity of the reply affordance, fading in from 0 at
// rest to 1 at the threshold.
func (t *Tracker) IconOpacity() float32 {
	return t.Progress()
}

// IconShift is the translation of the reply affordance towards its resting
// place: -IconTravel at rest, sliding to 0 at the threshold. Presentations
// anchored to the trailing edge mirror it.
func (t *Tracker) IconShift() float32 {
	return anim.Interpolate(t.offset, t.lowerBound(), 0, 0, -t.iconTravel())
}

func (t *Tracker) release(now time.Time) {
	if t.Spring.Damping == 0 && t.Spring.Stiffness == 0 {
		t.Spring.Damping, t.Spring.Stiffness = DefaultDamping, DefaultStiffness
	}
	t.Spring.Animate(now, t.offset, 0, 0)
}

func (t *Tracker) lowerBound() float32 {
	if t.Threshold <= 0 {
		return -DefaultThreshold
	}
	return -t.Threshold
}

func (t *Tracker) iconTravel() float32 {
	if t.IconTravel < 0 {
		return 0
	}
	if t.IconTravel == 0 {
		return DefaultIconTravel
	}
	return t.IconTravel
}
