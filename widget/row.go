package widget

import (
	"time"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"git.sr.ht/~gioverse/swipechat/swipe"
)

// SwipeRow holds persistent state for a single row of a chat: the drag
// gesture that swipes the row and the text interaction of its message.
type SwipeRow struct {
	Message
	// Tracker follows the swipe in Dp.
	swipe.Tracker

	drag    gesture.Drag
	origin  f32.Point
	replies int
}

// Update processes the gesture events queued for the row and advances the
// spring back to rest. It must be called once per frame before layout.
func (s *SwipeRow) Update(gtx layout.Context) {
	s.handle(gtx.Now, gtx.Metric.PxPerDp, s.drag.Events(gtx.Metric, gtx, gesture.Horizontal))
	if s.Tracker.Advance(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
}

// Add the drag input area to ops. The caller is responsible for clipping
// the area to the row bounds.
func (s *SwipeRow) Add(ops *op.Ops) {
	s.drag.Add(ops)
}

// Replied reports whether the row was released past the reply threshold
// since the last call. Every qualifying release is reported exactly once.
func (s *SwipeRow) Replied() bool {
	if s.replies == 0 {
		return false
	}
	s.replies--
	return true
}

// handle applies pointer events to the tracker. Pointer positions are in
// pixels and are converted to Dp with pxPerDp.
func (s *SwipeRow) handle(now time.Time, pxPerDp float32, events []pointer.Event) {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	for _, e := range events {
		switch e.Type {
		case pointer.Press:
			s.origin = e.Position
			s.Tracker.Start(now)
		case pointer.Drag:
			s.Tracker.Move((e.Position.X - s.origin.X) / pxPerDp)
		case pointer.Release:
			if s.Tracker.End(now) {
				s.replies++
			}
		case pointer.Cancel:
			s.Tracker.Cancel(now)
		}
	}
}
