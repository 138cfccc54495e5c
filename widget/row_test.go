package widget

import (
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

func drag(from, to float32) []pointer.Event {
	return []pointer.Event{
		{Type: pointer.Press, Source: pointer.Touch, Position: f32.Pt(from, 10)},
		{Type: pointer.Drag, Source: pointer.Touch, Position: f32.Pt((from+to)/2, 10)},
		{Type: pointer.Drag, Source: pointer.Touch, Position: f32.Pt(to, 10)},
		{Type: pointer.Release, Source: pointer.Touch, Position: f32.Pt(to, 10)},
	}
}

func TestSwipeRowReplies(t *testing.T) {
	type testcase struct {
		name     string
		pxPerDp  float32
		from, to float32
		replied  bool
	}
	for _, tc := range []testcase{
		{name: "short drag", pxPerDp: 1, from: 200, to: 180, replied: false},
		{name: "exactly half threshold", pxPerDp: 1, from: 200, to: 160, replied: false},
		{name: "past half threshold", pxPerDp: 1, from: 200, to: 150, replied: true},
		{name: "dense display scales distance", pxPerDp: 2, from: 200, to: 150, replied: false},
		{name: "dense display long drag", pxPerDp: 2, from: 300, to: 100, replied: true},
		{name: "rightwards drag", pxPerDp: 1, from: 100, to: 300, replied: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var row SwipeRow
			row.Threshold = 80
			row.handle(time.Now(), tc.pxPerDp, drag(tc.from, tc.to))
			if got := row.Replied(); got != tc.replied {
				t.Errorf("expected replied=%v, got %v", tc.replied, got)
			}
			if row.Replied() {
				t.Errorf("a release must be reported only once")
			}
		})
	}
}

func TestSwipeRowCancel(t *testing.T) {
	var row SwipeRow
	now := time.Now()
	row.handle(now, 1, []pointer.Event{
		{Type: pointer.Press, Position: f32.Pt(200, 0)},
		{Type: pointer.Drag, Position: f32.Pt(100, 0)},
		{Type: pointer.Cancel},
	})
	if row.Replied() {
		t.Errorf("cancelled gesture must not request a reply")
	}
	if row.Dragging() {
		t.Errorf("expected drag to end on cancel")
	}
}

func TestSwipeRowOffsetBounded(t *testing.T) {
	var row SwipeRow
	row.Threshold = 80
	now := time.Now()
	row.handle(now, 1, []pointer.Event{
		{Type: pointer.Press, Position: f32.Pt(500, 0)},
		{Type: pointer.Drag, Position: f32.Pt(0, 0)},
	})
	if row.Offset() != -80 {
		t.Errorf("expected offset clamped to -80, got %v", row.Offset())
	}
	row.handle(now, 1, []pointer.Event{
		{Type: pointer.Drag, Position: f32.Pt(1000, 0)},
	})
	if row.Offset() != 0 {
		t.Errorf("expected offset clamped to 0, got %v", row.Offset())
	}
}

func TestSwipeRowCountsEveryRelease(t *testing.T) {
	var row SwipeRow
	now := time.Now()
	row.handle(now, 1, append(drag(300, 100), drag(300, 100)...))
	if !row.Replied() || !row.Replied() {
		t.Errorf("expected two replies for two qualifying releases")
	}
	if row.Replied() {
		t.Errorf("expected no more than two replies")
	}
}
