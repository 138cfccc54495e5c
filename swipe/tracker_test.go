package swipe

import (
	"math/rand"
	"testing"
	"time"
)

func TestReleaseThreshold(t *testing.T) {
	type testcase struct {
		name  string
		delta float32
		reply bool
	}
	for _, tc := range []testcase{
		{name: "no movement", delta: 0, reply: false},
		{name: "short drag", delta: -20, reply: false},
		{name: "exactly half", delta: -40, reply: false},
		{name: "just past half", delta: -40.5, reply: true},
		{name: "full threshold", delta: -80, reply: true},
		{name: "beyond threshold", delta: -500, reply: true},
		{name: "rightwards", delta: 120, reply: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Now()
			tr := Tracker{Threshold: 80}
			tr.Start(now)
			tr.Move(tc.delta)
			if got := tr.End(now); got != tc.reply {
				t.Errorf("expected reply=%v for delta %v, got %v", tc.reply, tc.delta, got)
			}
		})
	}
}

func TestReplyOncePerRelease(t *testing.T) {
	now := time.Now()
	var tr Tracker
	tr.Start(now)
	tr.Move(-70)
	if !tr.End(now) {
		t.Fatalf("expected first release to request a reply")
	}
	if tr.End(now) {
		t.Errorf("a second End without a drag must not request another reply")
	}
	tr.Move(-70)
	if tr.End(now) {
		t.Errorf("moves outside a drag must be ignored")
	}
}

func TestCancelNeverReplies(t *testing.T) {
	now := time.Now()
	var tr Tracker
	tr.Start(now)
	tr.Move(-80)
	tr.Cancel(now)
	if tr.Dragging() {
		t.Errorf("expected drag to be over")
	}
	if tr.End(now) {
		t.Errorf("cancelled drag must not request a reply")
	}
}

func TestOffsetAlwaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Now()
	tr := Tracker{Threshold: 80}
	for gesture := 0; gesture < 200; gesture++ {
		tr.Start(now)
		for move := 0; move < 20; move++ {
			tr.Move(rng.Float32()*1000 - 500)
			if off := tr.Offset(); off < -80 || off > 0 {
				t.Fatalf("offset %v escaped [-80, 0]", off)
			}
		}
		tr.End(now)
		// Sample part of the spring back before the next gesture starts.
		for step := rng.Intn(20); step > 0; step-- {
			now = now.Add(16 * time.Millisecond)
			tr.Advance(now)
			if off := tr.Offset(); off < -80 || off > 0 {
				t.Fatalf("offset %v escaped [-80, 0] while springing back", off)
			}
		}
	}
}

func TestSpringBackToRest(t *testing.T) {
	now := time.Now()
	var tr Tracker
	tr.Start(now)
	tr.Move(-80)
	tr.End(now)
	if !tr.Advance(now.Add(16 * time.Millisecond)) {
		t.Fatalf("expected spring to be running right after release")
	}
	var settled bool
	for ms := 32; ms < 5000; ms += 16 {
		if !tr.Advance(now.Add(time.Duration(ms) * time.Millisecond)) {
			settled = true
			break
		}
	}
	if !settled {
		t.Fatalf("spring never settled")
	}
	if tr.Offset() != 0 {
		t.Errorf("expected offset to return to 0, got %v", tr.Offset())
	}
}

func TestStartInterruptsSpring(t *testing.T) {
	now := time.Now()
	var tr Tracker
	tr.Start(now)
	tr.Move(-80)
	tr.End(now)
	mid := now.Add(20 * time.Millisecond)
	tr.Advance(mid)
	caught := tr.Offset()
	tr.Start(mid)
	if tr.Offset() != caught {
		t.Errorf("expected drag to begin from %v, got %v", caught, tr.Offset())
	}
	tr.Move(0)
	if tr.Offset() != caught {
		t.Errorf("expected zero delta to hold the caught offset %v, got %v", caught, tr.Offset())
	}
	if tr.Advance(mid.Add(time.Second)) {
		t.Errorf("spring should not advance while dragging")
	}
}

func TestIconFeedback(t *testing.T) {
	now := time.Now()
	tr := Tracker{Threshold: 80, IconTravel: 50}
	if tr.IconOpacity() != 0 || tr.IconShift() != -50 {
		t.Errorf("at rest expected opacity 0 and shift -50, got %v and %v", tr.IconOpacity(), tr.IconShift())
	}
	tr.Start(now)
	tr.Move(-40)
	if tr.IconOpacity() != 0.5 || tr.IconShift() != -25 {
		t.Errorf("halfway expected opacity 0.5 and shift -25, got %v and %v", tr.IconOpacity(), tr.IconShift())
	}
	tr.Move(-80)
	if tr.IconOpacity() != 1 || tr.IconShift() != 0 || tr.Progress() != 1 {
		t.Errorf("at threshold expected opacity 1 and shift 0, got %v and %v", tr.IconOpacity(), tr.IconShift())
	}
}

func TestZeroValueDefaults(t *testing.T) {
	now := time.Now()
	var tr Tracker
	tr.Start(now)
	tr.Move(-1000)
	if tr.Offset() != -DefaultThreshold {
		t.Errorf("expected default threshold clamp at %v, got %v", -DefaultThreshold, tr.Offset())
	}
	tr.End(now)
	if tr.Spring.Damping != DefaultDamping || tr.Spring.Stiffness != DefaultStiffness {
		t.Errorf("expected default spring tuning, got %+v", tr.Spring)
	}
}
