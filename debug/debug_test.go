package debug

import (
	"image"
	"testing"
	"time"

	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func TestOutlineKeepsSize(t *testing.T) {
	var ops op.Ops
	gtx := layout.NewContext(&ops, system.FrameEvent{
		Now:    time.Now(),
		Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Size:   image.Pt(100, 100),
	})
	gtx.Constraints.Min = image.Point{}
	dims := Outline(gtx, func(gtx C) D {
		return D{Size: image.Pt(30, 12)}
	})
	if want := image.Pt(30, 12); dims.Size != want {
		t.Errorf("expected %v, got %v", want, dims.Size)
	}
}
