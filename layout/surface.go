package layout

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/x/component"
)

// Background lays out a widget over a colored background sized to the
// widget.
type Background color.NRGBA

func (bg Background) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return layout.Stack{}.Layout(
		gtx,
		layout.Expanded(component.Rect{
			Size:  dims.Size,
			Color: color.NRGBA(bg),
		}.Layout),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			call.Add(gtx.Ops)
			return dims
		}),
	)
}

// Rounded clips a widget to a rectangle with rounded corners. Combined with
// Background it yields a pill-shaped surface.
type Rounded unit.Dp

func (r Rounded) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	radius := gtx.Dp(unit.Dp(r))
	if max := min(dims.Size.X, dims.Size.Y) / 2; radius > max {
		radius = max
	}
	defer clip.UniformRRect(image.Rectangle{Max: dims.Size}, radius).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}
