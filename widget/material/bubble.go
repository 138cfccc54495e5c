package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"git.sr.ht/~gioverse/swipechat/apptheme"
)

// BubbleStyle defines a colored surface with (optionally) rounded corners.
type BubbleStyle struct {
	// The radius of the corners of the surface.
	// Non-rounded rectangles can just provide a zero.
	CornerRadius unit.Dp
	Color        color.NRGBA
}

// Bubble creates a Bubble style colored for the sender of a message.
func Bubble(th *apptheme.Theme, local bool) BubbleStyle {
	return BubbleStyle{
		CornerRadius: unit.Dp(8),
		Color:        th.Bubble(local),
	}
}

// Layout renders the BubbleStyle, beneath the provided widget.
func (c BubbleStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			surface := clip.UniformRRect(image.Rectangle{
				Max: gtx.Constraints.Min,
			}, gtx.Dp(c.CornerRadius))
			paint.FillShape(gtx.Ops, c.Color, surface.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(w),
	)
}
