/*
Package debug provides tools for debugging Gio layout code.
*/
package debug

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// OutlineColor is traced around outlined widgets.
var OutlineColor = color.NRGBA{R: 0xE0, A: 0xFF}

// Outline traces a thin outline around the provided widget without
// changing its dimensions.
func Outline(gtx C, w layout.Widget) D {
	return widget.Border{
		Color: OutlineColor,
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}
