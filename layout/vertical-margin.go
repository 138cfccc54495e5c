package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// VerticalMarginStyle insets a widget equally on its top and bottom edges.
// Wrapping every row of the chat in one keeps consecutive bubbles evenly
// spaced.
type VerticalMarginStyle struct {
	Size unit.Dp
}

// VerticalMargin configures the margin between chat rows.
func VerticalMargin() VerticalMarginStyle {
	return VerticalMarginStyle{
		Size: unit.Dp(2),
	}
}

// Layout the provided widget within the margin and return their combined
// dimensions.
func (v VerticalMarginStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Inset{
		Top:    v.Size,
		Bottom: v.Size,
	}.Layout(gtx, w)
}
