package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"

	"git.sr.ht/~gioverse/swipechat/apptheme"
	"git.sr.ht/~gioverse/swipechat/debug"
	chatlayout "git.sr.ht/~gioverse/swipechat/layout"
	"git.sr.ht/~gioverse/swipechat/model"
	chatwidget "git.sr.ht/~gioverse/swipechat/widget"
)

// SwipeRowStyle configures the presentation of a chat message within
// a vertical list of chat messages that can be swiped to reply.
type SwipeRowStyle struct {
	Margin chatlayout.VerticalMarginStyle
	chatlayout.GutterStyle
	// Local indicates that the message was sent by the local user,
	// and should be right-aligned.
	Local bool
	// MessageStyle configures how the text and its background are presented.
	MessageStyle
	// Icon is revealed on the trailing edge as the row is swiped.
	Icon *widget.Icon
	// IconSize is the diameter of the circle behind the icon.
	IconSize unit.Dp
	// IconColor and IconBackground are faded in with the swipe.
	IconColor      color.NRGBA
	IconBackground color.NRGBA
	// Outline traces the row bounds for layout debugging.
	Outline bool
	// State holds the interactive state of this row.
	State *chatwidget.SwipeRow
}

// SwipeRow creates a style type that can lay out a message within a
// swipeable row.
func SwipeRow(th *apptheme.Theme, state *chatwidget.SwipeRow, msg model.Message) SwipeRowStyle {
	if state == nil {
		state = &chatwidget.SwipeRow{}
	}
	return SwipeRowStyle{
		Margin:         chatlayout.VerticalMargin(),
		GutterStyle:    chatlayout.Gutter(),
		Local:          msg.Sender.Local(),
		MessageStyle:   Message(th, &state.Message, msg),
		Icon:           ReplyIcon,
		IconSize:       unit.Dp(40),
		IconColor:      th.Palette.OnAccent,
		IconBackground: th.Palette.Accent,
		State:          state,
	}
}

// Layout the row. The message is translated by the swipe offset while the
// input area and the reply icon stay put.
func (r SwipeRowStyle) Layout(gtx C) D {
	r.State.Update(gtx)
	macro := op.Record(gtx.Ops)
	dims := r.layoutContent(gtx)
	content := macro.Stop()

	r.layoutIcon(gtx, dims.Size)

	area := clip.Rect{Max: dims.Size}.Push(gtx.Ops)
	r.State.Add(gtx.Ops)
	area.Pop()

	offset := op.Offset(image.Pt(gtx.Dp(unit.Dp(r.State.Offset())), 0)).Push(gtx.Ops)
	content.Add(gtx.Ops)
	offset.Pop()
	return dims
}

func (r SwipeRowStyle) layoutContent(gtx C) D {
	alignment := layout.W
	if r.Local {
		alignment = layout.E
	}
	row := func(gtx C) D {
		return r.Margin.Layout(gtx, func(gtx C) D {
			return r.GutterStyle.Layout(gtx, nil, func(gtx C) D {
				return alignment.Layout(gtx, r.MessageStyle.Layout)
			}, nil)
		})
	}
	if r.Outline {
		return debug.Outline(gtx, row)
	}
	return row(gtx)
}

// layoutIcon draws the reply affordance against the trailing edge of a row
// of the given size.
func (r SwipeRowStyle) layoutIcon(gtx C, size image.Point) {
	opacity := r.State.IconOpacity()
	if opacity <= 0 || r.Icon == nil {
		return
	}
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	diameter := gtx.Dp(r.IconSize)
	defer op.Offset(r.iconOrigin(gtx, size)).Push(gtx.Ops).Pop()
	circle := clip.Ellipse{Max: image.Pt(diameter, diameter)}
	paint.FillShape(gtx.Ops, apptheme.Fade(r.IconBackground, opacity), circle.Op(gtx.Ops))
	inset := diameter / 5
	// 8Dp of padding around a 24Dp glyph for the default 40Dp circle.
	defer op.Offset(image.Pt(inset, inset)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(diameter-2*inset, diameter-2*inset))
	r.Icon.Layout(gtx, apptheme.Fade(r.IconColor, opacity))
}

// iconOrigin is the top-left corner of the reply circle within a row of the
// given size. The icon sits on the trailing edge, so it slides in from the
// right.
func (r SwipeRowStyle) iconOrigin(gtx C, size image.Point) image.Point {
	diameter := gtx.Dp(r.IconSize)
	return image.Pt(
		size.X-gtx.Dp(r.GutterStyle.RightWidth)-diameter-gtx.Dp(unit.Dp(r.State.IconShift())),
		(size.Y-diameter)/2,
	)
}
