package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"git.sr.ht/~gioverse/swipechat/apptheme"
	"git.sr.ht/~gioverse/swipechat/model"
	chatwidget "git.sr.ht/~gioverse/swipechat/widget"
)

// DefaultReplyHeight is the height of a fully expanded reply preview.
var DefaultReplyHeight = unit.Dp(60)

// ReplyPreviewStyle configures the panel above the composer that shows the
// message being replied to.
type ReplyPreviewStyle struct {
	// State holds the reveal animation and dismiss buttons.
	State *chatwidget.ReplyPanel
	// Height of the panel once fully revealed.
	Height     unit.Dp
	Background color.NRGBA
	Divider    color.NRGBA
	Back       material.IconButtonStyle
	Close      material.IconButtonStyle
	// Title reads "Replying to ..." and Text previews the target. Both are
	// empty when there is no target, in which case only the background is
	// drawn while the panel collapses.
	Title material.LabelStyle
	Text  material.LabelStyle
	// Empty is true when there is no reply target.
	Empty bool
}

// ReplyPreview constructs a ReplyPreviewStyle. to may be nil.
func ReplyPreview(th *apptheme.Theme, state *chatwidget.ReplyPanel, to *model.Message) ReplyPreviewStyle {
	flat := func(b *material.IconButtonStyle) {
		b.Background = color.NRGBA{}
		b.Color = th.Palette.AccentDark
		b.Size = unit.Dp(20)
		b.Inset = layout.UniformInset(unit.Dp(8))
	}
	rp := ReplyPreviewStyle{
		State:      state,
		Height:     DefaultReplyHeight,
		Background: th.Palette.Bg,
		Divider:    th.Palette.Divider,
		Back:       material.IconButton(th.Theme, &state.Back, BackIcon, "Cancel reply"),
		Close:      material.IconButton(th.Theme, &state.Close, CloseIcon, "Close reply"),
		Empty:      to == nil,
	}
	flat(&rp.Back)
	flat(&rp.Close)
	if to != nil {
		rp.Title = material.Body2(th.Theme, "Replying to "+to.Sender.ReplyLabel())
		rp.Title.Color = th.Palette.AccentDark
		rp.Title.Font.Weight = text.Bold
		rp.Title.MaxLines = 1
		rp.Text = material.Body2(th.Theme, to.Text)
		rp.Text.Color = th.Palette.MutedPreview
		rp.Text.MaxLines = 1
	}
	return rp
}

// Layout the panel at its current revealed height. A collapsed panel
// occupies no space and draws nothing.
func (p ReplyPreviewStyle) Layout(gtx C) D {
	full := gtx.Dp(p.Height)
	height := int(p.State.Revealed(gtx) * float32(full))
	width := gtx.Constraints.Max.X
	if height <= 0 {
		return D{Size: image.Pt(width, 0)}
	}
	size := image.Pt(width, height)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, p.Background, clip.Rect{Max: size}.Op())
	gtx.Constraints = layout.Exact(image.Pt(width, full))
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(component.Rect{
			Color: p.Divider,
			Size:  image.Pt(width, gtx.Dp(1)),
		}.Layout),
		layout.Flexed(1, func(gtx C) D {
			if p.Empty {
				return D{Size: gtx.Constraints.Min}
			}
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(p.Back.Layout),
				layout.Flexed(1, func(gtx C) D {
					return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(p.Title.Layout),
							layout.Rigid(p.Text.Layout),
						)
					})
				}),
				layout.Rigid(p.Close.Layout),
			)
		}),
	)
	return D{Size: size}
}
