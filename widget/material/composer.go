package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~gioverse/swipechat/apptheme"
	chatlayout "git.sr.ht/~gioverse/swipechat/layout"
	chatwidget "git.sr.ht/~gioverse/swipechat/widget"
)

// Placeholder is shown in an empty composer.
const Placeholder = "Type a message..."

// ComposerStyle configures the input bar at the bottom of the chat.
type ComposerStyle struct {
	State *chatwidget.Composer
	// Background fills the whole bar; Field fills the rounded text field.
	Background color.NRGBA
	Field      color.NRGBA
	// CornerRadius rounds the text field.
	CornerRadius unit.Dp
	Inset        layout.Inset
	FieldInset   layout.Inset
	Editor       material.EditorStyle
	Send         material.IconButtonStyle
}

// Composer constructs a ComposerStyle with sensible defaults.
func Composer(th *apptheme.Theme, state *chatwidget.Composer) ComposerStyle {
	state.Editor.SingleLine = true
	state.Editor.Submit = true
	editor := material.Editor(th.Theme, &state.Editor, Placeholder)
	editor.Color = th.Contrast(th.Palette.Input)
	editor.HintColor = th.Palette.Muted
	send := material.IconButton(th.Theme, &state.Send, SendIcon, "Send")
	send.Background = th.Palette.AccentDark
	send.Color = th.Palette.OnAccent
	// 48Dp round button.
	send.Size = unit.Dp(24)
	send.Inset = layout.UniformInset(unit.Dp(12))
	return ComposerStyle{
		State:        state,
		Background:   th.Palette.InputBar,
		Field:        th.Palette.Input,
		CornerRadius: unit.Dp(25),
		Inset:        layout.UniformInset(unit.Dp(10)),
		FieldInset: layout.Inset{
			Top:    unit.Dp(10),
			Bottom: unit.Dp(10),
			Left:   unit.Dp(15),
			Right:  unit.Dp(15),
		},
		Editor: editor,
		Send:   send,
	}
}

// Layout the composer across the full available width.
func (c ComposerStyle) Layout(gtx C) D {
	return chatlayout.Background(c.Background).Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return c.Inset.Layout(gtx, func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx C) D {
					return chatlayout.Rounded(c.CornerRadius).Layout(gtx, func(gtx C) D {
						return chatlayout.Background(c.Field).Layout(gtx, func(gtx C) D {
							gtx.Constraints.Min.X = gtx.Constraints.Max.X
							return c.FieldInset.Layout(gtx, c.Editor.Layout)
						})
					})
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
				layout.Rigid(c.Send.Layout),
			)
		})
	})
}
