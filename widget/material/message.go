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
	"gioui.org/x/richtext"

	"git.sr.ht/~gioverse/swipechat/apptheme"
	"git.sr.ht/~gioverse/swipechat/model"
	chatwidget "git.sr.ht/~gioverse/swipechat/widget"
)

// Note: the values choosen are a best-guess heuristic, open to change.
var (
	DefaultMaxMessageWidth = unit.Dp(600)
	DefaultQuoteBarWidth   = unit.Dp(4)
	// DefaultQuoteTint is how far a quote's background leans from its
	// bubble towards the accent.
	DefaultQuoteTint = float32(0.12)
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// QuoteStyle configures the presentation of the message being replied to,
// shown atop the reply inside its bubble.
type QuoteStyle struct {
	// Sender names the author of the quoted message.
	Sender material.LabelStyle
	// Text is the quoted body, truncated to a single line.
	Text material.LabelStyle
	// Bar is painted along the leading edge of the quote.
	Bar      color.NRGBA
	BarWidth unit.Dp
	// Background optionally tints the quote within the bubble.
	Background color.NRGBA
	Padding    layout.Inset
}

// Quote constructs a QuoteStyle for the provided quote, tinted to sit
// inside a bubble of the given color.
func Quote(th *apptheme.Theme, q model.Quote, bubble color.NRGBA) QuoteStyle {
	sender := material.Body2(th.Theme, q.Sender.Label())
	sender.Color = th.Palette.Accent
	sender.Font.Weight = text.Bold
	sender.MaxLines = 1
	body := material.Body2(th.Theme, q.Text)
	body.Color = th.Palette.Muted
	body.MaxLines = 1
	return QuoteStyle{
		Sender:     sender,
		Text:       body,
		Bar:        th.Palette.Accent,
		BarWidth:   DefaultQuoteBarWidth,
		Background: apptheme.Blend(bubble, th.Palette.Accent, DefaultQuoteTint),
		Padding:    layout.Inset{Left: unit.Dp(8)},
	}
}

// Layout the quote.
func (q QuoteStyle) Layout(gtx C) D {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			size := gtx.Constraints.Min
			if q.Background.A > 0 {
				paint.FillShape(gtx.Ops, q.Background, clip.Rect{Max: size}.Op())
			}
			bar := image.Rectangle{Max: image.Pt(gtx.Dp(q.BarWidth), size.Y)}
			paint.FillShape(gtx.Ops, q.Bar, clip.Rect(bar).Op())
			return D{Size: size}
		}),
		layout.Stacked(func(gtx C) D {
			inset := q.Padding
			inset.Left += q.BarWidth
			return inset.Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(q.Sender.Layout),
					layout.Rigid(q.Text.Layout),
				)
			})
		}),
	)
}

// MessageStyle configures the presentation of a chat message.
type MessageStyle struct {
	// Interaction holds the stateful parts of this message.
	Interaction *chatwidget.Message
	// MaxMessageWidth constrains the display width of the message's background.
	MaxMessageWidth unit.Dp
	// ContentPadding separates the Content field from the edges of the background.
	ContentPadding layout.Inset
	// BubbleStyle configures a chat bubble beneath the message.
	BubbleStyle
	// Quote, if non-nil, is laid out above the content.
	Quote *QuoteStyle
	// Content is the actual styled text of the message.
	Content richtext.TextStyle
}

// Message constructs a MessageStyle with sensible defaults.
func Message(th *apptheme.Theme, interact *chatwidget.Message, msg model.Message) MessageStyle {
	l := material.Body1(th.Theme, "")
	bubble := Bubble(th, msg.Sender.Local())
	ms := MessageStyle{
		BubbleStyle: bubble,
		Content: richtext.Text(&interact.InteractiveText, th.Shaper, richtext.SpanStyle{
			Font:    l.Font,
			Size:    l.TextSize,
			Color:   th.Contrast(bubble.Color),
			Content: msg.Text,
		}),
		ContentPadding: layout.Inset{
			Top:    unit.Dp(8),
			Bottom: unit.Dp(8),
			Left:   unit.Dp(12),
			Right:  unit.Dp(12),
		},
		MaxMessageWidth: DefaultMaxMessageWidth,
		Interaction:     interact,
	}
	if msg.ReplyTo != nil {
		q := Quote(th, *msg.ReplyTo, bubble.Color)
		ms.Quote = &q
	}
	return ms
}

// Layout the message atop its background.
func (m MessageStyle) Layout(gtx C) D {
	gtx.Constraints.Max.X = int(float32(gtx.Constraints.Max.X) * 0.8)
	if max := gtx.Dp(m.MaxMessageWidth); gtx.Constraints.Max.X > max {
		gtx.Constraints.Max.X = max
	}
	return m.BubbleStyle.Layout(gtx, func(gtx C) D {
		return m.ContentPadding.Layout(gtx, func(gtx C) D {
			if m.Quote == nil {
				return m.Content.Layout(gtx)
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, m.Quote.Layout)
				}),
				layout.Rigid(m.Content.Layout),
			)
		})
	})
}
