/*
Package ui composes the chat screen: the message list, the reply preview and
the composer.
*/
package ui

import (
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	chat "git.sr.ht/~gioverse/swipechat"
	"git.sr.ht/~gioverse/swipechat/anim"
	"git.sr.ht/~gioverse/swipechat/apptheme"
	"git.sr.ht/~gioverse/swipechat/model"
	"git.sr.ht/~gioverse/swipechat/store"
	"git.sr.ht/~gioverse/swipechat/swipe"
	chatwidget "git.sr.ht/~gioverse/swipechat/widget"
	matchat "git.sr.ht/~gioverse/swipechat/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Settings tune the gestures and animations of the screen.
type Settings struct {
	// Threshold is the swipe distance in Dp that fully reveals the reply
	// icon. Releasing past half of it requests a reply.
	Threshold  float32
	IconTravel float32
	// Damping and Stiffness configure the spring returning a row to rest.
	Damping   float32
	Stiffness float32
	// ReplyHeight and ReplyDuration configure the reply preview reveal.
	ReplyHeight   unit.Dp
	ReplyDuration time.Duration
	// MaxWidth caps the width of the chat column. Wider windows show the
	// palette's window color on either side.
	MaxWidth unit.Dp
	// Outline traces each row for layout debugging.
	Outline bool
}

// DefaultSettings returns the settings of a phone-sized chat.
func DefaultSettings() Settings {
	return Settings{
		Threshold:     swipe.DefaultThreshold,
		IconTravel:    swipe.DefaultIconTravel,
		Damping:       swipe.DefaultDamping,
		Stiffness:     swipe.DefaultStiffness,
		ReplyHeight:   matchat.DefaultReplyHeight,
		ReplyDuration: 300 * time.Millisecond,
		MaxWidth:      unit.Dp(600),
	}
}

// Screen manages the state for the chat screen.
type Screen struct {
	Theme *apptheme.Theme
	// Messages is the source of truth for the conversation.
	Messages *store.Store
	// Rows presents messages, keeping swipe state keyed by message id.
	Rows *chat.RowManager
	// List implements the raw scrolling, adding scrollbars and responding
	// to mousewheel / touch fling gestures.
	List     widget.List
	Composer chatwidget.Composer
	Reply    chatwidget.ReplyPanel

	settings   Settings
	log        zerolog.Logger
	replyingTo *model.Message
}

// rows adapts the store to the row manager.
type rows struct {
	*store.Store
}

func (r rows) At(index int) chat.Row {
	return r.Store.At(index)
}

// withDefaults fills zero settings from DefaultSettings. A zero
// ReplyDuration is kept and reveals the preview instantly.
func (st Settings) withDefaults() Settings {
	def := DefaultSettings()
	if st.Threshold <= 0 {
		st.Threshold = def.Threshold
	}
	if st.IconTravel < 0 {
		st.IconTravel = def.IconTravel
	}
	if st.Damping <= 0 || st.Stiffness <= 0 {
		st.Damping, st.Stiffness = def.Damping, def.Stiffness
	}
	if st.ReplyHeight <= 0 {
		st.ReplyHeight = def.ReplyHeight
	}
	if st.MaxWidth <= 0 {
		st.MaxWidth = def.MaxWidth
	}
	return st
}

// NewScreen constructs a screen presenting the given messages.
func NewScreen(th *apptheme.Theme, messages *store.Store, settings Settings, log zerolog.Logger) *Screen {
	settings = settings.withDefaults()
	s := &Screen{
		Theme:    th,
		Messages: messages,
		settings: settings,
		log:      log,
		Reply: chatwidget.ReplyPanel{
			Reveal: anim.Timing{
				Duration: settings.ReplyDuration,
				Easing:   anim.EaseInOut,
			},
		},
	}
	s.List.Axis = layout.Vertical
	s.List.ScrollToEnd = true
	s.Rows = chat.NewManager(rows{Store: messages}, s.allocate, s.present)
	return s
}

func (s *Screen) allocate(chat.Row) interface{} {
	return &chatwidget.SwipeRow{
		Tracker: swipe.Tracker{
			Threshold:  s.settings.Threshold,
			IconTravel: s.settings.IconTravel,
			Spring: anim.Spring{
				Damping:   s.settings.Damping,
				Stiffness: s.settings.Stiffness,
				Mass:      1,
			},
		},
	}
}

func (s *Screen) present(row chat.Row, state interface{}) layout.Widget {
	msg, ok := row.(model.Message)
	if !ok {
		return func(C) D { return D{} }
	}
	interact, ok := state.(*chatwidget.SwipeRow)
	if !ok {
		return func(C) D { return D{} }
	}
	return func(gtx C) D {
		style := matchat.SwipeRow(s.Theme, interact, msg)
		style.Outline = s.settings.Outline
		dims := style.Layout(gtx)
		for interact.Replied() {
			s.RequestReply(gtx.Now, msg)
			op.InvalidateOp{}.Add(gtx.Ops)
		}
		return dims
	}
}

// Send appends the composer text as a message from the local user,
// quoting the message being replied to if any. Blank text is ignored and
// leaves the composer untouched.
func (s *Screen) Send(now time.Time) (model.Message, bool) {
	text := s.Composer.Text()
	if model.Blank(text) {
		return model.Message{}, false
	}
	var quote *model.Quote
	if s.replyingTo != nil {
		q := s.replyingTo.Quote()
		quote = &q
	}
	msg, err := s.Messages.Append(now, model.User, text, quote)
	if err != nil {
		s.log.Error().Err(err).Msg("appending message")
		return model.Message{}, false
	}
	s.log.Debug().
		Str("id", msg.Serial).
		Bool("reply", quote != nil).
		Msg("message sent")
	s.Composer.SetText("")
	s.replyingTo = nil
	s.Reply.Collapse(now)
	s.List.Position.BeforeEnd = false
	return msg, true
}

// RequestReply makes msg the reply target and reveals the preview.
// Requesting again while the preview is moving redirects it.
func (s *Screen) RequestReply(now time.Time, msg model.Message) {
	s.replyingTo = &msg
	s.Reply.Expand(now)
	s.log.Debug().Str("id", msg.Serial).Msg("reply requested")
}

// CancelReply clears the reply target and collapses the preview. The reveal
// heads to zero at once, but the panel reports Collapsing until the reply
// duration has elapsed and Collapsed from then on.
func (s *Screen) CancelReply(now time.Time) {
	if s.replyingTo != nil {
		s.log.Debug().Str("id", s.replyingTo.Serial).Msg("reply cancelled")
	}
	s.replyingTo = nil
	s.Reply.Collapse(now)
}

// ReplyingTo returns the current reply target, if any.
func (s *Screen) ReplyingTo() (model.Message, bool) {
	if s.replyingTo == nil {
		return model.Message{}, false
	}
	return *s.replyingTo, true
}

// Update processes the input gathered since the last frame.
func (s *Screen) Update(gtx C) {
	if s.Composer.Submitted() {
		s.Send(gtx.Now)
	}
	if s.Reply.Dismissed() {
		s.CancelReply(gtx.Now)
	}
}

// Layout the screen. The chat occupies a centered column no wider than
// MaxWidth.
func (s *Screen) Layout(gtx C) D {
	s.Update(gtx)
	size := gtx.Constraints.Max
	paint.Fill(gtx.Ops, s.Theme.Palette.Window)
	column := s.column(gtx)
	defer op.Offset(column.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(column.Size())
	defer clip.Rect{Max: column.Size()}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, s.Theme.Palette.Bg)
	s.layoutColumn(gtx)
	return D{Size: size}
}

// column returns the bounds of the chat column within the constraints.
func (s *Screen) column(gtx C) image.Rectangle {
	width := gtx.Constraints.Max.X
	if limit := gtx.Dp(s.settings.MaxWidth); limit > 0 && limit < width {
		width = limit
	}
	left := (gtx.Constraints.Max.X - width) / 2
	return image.Rect(left, 0, left+width, gtx.Constraints.Max.Y)
}

func (s *Screen) layoutColumn(gtx C) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, s.layoutMessages),
		layout.Rigid(func(gtx C) D {
			preview := matchat.ReplyPreview(s.Theme, &s.Reply, s.replyingTo)
			preview.Height = s.settings.ReplyHeight
			return preview.Layout(gtx)
		}),
		layout.Rigid(matchat.Composer(s.Theme, &s.Composer).Layout),
	)
}

func (s *Screen) layoutMessages(gtx C) D {
	return material.List(s.Theme.Theme, &s.List).Layout(gtx, s.Rows.Len(), s.Rows.Layout)
}
