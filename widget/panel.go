package widget

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget"

	"git.sr.ht/~gioverse/swipechat/anim"
)

// PanelState is the visibility state of the reply preview.
type PanelState uint8

const (
	Collapsed PanelState = iota
	Expanding
	Expanded
	Collapsing
)

func (s PanelState) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanding:
		return "expanding"
	case Expanded:
		return "expanded"
	case Collapsing:
		return "collapsing"
	default:
		return "unknown"
	}
}

// ReplyPanel holds the state of the reply preview shown above the composer:
// its reveal animation and the two buttons that dismiss it.
type ReplyPanel struct {
	// Back and Close both dismiss the panel.
	Back, Close widget.Clickable
	// Reveal animates between 0 (collapsed) and 1 (expanded).
	Reveal anim.Timing
}

// Expand starts revealing the panel. Expanding a panel that is already
// moving redirects it from wherever it is.
func (p *ReplyPanel) Expand(now time.Time) {
	p.Reveal.Animate(now, 1)
}

// Collapse starts hiding the panel. It reports Collapsing until the reveal
// duration has elapsed and Collapsed from then on.
func (p *ReplyPanel) Collapse(now time.Time) {
	p.Reveal.Animate(now, 0)
}

// State reports the panel state at now.
func (p *ReplyPanel) State(now time.Time) PanelState {
	opening := p.Reveal.Target() > 0
	switch {
	case p.Reveal.Animating(now) && opening:
		return Expanding
	case p.Reveal.Animating(now):
		return Collapsing
	case opening:
		return Expanded
	default:
		return Collapsed
	}
}

// Revealed returns how far the panel is open in [0,1], requesting another
// frame while it is animating.
func (p *ReplyPanel) Revealed(gtx layout.Context) float32 {
	if p.Reveal.Animating(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return p.Reveal.Value(gtx.Now)
}

// Dismissed reports whether either dismiss button was clicked.
func (p *ReplyPanel) Dismissed() bool {
	back := p.Back.Clicked()
	closed := p.Close.Clicked()
	return back || closed
}
