/*
Package apptheme defines the colors and type scale of the chat.
*/
package apptheme

import (
	"fmt"
	"image/color"

	"gioui.org/text"
	"gioui.org/widget/material"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Light = Palette{
		Window:       rgb(0x1E1E1E),
		Bg:           rgb(0xECE5DD),
		InputBar:     rgb(0xF0F0F0),
		Input:        rgb(0xFFFFFF),
		UserBubble:   rgb(0xDCF8C6),
		OtherBubble:  rgb(0xFFFFFF),
		OnBubble:     rgb(0x000000),
		Accent:       rgb(0x128C7E),
		AccentDark:   rgb(0x075E54),
		OnAccent:     rgb(0xFFFFFF),
		Muted:        rgb(0x757575),
		MutedPreview: rgb(0x6B6B6B),
		Divider:      rgb(0xD1D1D1),
	}
	Dark = Palette{
		Window:       rgb(0x000000),
		Bg:           rgb(0x0B141A),
		InputBar:     rgb(0x1F2C34),
		Input:        rgb(0x2A3942),
		UserBubble:   rgb(0x005C4B),
		OtherBubble:  rgb(0x1F2C34),
		OnBubble:     rgb(0xE9EDEF),
		Accent:       rgb(0x00A884),
		AccentDark:   rgb(0x00A884),
		OnAccent:     rgb(0xFFFFFF),
		Muted:        rgb(0x8696A0),
		MutedPreview: rgb(0x8696A0),
		Divider:      rgb(0x2A3942),
	}
)

// Palette defines the semantic colors of the interface.
type Palette struct {
	// Window is painted behind everything else.
	Window color.NRGBA
	// Bg appears behind the message list and reply preview.
	Bg color.NRGBA
	// InputBar is the strip holding the composer.
	InputBar color.NRGBA
	// Input is the composer field itself.
	Input color.NRGBA
	// UserBubble and OtherBubble fill message bubbles by sender.
	UserBubble  color.NRGBA
	OtherBubble color.NRGBA
	OnBubble    color.NRGBA
	// Accent marks quotes and the reply affordance.
	Accent color.NRGBA
	// AccentDark is used for the send button and preview controls.
	AccentDark color.NRGBA
	OnAccent   color.NRGBA
	// Muted text, such as quoted message bodies.
	Muted        color.NRGBA
	MutedPreview color.NRGBA
	// Divider separates the reply preview from the list.
	Divider color.NRGBA
}

// Theme wraps the material.Theme with application-specific colors.
type Theme struct {
	*material.Theme
	// Palette specifies semantic colors.
	Palette Palette
}

// NewTheme instantiates a theme using the provided fonts and palette name,
// one of "light" or "dark".
func NewTheme(fonts []text.FontFace, name string) (*Theme, error) {
	th := Theme{
		Theme: material.NewTheme(fonts),
	}
	switch name {
	case "", "light":
		th.UsePalette(Light)
	case "dark":
		th.UsePalette(Dark)
	default:
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	return &th, nil
}

// UsePalette changes to the specified palette.
func (t *Theme) UsePalette(p Palette) {
	t.Palette = p
	t.Theme.Bg = p.Bg
	t.Theme.Fg = p.OnBubble
	t.Theme.ContrastBg = p.AccentDark
	t.Theme.ContrastFg = p.OnAccent
}

// Bubble returns the bubble color for a message, local or not.
func (t *Theme) Bubble(local bool) color.NRGBA {
	if local {
		return t.Palette.UserBubble
	}
	return t.Palette.OtherBubble
}

// Contrast picks black or white, whichever reads better atop bg.
func (t *Theme) Contrast(bg color.NRGBA) color.NRGBA {
	if Luminance(bg) < 0.5 {
		return rgb(0xFFFFFF)
	}
	return rgb(0x000000)
}

// Luminance computes the perceptual lightness of a color in [0,1].
// Alpha is ignored.
func Luminance(c color.NRGBA) float64 {
	l, _, _ := toColorful(c).Lab()
	return l
}

// Blend mixes a towards b by t in [0,1], interpolating in Lab space so that
// intermediate colors stay perceptually even.
func Blend(a, b color.NRGBA, t float32) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mixed := toColorful(a).BlendLab(toColorful(b), float64(t)).Clamped()
	out := ToNRGBA(mixed)
	out.A = uint8(float32(a.A) + (float32(b.A)-float32(a.A))*t)
	return out
}

// Fade scales the alpha of c by opacity in [0,1].
func Fade(c color.NRGBA, opacity float32) color.NRGBA {
	if opacity <= 0 {
		c.A = 0
		return c
	}
	if opacity >= 1 {
		return c
	}
	c.A = uint8(float32(c.A) * opacity)
	return c
}

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
