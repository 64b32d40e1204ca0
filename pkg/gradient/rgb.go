package gradient

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// RGB is an 8-bit per channel color value.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	// White is returned when there is nothing to interpolate.
	White = RGB{R: 255, G: 255, B: 255}
	// Black is the zero color.
	Black = RGB{}
)

// Blend factors used to derive decorative variants of a base color.
const (
	HighlightFactor = 0.35
	GlowFactor      = 0.6
)

// FromColor converts any image/color value to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA implements color.Color so values can be drawn or compared with the image packages.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// CSS formats the color as rgb(r,g,b).
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// CSSAlpha formats the color as rgba(r,g,b,a) with alpha clamped to [0,1].
func (c RGB) CSSAlpha(alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(clamp01(alpha), 'f', -1, 64))
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.CSS()
}

// Mix blends a toward b per channel. factor is clamped to [0,1].
func Mix(a, b RGB, factor float64) RGB {
	f := clamp01(factor)
	return RGB{
		R: lerpChannel(a.R, b.R, f),
		G: lerpChannel(a.G, b.G, f),
		B: lerpChannel(a.B, b.B, f),
	}
}

// Highlight lightens c toward white by HighlightFactor.
func Highlight(c RGB) RGB {
	return Mix(c, White, HighlightFactor)
}

// Glow lightens c toward white by GlowFactor.
func Glow(c RGB) RGB {
	return Mix(c, White, GlowFactor)
}

func lerpChannel(a, b uint8, f float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*f)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
