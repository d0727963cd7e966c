package system

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in hue (degrees), saturation and lightness ([0,1]).
type HSL struct {
	H, S, L float64
}

// Colorful converts to a go-colorful color.
func (c HSL) Colorful() colorful.Color {
	return colorful.Hsl(math.Mod(c.H, 360), clamp01(c.S), clamp01(c.L))
}

// Hex returns the #rrggbb form.
func (c HSL) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Lighter shifts lightness by d and pulls saturation down by the same
// fraction.
func (c HSL) Lighter(d float64) HSL {
	return HSL{H: c.H, S: clamp01(c.S * (1 - d)), L: clamp01(c.L + d)}
}

// Blend mixes two colors in CIE-L*u*v* space.
func Blend(a, b HSL, t float64) string {
	return a.Colorful().BlendLuv(b.Colorful(), clamp01(t)).Clamped().Hex()
}

// starLight derives the emitted light color from the surface color. It uses
// no draws.
func starLight(surface HSL) HSL {
	return HSL{
		H: surface.H,
		S: surface.S * 0.35,
		L: math.Min(0.92, surface.L+0.3),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
