// Package render adapts Ebitengine images and tcell screens to the
// particle field's drawing surface.
package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// tint is c at the given opacity.
func tint(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// over flattens c at alpha onto bg, for targets without alpha blending.
func over(bg, c colorful.Color, alpha float64) colorful.Color {
	return bg.BlendRgb(c, clamp01(alpha)).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
