package game

import (
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
)

// hueColor is the colour at phase around the hue wheel (one turn per 1.0).
func hueColor(phase, s, v float64, alpha uint8) color.RGBA {
	h := math.Mod(phase*360, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.RGBA{R: premul(r, alpha), G: premul(g, alpha), B: premul(b, alpha), A: alpha}
}

func premul(c, alpha uint8) uint8 {
	return uint8(uint16(c) * uint16(alpha) / 255)
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

// opacity reads e's inline opacity; unset means fully opaque.
func opacity(e *page.Element) float64 {
	v := e.Style("opacity")
	if v == "" {
		return 1
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 1
	}
	return clamp01(f)
}

// scale reads a "scale(x)" inline transform; anything else is 1.
func scale(e *page.Element) float64 {
	v, ok := strings.CutPrefix(e.Style("transform"), "scale(")
	if !ok {
		return 1
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, ")"), 64)
	if err != nil {
		return 1
	}
	return f
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// plain strips markup so HTML content can go through the debug font.
func plain(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
