package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// EbitenSurface draws onto the screen image handed to Game.Draw. Until an
// image is bound every draw call is dropped. A nil *EbitenSurface has zero
// size and draws nothing.
type EbitenSurface struct {
	dst  *ebiten.Image
	w, h float64
	bg   color.Color
	fg   colorful.Color
}

func NewEbitenSurface(bg color.Color, fg colorful.Color) *EbitenSurface {
	return &EbitenSurface{bg: bg, fg: fg}
}

// Bind targets dst for the current frame.
func (s *EbitenSurface) Bind(dst *ebiten.Image) { s.dst = dst }

// SetSize records the logical screen size reported by Layout.
func (s *EbitenSurface) SetSize(w, h float64) { s.w, s.h = w, h }

func (s *EbitenSurface) Size() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	return s.w, s.h
}

func (s *EbitenSurface) Clear() {
	if s == nil || s.dst == nil {
		return
	}
	s.dst.Fill(s.bg)
}

func (s *EbitenSurface) FillCircle(x, y, radius, alpha float64) {
	if s == nil || s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(radius), tint(s.fg, alpha), true)
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width, alpha float64) {
	if s == nil || s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), tint(s.fg, alpha), true)
}
