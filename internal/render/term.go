package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal lines are thin and faint; their opacity is boosted so they stay
// visible against a solid cell background.
const termLineBoost = 4

const (
	glyphSmall = '•'
	glyphLarge = '●'
	glyphLine  = '·'
)

// TermSurface maps surface pixels onto terminal cells of a fixed pixel size.
// A nil *TermSurface has zero size and draws nothing.
type TermSurface struct {
	screen       tcell.Screen
	cellW, cellH float64
	bg, fg       colorful.Color
}

func NewTermSurface(screen tcell.Screen, cellW, cellH float64, bg, fg colorful.Color) *TermSurface {
	return &TermSurface{screen: screen, cellW: cellW, cellH: cellH, bg: bg, fg: fg}
}

func (s *TermSurface) Size() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

func (s *TermSurface) Clear() {
	if s == nil {
		return
	}
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(s.bg)))
}

func (s *TermSurface) FillCircle(x, y, radius, alpha float64) {
	if s == nil {
		return
	}
	col, row := s.cell(x, y)
	glyph := glyphSmall
	if radius >= 2.5 {
		glyph = glyphLarge
	}
	s.put(col, row, glyph, alpha)
}

// StrokeLine rasterises the segment over cells, leaving particle glyphs intact.
func (s *TermSurface) StrokeLine(x0, y0, x1, y1, width, alpha float64) {
	if s == nil {
		return
	}
	c0, r0 := s.cell(x0, y0)
	c1, r1 := s.cell(x1, y1)
	alpha = min(alpha*termLineBoost, 1)

	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		if mainc, _, _, _ := s.screen.GetContent(c0, r0); mainc != glyphSmall && mainc != glyphLarge {
			s.put(c0, r0, glyphLine, alpha)
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func (s *TermSurface) cell(x, y float64) (int, int) {
	return int(x / s.cellW), int(y / s.cellH)
}

func (s *TermSurface) put(col, row int, glyph rune, alpha float64) {
	style := tcell.StyleDefault.
		Background(tcellColor(s.bg)).
		Foreground(tcellColor(over(s.bg, s.fg, alpha)))
	s.screen.SetContent(col, row, glyph, nil, style)
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
