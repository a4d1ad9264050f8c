package game

import (
	"fmt"
	"image/color"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
)

// Debug font cell size.
const glyphWidth, glyphHeight = 6, 16

func (g *Game) Draw(screen *ebiten.Image) {
	// The particle tick runs here, once per displayed frame.
	g.surface.Bind(screen)
	g.frames.Run(g.clock())
	g.surface.Bind(nil)

	g.drawPage(screen)
	g.drawNavbar(screen)
	g.drawProgressBar(screen)
	g.drawButton(screen)
	g.drawMenu(screen)
	g.drawModal(screen)

	status := "L: language | M: menu | Space: more projects | 1-5: sections | O: open site | Q: quit"
	if g.state.Modal.IsOpen() {
		status = "Left/Right: previous/next | Esc: close"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-glyphHeight-4)
}

func (g *Game) drawPage(screen *ebiten.Image) {
	doc := g.state.Doc
	top := doc.ScrollY
	w := float64(g.width)

	dx, dy := g.state.Parallax.Offset()
	heroY := float64(g.height)/2 - top + dy
	if e := doc.ByID("hero-title"); e != nil {
		g.printCentered(screen, plain(e.Content()), w/2+dx, heroY-glyphHeight)
	}
	if e := doc.ByID("hero-subtitle"); e != nil {
		g.printCentered(screen, plain(e.Content()), w/2+dx, heroY+glyphHeight)
	}

	for _, sec := range doc.ByClass(page.ClassSection) {
		y := sec.Rect.Y - top + 60
		if y < -glyphHeight || y > float64(g.height) {
			continue
		}
		ebitenutil.DebugPrintAt(screen, strings.ToUpper(sec.ID), 40, int(y))
		vector.StrokeLine(screen, 40, float32(y+glyphHeight+4), 40+float32(len(sec.ID)*glyphWidth), float32(y+glyphHeight+4), 2, g.accent(255), false)
	}
	if about, text := doc.ByID("about"), doc.ByID("about-text"); about != nil && text != nil {
		g.printWrapped(screen, plain(text.Content()), 40, about.Rect.Y-top+110, w-80)
	}

	for _, card := range doc.ByClass(page.ClassProjectCard) {
		if card.Displayed() && g.state.Reveal.Revealed(card) {
			g.drawCard(screen, card)
		}
	}
	if btn := doc.ByID(page.IDShowMore); btn != nil && btn.Displayed() {
		r := btn.Rect
		vector.StrokeRect(screen, float32(r.X), float32(r.Y-top), float32(r.W), float32(r.H), 2, g.accent(200), false)
		if label := doc.ByID(page.IDShowMoreLabel); label != nil {
			g.printCentered(screen, label.Text, r.X+r.W/2, r.Y-top+r.H/2-glyphHeight/2)
		}
	}
	for _, skill := range doc.ByClass(page.ClassSkillItem) {
		if !g.state.Reveal.Revealed(skill) {
			continue
		}
		x, y := float32(skill.Rect.X), float32(skill.Rect.Y-top)
		vector.StrokeRect(screen, x, y, float32(skill.Rect.W), float32(skill.Rect.H), 1, g.accent(120), false)
		g.printCentered(screen, skill.Text, skill.Rect.X+skill.Rect.W/2, skill.Rect.Y-top+skill.Rect.H/2-glyphHeight/2)
	}
}

func (g *Game) drawCard(screen *ebiten.Image, card *page.Element) {
	r := card.Rect
	x, y := r.X, r.Y-g.state.Doc.ScrollY
	if y > float64(g.height) || y+r.H < 0 {
		return
	}

	border := g.accent(90)
	if name, _ := card.Attr(page.AttrGallery); name != "" && name == g.state.Focus {
		border = g.accent(255)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), 2, border, false)

	if img := g.state.Doc.ByID(page.ImageID(card.ID)); img != nil {
		src, _ := img.Attr(page.AttrSrc)
		if tex := g.texture(src); tex != nil {
			drawFit(screen, tex, x+10, y+10, r.W-20, r.H-80, opacity(img), 1)
		} else if src != "" {
			g.printCentered(screen, path.Base(src), x+r.W/2, y+(r.H-80)/2)
		}
	}
	if title := g.state.Doc.ByID(page.TitleID(card.ID)); title != nil {
		ebitenutil.DebugPrintAt(screen, plain(title.Content()), int(x+10), int(y+r.H-56))
	}
	if ind := g.state.Doc.ByID(page.IndicatorID(card.ID)); ind != nil {
		ebitenutil.DebugPrintAt(screen, ind.Text, int(x+r.W-10)-len(ind.Text)*glyphWidth, int(y+r.H-28))
	}
}

func (g *Game) drawNavbar(screen *ebiten.Image) {
	nav := g.state.Doc.ByID(page.IDNavbar)
	if nav != nil && nav.HasClass("scrolled") {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), navbarHeight, color.RGBA{R: 10, G: 14, B: 26, A: 230}, false)
	}
	for _, c := range g.navControls() {
		ebitenutil.DebugPrintAt(screen, c.label, c.r.Min.X, c.r.Min.Y)
	}

	if _, c, ok := g.backToTop(); ok {
		cx, cy := float32(c.X), float32(c.Y)
		vector.DrawFilledCircle(screen, cx, cy, backToTopR, g.accent(200), true)
		ebitenutil.DebugPrintAt(screen, "TOP", int(cx)-9, int(cy)-8)
	}
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	progress := clamp01(g.state.Scroll.Progress() / 100)
	if progress <= 0 {
		return
	}
	hue := g.colorPhase + progress*0.5
	vector.DrawFilledRect(screen, 0, 0, float32(progress*float64(g.width)), 3, hueColor(hue, 0.8, 0.9, 220), false)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, buttonX, buttonY, buttonWidth, buttonHeight, bgColor, false)
	vector.StrokeRect(screen, buttonX, buttonY, buttonWidth, buttonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Open Site"
	textX := buttonX + (buttonWidth-len(text)*glyphWidth)/2
	textY := buttonY + (buttonHeight-glyphHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	rows := g.drawerControls()
	if rows == nil {
		return
	}
	x := float32(g.drawerX())
	vector.DrawFilledRect(screen, x, navbarHeight, drawerWidth, float32(g.height-navbarHeight), color.RGBA{R: 10, G: 14, B: 26, A: 240}, false)
	vector.StrokeLine(screen, x, navbarHeight, x, float32(g.height), 1, g.accent(160), false)
	for i, c := range rows {
		href, _ := c.elem.Attr(page.AttrHref)
		label := fmt.Sprintf("%d  %s", i+1, strings.TrimPrefix(href, "#"))
		ebitenutil.DebugPrintAt(screen, label, c.r.Min.X+20, c.r.Min.Y+(drawerRow-glyphHeight)/2)
	}
}

func (g *Game) drawModal(screen *ebiten.Image) {
	doc := g.state.Doc
	modal := doc.ByID(page.IDModal)
	img := doc.ByID(page.IDModalImage)
	if modal == nil || img == nil || !modal.HasClass("active") {
		return
	}
	w, h := float64(g.width), float64(g.height)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 230}, false)

	src, _ := img.Attr(page.AttrSrc)
	if tex := g.texture(src); tex != nil {
		drawFit(screen, tex, w*0.1, h*0.1, w*0.8, h*0.8, opacity(img), scale(img))
	} else {
		g.printCentered(screen, path.Base(src), w/2, h/2)
	}

	if counter := doc.ByID(page.IDImageCounter); counter != nil && counter.Displayed() {
		g.printCentered(screen, counter.Text, w/2, h-56)
	}
	arrows := []struct {
		class string
		glyph string
		x     float64
	}{
		{page.ClassPrevButton, "<", 40},
		{page.ClassNextButton, ">", w - 40},
	}
	for _, a := range arrows {
		btn := doc.First(a.class)
		if btn == nil || !btn.Displayed() || btn.Disabled {
			continue
		}
		vector.DrawFilledCircle(screen, float32(a.x), float32(h/2), 20, g.accent(160), true)
		g.printCentered(screen, a.glyph, a.x, h/2-glyphHeight/2)
	}
}

// texture uploads the decoded image for src on first use.
func (g *Game) texture(src string) *ebiten.Image {
	if tex, ok := g.textures[src]; ok {
		return tex
	}
	img, ok := g.images[src]
	if !ok {
		return nil
	}
	tex := ebiten.NewImageFromImage(img)
	g.textures[src] = tex
	return tex
}

// drawFit draws tex centred in the box, scaled to fit and then by extra.
func drawFit(dst, tex *ebiten.Image, x, y, w, h, alpha, extra float64) {
	if alpha <= 0 {
		return
	}
	b := tex.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	s := min(w/iw, h/ih) * extra
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x+(w-iw*s)/2, y+(h-ih*s)/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(tex, op)
}

func (g *Game) printCentered(screen *ebiten.Image, s string, cx, y float64) {
	ebitenutil.DebugPrintAt(screen, s, int(cx)-len(s)*glyphWidth/2, int(y))
}

// printWrapped prints s in lines no wider than w pixels.
func (g *Game) printWrapped(screen *ebiten.Image, s string, x, y, w float64) {
	perLine := max(int(w)/glyphWidth, 1)
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > perLine {
			ebitenutil.DebugPrintAt(screen, line.String(), int(x), int(y))
			y += glyphHeight
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		ebitenutil.DebugPrintAt(screen, line.String(), int(x), int(y))
	}
}

// accent is the theme accent at the given alpha, premultiplied.
func (g *Game) accent(alpha uint8) color.RGBA {
	r, gr, b := g.theme.Accent.Clamped().RGB255()
	return color.RGBA{R: premul(r, alpha), G: premul(gr, alpha), B: premul(b, alpha), A: alpha}
}
