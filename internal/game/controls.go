package game

import (
	"image"
	"unicode/utf8"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
)

// Overlay geometry, in window pixels.
const (
	navbarHeight = 24
	navTextY     = 6
	drawerWidth  = 220
	drawerRowTop = 40
	drawerRow    = 28
	backToTopR   = 18
	menuLabel    = "MENU"
)

// control is a clickable page element drawn at a fixed window position.
type control struct {
	elem  *page.Element
	label string
	r     image.Rectangle
}

func textWidth(s string) int { return utf8.RuneCountInString(s) * glyphWidth }

// navControls lays out the navbar from the right edge: the language button,
// the section links, then the menu button.
func (g *Game) navControls() []control {
	doc := g.state.Doc
	var out []control
	x := g.width - 12
	add := func(e *page.Element, label string, gap int) {
		x -= textWidth(label) + gap*glyphWidth
		out = append(out, control{elem: e, label: label, r: image.Rect(x, navTextY, x+textWidth(label), navTextY+glyphHeight)})
	}

	if btn := doc.ByID(page.IDLangButton); btn != nil {
		add(btn, btn.Text, 0)
	}
	for _, id := range []string{"contact", "projects", "about"} {
		label, link := doc.ByID("nav-"+id), g.link(page.ClassNavLink, "#"+id)
		if label != nil && link != nil {
			add(link, plain(label.Content()), 3)
		}
	}
	if btn := doc.ByID(page.IDMobileMenuBtn); btn != nil {
		add(btn, menuLabel, 3)
	}
	return out
}

// drawerX is the left edge of the open menu drawer.
func (g *Game) drawerX() int { return g.width - drawerWidth }

// drawerControls lays out one row per menu link while the drawer is open.
func (g *Game) drawerControls() []control {
	if !g.state.Menu.IsOpen() {
		return nil
	}
	var out []control
	x := g.drawerX()
	for i, link := range g.state.Doc.ByClass(page.ClassMenuLink) {
		top := drawerRowTop + i*drawerRow
		out = append(out, control{elem: link, r: image.Rect(x, top, g.width, top+drawerRow)})
	}
	return out
}

// backToTop returns the back-to-top button's centre and whether it shows.
func (g *Game) backToTop() (*page.Element, image.Point, bool) {
	btn := g.state.Doc.ByID(page.IDBackToTop)
	if btn == nil || !btn.HasClass("visible") {
		return nil, image.Point{}, false
	}
	return btn, image.Pt(g.width-40, g.height-60), true
}

// controlAt finds the overlay element under window point (x, y). Inside
// the open drawer nothing beneath it is hit.
func (g *Game) controlAt(x, y int) (*page.Element, bool) {
	p := image.Pt(x, y)
	if g.state.Menu.IsOpen() && x >= g.drawerX() && y >= navbarHeight {
		for _, c := range g.drawerControls() {
			if p.In(c.r) {
				return c.elem, true
			}
		}
		return nil, true
	}
	for _, c := range g.navControls() {
		if p.In(c.r.Inset(-4)) {
			return c.elem, true
		}
	}
	if btn, c, ok := g.backToTop(); ok {
		if d := p.Sub(c); d.X*d.X+d.Y*d.Y <= backToTopR*backToTopR {
			return btn, true
		}
	}
	return nil, false
}

// link returns the first element of class whose href is href.
func (g *Game) link(class, href string) *page.Element {
	for _, e := range g.state.Doc.ByClass(class) {
		if h, _ := e.Attr(page.AttrHref); h == href {
			return e
		}
	}
	return nil
}
