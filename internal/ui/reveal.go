package ui

import (
	"fmt"
	"math"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
)

const revealAnimation = "fadeInUp 0.8s ease forwards"

// Reveal fades project cards and skill items in the first time enough of
// them scrolls into view.
type Reveal struct {
	doc      *page.Document
	observed []*page.Element
	revealed map[*page.Element]bool
}

// NewReveal hides every card and skill item and starts observing them.
func NewReveal(doc *page.Document) *Reveal {
	r := &Reveal{doc: doc, revealed: make(map[*page.Element]bool)}
	for _, e := range doc.ByClass(page.ClassProjectCard, page.ClassSkillItem) {
		e.SetStyle("opacity", "0")
		e.SetStyle("transform", "translateY(30px)")
		r.observed = append(r.observed, e)
	}
	return r
}

// Check reveals observed elements whose visible fraction reaches the
// threshold. The viewport's bottom edge is pulled in by the root margin.
func (r *Reveal) Check() {
	for _, e := range r.observed {
		if r.revealed[e] || !e.Displayed() {
			continue
		}
		if IntersectionRatio(e.Rect, r.doc) >= config.RevealThreshold {
			e.SetStyle("animation", revealAnimation)
			r.revealed[e] = true
		}
	}
}

func (r *Reveal) Revealed(e *page.Element) bool { return r.revealed[e] }

// IntersectionRatio is the fraction of rect's area inside the viewport.
func IntersectionRatio(rect page.Rect, doc *page.Document) float64 {
	area := rect.W * rect.H
	if area <= 0 {
		return 0
	}
	top := doc.ScrollY
	bottom := doc.ScrollY + doc.ViewportH - config.RevealBottomMargin

	h := math.Min(rect.Bottom(), bottom) - math.Max(rect.Y, top)
	w := math.Min(rect.X+rect.W, doc.ViewportW) - math.Max(rect.X, 0)
	if h <= 0 || w <= 0 {
		return 0
	}
	return (w * h) / area
}

// Parallax shifts the hero block against the pointer.
type Parallax struct {
	doc    *page.Document
	dx, dy float64
}

func NewParallax(doc *page.Document) *Parallax {
	return &Parallax{doc: doc}
}

func (p *Parallax) OnMouseMove(x, y float64) {
	if p.doc.ViewportW <= 0 || p.doc.ViewportH <= 0 {
		return
	}
	p.dx = (x/p.doc.ViewportW - 0.5) * config.ParallaxStrength
	p.dy = (y/p.doc.ViewportH - 0.5) * config.ParallaxStrength
	if hero := p.doc.First(page.ClassHero); hero != nil {
		hero.SetStyle("transform", fmt.Sprintf("translate(%gpx, %gpx)", p.dx, p.dy))
	}
}

func (p *Parallax) Offset() (dx, dy float64) { return p.dx, p.dy }
