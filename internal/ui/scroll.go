package ui

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
)

const smoothScrollDuration = 450 * time.Millisecond

// Scroll keeps the progress bar, navbar and back-to-top button in step with
// the scroll offset, and runs smooth scrolls.
type Scroll struct {
	doc *page.Document

	animating bool
	from, to  float64
	start     time.Time
}

func NewScroll(doc *page.Document) *Scroll {
	return &Scroll{doc: doc}
}

// Progress is the scrolled fraction of the document as a percentage. A
// document that cannot scroll reports 0.
func (s *Scroll) Progress() float64 {
	scrollable := s.doc.ScrollHeight - s.doc.ViewportH
	if scrollable <= 0 {
		return 0
	}
	return s.doc.ScrollY / scrollable * 100
}

// OnScroll is the scroll event handler.
func (s *Scroll) OnScroll() {
	scrolled := s.doc.ScrollY

	if ind := s.doc.First(page.ClassScrollIndicator); ind != nil {
		ind.SetStyle("width", strconv.FormatFloat(s.Progress(), 'f', -1, 64)+"%")
	}
	if nav := s.doc.ByID(page.IDNavbar); nav != nil {
		if scrolled > config.NavbarScrolledOffset {
			nav.AddClass("scrolled")
		} else {
			nav.RemoveClass("scrolled")
		}
	}
	if btn := s.doc.ByID(page.IDBackToTop); btn != nil {
		if scrolled > config.BackToTopOffset {
			btn.AddClass("visible")
		} else {
			btn.RemoveClass("visible")
		}
	}
}

// ScrollBy moves the offset immediately, cancelling any smooth scroll.
func (s *Scroll) ScrollBy(dy float64) {
	s.animating = false
	s.doc.ScrollTo(s.doc.ScrollY + dy)
	s.OnScroll()
}

// SmoothTo starts an eased scroll towards y.
func (s *Scroll) SmoothTo(y float64, now time.Time) {
	s.animating = true
	s.from = s.doc.ScrollY
	s.to = math.Min(math.Max(y, 0), s.doc.MaxScroll())
	s.start = now
}

func (s *Scroll) Animating() bool { return s.animating }

// Step advances a running smooth scroll to now.
func (s *Scroll) Step(now time.Time) {
	if !s.animating {
		return
	}
	t := float64(now.Sub(s.start)) / float64(smoothScrollDuration)
	if t >= 1 {
		s.doc.ScrollTo(s.to)
		s.animating = false
	} else {
		s.doc.ScrollTo(s.from + (s.to-s.from)*easeInOutCubic(math.Max(t, 0)))
	}
	s.OnScroll()
}

// Follow handles a click on an in-page link. Only "#id" links to existing
// elements scroll.
func (s *Scroll) Follow(href string, now time.Time) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return
	}
	target := s.doc.ByID(id)
	if target == nil {
		return
	}
	s.SmoothTo(target.Rect.Y, now)
}

// BackToTop is the back-to-top button's handler.
func (s *Scroll) BackToTop(now time.Time) {
	s.SmoothTo(0, now)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
