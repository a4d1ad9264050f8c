// Package app owns the portfolio's page state and routes input to the
// behaviour that handles it. Everything runs on the frame loop goroutine.
package app

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/gallery"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/i18n"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/prefs"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/sfx"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/ui"
)

// Key is an input key the page reacts to.
type Key int

const (
	KeyEscape Key = iota
	KeyLeft
	KeyRight
	KeyLanguage
	KeyMenu
	KeyMore
	KeyHome
)

// State is the page's explicit application state.
type State struct {
	Manifest *site.Manifest
	Doc      *page.Document
	Catalog  gallery.Catalog
	Timers   *schedule.Timers

	Carousel   *gallery.Carousel
	Modal      *gallery.Modal
	Translator *i18n.Translator
	Menu       *ui.Menu
	Scroll     *ui.Scroll
	Reveal     *ui.Reveal
	Parallax   *ui.Parallax
	Projects   *ui.Projects

	// Focus is the gallery card under the pointer; arrow keys step its
	// carousel while the modal is closed.
	Focus string

	store  prefs.Store
	sounds *sfx.Player
	log    *zap.Logger
}

// New builds the document for m and wires every behaviour to it, then
// restores the saved language and runs the initial reveal pass.
func New(m *site.Manifest, viewportW, viewportH float64, store prefs.Store, sounds *sfx.Player, log *zap.Logger, now time.Time) *State {
	doc := page.Build(m, viewportW, viewportH)
	timers := schedule.NewTimers(now)
	catalog := gallery.Catalog(m.Galleries)

	s := &State{
		Manifest: m,
		Doc:      doc,
		Catalog:  catalog,
		Timers:   timers,
		Carousel: gallery.NewCarousel(doc, catalog, timers),
		Modal:    gallery.NewModal(doc, catalog, timers),
		Menu:     ui.NewMenu(doc, timers),
		Scroll:   ui.NewScroll(doc),
		Parallax: ui.NewParallax(doc),
		store:    store,
		sounds:   sounds,
		log:      log,
	}
	s.Translator = i18n.NewTranslator(doc, store, log)
	s.Projects = ui.NewProjects(doc, s.Translator, s.Scroll)
	s.Reveal = ui.NewReveal(doc)

	s.Translator.Restore()
	s.Scroll.OnScroll()
	s.Reveal.Check()
	return s
}

// Update advances timers and any smooth scroll to now.
func (s *State) Update(now time.Time) {
	s.Timers.Advance(now)
	if s.Scroll.Animating() {
		s.Scroll.Step(now)
		s.Reveal.Check()
	}
}

func (s *State) HandleKey(k Key, now time.Time) {
	switch k {
	case KeyEscape:
		if s.Modal.IsOpen() {
			s.sounds.Play(sfx.CueClose)
		}
		s.Modal.Close()
	case KeyLeft:
		s.step(-1)
	case KeyRight:
		s.step(1)
	case KeyLanguage:
		s.Translator.Toggle()
		s.sounds.Play(sfx.CueToggle)
		s.log.Debug("language switched", zap.String("lang", string(s.Translator.Language())))
	case KeyMenu:
		s.Menu.ToggleFromButton()
		s.sounds.Play(sfx.CueToggle)
	case KeyMore:
		s.Projects.ToggleMore(now)
		s.Reveal.Check()
	case KeyHome:
		s.Scroll.BackToTop(now)
	}
}

func (s *State) step(dir int) {
	switch {
	case s.Modal.IsOpen():
		if dir < 0 {
			s.Modal.Previous()
		} else {
			s.Modal.Next()
		}
	case s.Focus != "":
		s.Carousel.Change(s.Focus, dir)
	default:
		return
	}
	s.sounds.Play(sfx.CueNavigate)
}

// Reload rebuilds the state for a changed manifest, keeping the scroll
// offset. The language comes back from the preference store.
func (s *State) Reload(m *site.Manifest, now time.Time) *State {
	next := New(m, s.Doc.ViewportW, s.Doc.ViewportH, s.store, s.sounds, s.log, now)
	next.Doc.ScrollTo(s.Doc.ScrollY)
	next.Scroll.OnScroll()
	next.Reveal.Check()
	return next
}

// Wheel scrolls by dy document pixels. The open modal and the open menu
// both lock the body's overflow, and a locked body does not scroll.
func (s *State) Wheel(dy float64) {
	if dy == 0 || s.Doc.Body.Style("overflow") == "hidden" {
		return
	}
	s.Scroll.ScrollBy(dy)
	s.Reveal.Check()
}

// Resize records a new viewport size.
func (s *State) Resize(w, h float64) {
	if w == s.Doc.ViewportW && h == s.Doc.ViewportH {
		return
	}
	s.Doc.ViewportW, s.Doc.ViewportH = w, h
	s.Doc.ScrollTo(s.Doc.ScrollY)
	s.Menu.OnResize(w)
	s.Scroll.OnScroll()
	s.Reveal.Check()
}

// MouseMove takes a viewport position; it drives the hero parallax and
// the focused card.
func (s *State) MouseMove(x, y float64) {
	s.Parallax.OnMouseMove(x, y)
	s.Focus = ""
	if card := s.HitCard(x, y+s.Doc.ScrollY); card != nil {
		if name, ok := card.Attr(page.AttrGallery); ok {
			s.Focus = name
		}
	}
}

// Click dispatches a click on the element under the pointer.
func (s *State) Click(e *page.Element, now time.Time) {
	if e == nil {
		return
	}
	switch {
	case e.ID == page.IDLangButton || e.ID == page.IDLangMobile:
		s.HandleKey(KeyLanguage, now)
	case e.ID == page.IDBackToTop:
		s.HandleKey(KeyHome, now)
	case e.ID == page.IDShowMore:
		s.HandleKey(KeyMore, now)
	case e.ID == page.IDMobileMenuBtn:
		s.HandleKey(KeyMenu, now)
	case e.HasClass(page.ClassMenuToggle):
		s.Menu.Toggle()
	case e.HasClass(page.ClassMenuLink):
		s.Menu.Close()
		href, _ := e.Attr(page.AttrHref)
		s.Scroll.Follow(href, now)
	case e.HasClass(page.ClassNavLink):
		href, _ := e.Attr(page.AttrHref)
		s.Scroll.Follow(href, now)
	case e.HasClass(page.ClassPrevButton):
		s.HandleKey(KeyLeft, now)
	case e.HasClass(page.ClassNextButton):
		s.HandleKey(KeyRight, now)
	case e.HasClass(page.ClassProjectCard):
		if name, ok := e.Attr(page.AttrGallery); ok {
			s.Modal.Open(name, s.Carousel.Index(name))
			s.sounds.Play(sfx.CueOpen)
		} else if src, ok := e.Attr(page.AttrSingle); ok {
			s.Modal.OpenSingle(src)
			s.sounds.Play(sfx.CueOpen)
		}
	}
}

// Hit returns the clickable element laid out under document point (x, y):
// the show-more button or a displayed project card.
func (s *State) Hit(x, y float64) *page.Element {
	if btn := s.Doc.ByID(page.IDShowMore); btn != nil && btn.Displayed() && btn.Rect.Contains(x, y) {
		return btn
	}
	return s.HitCard(x, y)
}

// HitCard returns the displayed project card under document point (x, y).
func (s *State) HitCard(x, y float64) *page.Element {
	for _, e := range s.Doc.ByClass(page.ClassProjectCard) {
		if e.Displayed() && e.Rect.Contains(x, y) {
			return e
		}
	}
	return nil
}

// ImagePaths lists every gallery image and single project image in m once.
func ImagePaths(m *site.Manifest) []string {
	paths := gallery.Catalog(m.Galleries).Paths()
	for _, p := range m.Projects {
		if p.Single != "" && !slices.Contains(paths, p.Single) {
			paths = append(paths, p.Single)
		}
	}
	return paths
}
