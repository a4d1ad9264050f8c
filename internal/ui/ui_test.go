package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newDoc() *page.Document {
	return page.Build(site.Default(), 1280, 800)
}

type french bool

func (f french) Pick(en, fr string) string {
	if f {
		return fr
	}
	return en
}

func TestMenuToggleGuard(t *testing.T) {
	doc := newDoc()
	timers := schedule.NewTimers(epoch)
	m := NewMenu(doc, timers)
	btn := doc.First(page.ClassMenuButton)

	m.Toggle()
	assert.True(t, m.IsOpen())
	assert.True(t, doc.First(page.ClassMenuToggle).HasClass("active"))
	assert.Equal(t, "✕", btn.Text)
	assert.Equal(t, "hidden", doc.Body.Style("overflow"))
	assert.True(t, m.Busy())

	m.Toggle()
	assert.True(t, m.IsOpen(), "a second toggle inside the guard window is ignored")

	timers.Advance(epoch.Add(300 * time.Millisecond))
	assert.False(t, m.Busy())

	m.Toggle()
	assert.False(t, m.IsOpen())
	assert.Equal(t, "☰", btn.Text)
	assert.Equal(t, "auto", doc.Body.Style("overflow"))
}

func TestMenuToggleFromButtonIsDeferred(t *testing.T) {
	doc := newDoc()
	timers := schedule.NewTimers(epoch)
	m := NewMenu(doc, timers)

	m.ToggleFromButton()
	assert.False(t, m.IsOpen())
	timers.Advance(epoch.Add(10 * time.Millisecond))
	assert.True(t, m.IsOpen())
}

func TestMenuMissingReleasesGuard(t *testing.T) {
	doc := newDoc()
	doc.Remove(page.IDMobileMenu)
	timers := schedule.NewTimers(epoch)
	m := NewMenu(doc, timers)

	m.Toggle()
	assert.False(t, m.Busy())
	assert.Zero(t, timers.Pending())
	assert.NotPanics(t, m.Close)
}

func TestMenuCloseAndResize(t *testing.T) {
	doc := newDoc()
	timers := schedule.NewTimers(epoch)
	m := NewMenu(doc, timers)

	m.Toggle()
	m.OnResize(768)
	assert.True(t, m.IsOpen(), "at the breakpoint the drawer stays")
	m.OnResize(769)
	assert.False(t, m.IsOpen())
	assert.False(t, doc.First(page.ClassMenuToggle).HasClass("active"))
	assert.Equal(t, "☰", doc.First(page.ClassMenuButton).Text)
	assert.Equal(t, "auto", doc.Body.Style("overflow"))
}

func TestScrollEffects(t *testing.T) {
	doc := newDoc()
	s := NewScroll(doc)
	nav := doc.ByID(page.IDNavbar)
	top := doc.ByID(page.IDBackToTop)
	bar := doc.First(page.ClassScrollIndicator)

	s.ScrollBy(100)
	assert.False(t, nav.HasClass("scrolled"), "exactly 100px is not past the threshold")
	assert.False(t, top.HasClass("visible"))

	s.ScrollBy(1)
	assert.True(t, nav.HasClass("scrolled"))

	s.ScrollBy(1799)
	assert.Equal(t, 1900.0, doc.ScrollY)
	assert.Equal(t, 50.0, s.Progress())
	assert.Equal(t, "50%", bar.Style("width"))
	assert.True(t, top.HasClass("visible"))

	s.ScrollBy(-1700)
	assert.True(t, nav.HasClass("scrolled"))
	assert.False(t, top.HasClass("visible"))

	s.ScrollBy(-10000)
	assert.Equal(t, "0%", bar.Style("width"))
	assert.False(t, nav.HasClass("scrolled"))
}

func TestProgressWithoutScrollableContent(t *testing.T) {
	doc := page.NewDocument(800, 600, 400)
	assert.Zero(t, NewScroll(doc).Progress())
}

func TestFollowAnchor(t *testing.T) {
	doc := newDoc()
	s := NewScroll(doc)

	s.Follow("#", epoch)
	assert.False(t, s.Animating())
	s.Follow("#nowhere", epoch)
	assert.False(t, s.Animating())
	s.Follow("https://example.com", epoch)
	assert.False(t, s.Animating())

	s.Follow("#projects", epoch)
	require.True(t, s.Animating())

	s.Step(epoch.Add(200 * time.Millisecond))
	assert.Greater(t, doc.ScrollY, 0.0)
	assert.Less(t, doc.ScrollY, 1700.0)

	s.Step(epoch.Add(time.Second))
	assert.Equal(t, 1700.0, doc.ScrollY)
	assert.False(t, s.Animating())
	assert.True(t, doc.ByID(page.IDNavbar).HasClass("scrolled"))
}

func TestSmoothScrollClampsAndCancels(t *testing.T) {
	doc := newDoc()
	s := NewScroll(doc)

	s.SmoothTo(1e6, epoch)
	s.Step(epoch.Add(time.Second))
	assert.Equal(t, doc.MaxScroll(), doc.ScrollY)

	s.BackToTop(epoch)
	s.ScrollBy(-5)
	assert.False(t, s.Animating(), "manual scrolling cancels a smooth scroll")
}

func TestRevealThreshold(t *testing.T) {
	doc := newDoc()
	r := NewReveal(doc)
	card := doc.ByID("gptsites")
	hidden := doc.ByID("drowned")

	assert.Equal(t, "0", card.Style("opacity"))
	assert.Equal(t, "translateY(30px)", card.Style("transform"))

	doc.ScrollTo(1100)
	r.Check()
	assert.False(t, r.Revealed(card), "30px of 380px is under the threshold")

	doc.ScrollTo(1110)
	r.Check()
	assert.True(t, r.Revealed(card))
	assert.Equal(t, "fadeInUp 0.8s ease forwards", card.Style("animation"))

	doc.ScrollTo(2000)
	r.Check()
	assert.False(t, r.Revealed(hidden), "undisplayed cards are never revealed")

	hidden.SetStyle("display", "flex")
	r.Check()
	assert.True(t, r.Revealed(hidden))
}

func TestIntersectionRatio(t *testing.T) {
	doc := page.NewDocument(1000, 550, 5000)
	// Effective viewport is [0, 500) vertically.
	assert.Equal(t, 1.0, IntersectionRatio(page.Rect{X: 0, Y: 100, W: 100, H: 100}, doc))
	assert.Equal(t, 0.5, IntersectionRatio(page.Rect{X: 0, Y: 450, W: 100, H: 100}, doc))
	assert.Zero(t, IntersectionRatio(page.Rect{X: 0, Y: 500, W: 100, H: 100}, doc))
	assert.Equal(t, 0.5, IntersectionRatio(page.Rect{X: 950, Y: 0, W: 100, H: 100}, doc))
	assert.Zero(t, IntersectionRatio(page.Rect{}, doc))
}

func TestParallax(t *testing.T) {
	doc := newDoc()
	p := NewParallax(doc)

	p.OnMouseMove(640, 400)
	dx, dy := p.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	p.OnMouseMove(1280, 0)
	dx, dy = p.Offset()
	assert.Equal(t, 5.0, dx)
	assert.Equal(t, -5.0, dy)
	assert.Equal(t, "translate(5px, -5px)", doc.First(page.ClassHero).Style("transform"))
}

func TestProjectsToggleMore(t *testing.T) {
	doc := newDoc()
	scroll := NewScroll(doc)
	p := NewProjects(doc, french(true), scroll)
	label := doc.ByID(page.IDShowMoreLabel)

	p.ToggleMore(epoch)
	assert.True(t, p.Expanded())
	for _, e := range doc.ByClass(page.ClassProjectHidden) {
		assert.Equal(t, "flex", e.Style("display"))
	}
	assert.Equal(t, "Voir Moins", label.Text)
	en, _ := label.Attr(page.AttrEN)
	assert.Equal(t, "Show Less", en)
	assert.False(t, scroll.Animating())

	p.ToggleMore(epoch)
	assert.False(t, p.Expanded())
	for _, e := range doc.ByClass(page.ClassProjectHidden) {
		assert.Equal(t, "none", e.Style("display"))
	}
	assert.Equal(t, "Voir Plus de Projets", label.Text)
	assert.True(t, scroll.Animating(), "collapsing scrolls back to the projects section")
	scroll.Step(epoch.Add(time.Second))
	assert.Equal(t, 1700.0, doc.ScrollY)
}

func TestProjectsWithoutButton(t *testing.T) {
	doc := newDoc()
	doc.Remove(page.IDShowMore)
	p := NewProjects(doc, french(false), NewScroll(doc))
	assert.NotPanics(t, func() { p.ToggleMore(epoch) })
	assert.False(t, p.Expanded())
}
