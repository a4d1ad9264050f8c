package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/i18n"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/prefs"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/sfx"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	s     *State
	store *prefs.Memory
	now   time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := prefs.NewMemory()
	log := zap.NewNop()
	s := New(site.Default(), 1280, 800, store, sfx.NewPlayer(false, 0, log), log, epoch)
	return &harness{s: s, store: store, now: epoch}
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
	h.s.Update(h.now)
}

func TestKeyboardDrivesModal(t *testing.T) {
	h := newHarness(t)
	card := h.s.Doc.ByID("paperstrike")
	require.NotNil(t, card)

	h.s.Click(card, h.now)
	require.True(t, h.s.Modal.IsOpen())

	h.s.HandleKey(KeyRight, h.now)
	h.s.HandleKey(KeyRight, h.now)
	h.s.HandleKey(KeyRight, h.now)
	name, i := h.s.Modal.Current()
	assert.Equal(t, "paperstrike", name)
	assert.Equal(t, 2, i, "the modal stops at the last image")

	h.s.HandleKey(KeyLeft, h.now)
	_, i = h.s.Modal.Current()
	assert.Equal(t, 1, i)

	h.s.HandleKey(KeyEscape, h.now)
	assert.True(t, h.s.Modal.IsOpen(), "closing waits for the zoom-out")
	h.advance(300 * time.Millisecond)
	assert.False(t, h.s.Modal.IsOpen())
}

func TestCardClickOpensAtCarouselIndex(t *testing.T) {
	h := newHarness(t)
	h.s.Carousel.Change("gptsites", -1)
	h.advance(150 * time.Millisecond)

	h.s.Click(h.s.Doc.ByID("gptsites"), h.now)
	name, i := h.s.Modal.Current()
	assert.Equal(t, "gptsites", name)
	assert.Equal(t, 3, i)
}

func TestSingleImageCard(t *testing.T) {
	h := newHarness(t)
	h.s.Click(h.s.Doc.ByID("terminal"), h.now)
	require.True(t, h.s.Modal.IsOpen())
	name, _ := h.s.Modal.Current()
	assert.Empty(t, name)

	src, _ := h.s.Doc.ByID(page.IDModalImage).Attr(page.AttrSrc)
	assert.Equal(t, "resources/terminal.png", src)
}

func TestArrowsStepFocusedCarousel(t *testing.T) {
	h := newHarness(t)
	h.s.Doc.ScrollTo(1750)
	h.s.MouseMove(100, 100)
	require.Equal(t, "gptsites", h.s.Focus)

	h.s.HandleKey(KeyRight, h.now)
	assert.Equal(t, 1, h.s.Carousel.Index("gptsites"))
	assert.Equal(t, "2 / 4", h.s.Doc.ByID(page.IndicatorID("gptsites")).Text)

	h.s.MouseMove(5, 5)
	assert.Empty(t, h.s.Focus)
	h.s.HandleKey(KeyRight, h.now)
	assert.Equal(t, 1, h.s.Carousel.Index("gptsites"))
}

func TestLanguageToggleThroughButton(t *testing.T) {
	h := newHarness(t)
	h.s.Click(h.s.Doc.ByID(page.IDLangButton), h.now)

	assert.Equal(t, i18n.French, h.s.Translator.Language())
	saved, ok := h.store.Get("preferredLanguage")
	require.True(t, ok)
	assert.Equal(t, "fr", saved)
	assert.Equal(t, "EN", h.s.Doc.ByID(page.IDLangMobile).Text)
}

func TestMenuLinkClosesMenuAndScrolls(t *testing.T) {
	h := newHarness(t)
	h.s.Click(h.s.Doc.First(page.ClassMenuToggle), h.now)
	require.True(t, h.s.Menu.IsOpen())

	var link *page.Element
	for _, e := range h.s.Doc.ByClass(page.ClassMenuLink) {
		if href, _ := e.Attr(page.AttrHref); href == "#about" {
			link = e
		}
	}
	require.NotNil(t, link)
	h.s.Click(link, h.now)
	assert.False(t, h.s.Menu.IsOpen())

	h.advance(time.Second)
	assert.Equal(t, 900.0, h.s.Doc.ScrollY)
	assert.True(t, h.s.Doc.ByID(page.IDNavbar).HasClass("scrolled"))
	assert.True(t, h.s.Doc.ByID(page.IDBackToTop).HasClass("visible"))
}

func TestResizeClosesMenuAboveBreakpoint(t *testing.T) {
	h := newHarness(t)
	h.s.Resize(600, 800)
	h.s.HandleKey(KeyMenu, h.now)
	h.advance(10 * time.Millisecond)
	require.True(t, h.s.Menu.IsOpen())

	h.s.Resize(1024, 800)
	assert.False(t, h.s.Menu.IsOpen())
}

func TestWheelIgnoredWhileModalOpen(t *testing.T) {
	h := newHarness(t)
	h.s.Wheel(120)
	assert.Equal(t, 120.0, h.s.Doc.ScrollY)

	h.s.Click(h.s.Doc.ByID("simpson"), h.now)
	h.s.Wheel(120)
	assert.Equal(t, 120.0, h.s.Doc.ScrollY)
}

func TestWheelIgnoredWhileMenuOpen(t *testing.T) {
	h := newHarness(t)
	h.s.Click(h.s.Doc.First(page.ClassMenuToggle), h.now)
	require.True(t, h.s.Menu.IsOpen())
	h.s.Wheel(120)
	assert.Zero(t, h.s.Doc.ScrollY)

	h.advance(time.Second)
	h.s.Click(h.s.Doc.First(page.ClassMenuToggle), h.now)
	require.False(t, h.s.Menu.IsOpen())
	h.s.Wheel(120)
	assert.Equal(t, 120.0, h.s.Doc.ScrollY)
}

func TestShowMoreRevealsHiddenCards(t *testing.T) {
	h := newHarness(t)
	drowned := h.s.Doc.ByID("drowned")
	assert.False(t, drowned.Displayed())

	h.s.Click(h.s.Doc.ByID(page.IDShowMore), h.now)
	assert.True(t, drowned.Displayed())
	assert.True(t, h.s.Projects.Expanded())
}

func TestHitFindsShowMoreAndCards(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, h.s.Doc.ByID(page.IDShowMore), h.s.Hit(640, 3100))
	assert.Equal(t, h.s.Doc.ByID("gptsites"), h.s.Hit(100, 1900))
	assert.Nil(t, h.s.Hit(100, 3000), "hidden cards are not hit")

	h.s.Click(h.s.Hit(640, 3100), h.now)
	assert.True(t, h.s.Projects.Expanded())
	assert.Equal(t, h.s.Doc.ByID("terminal"), h.s.Hit(100, 3000))
}

func TestReloadKeepsScrollAndLanguage(t *testing.T) {
	h := newHarness(t)
	h.s.HandleKey(KeyLanguage, h.now)
	h.s.Wheel(400)

	m := site.Default()
	m.Projects = m.Projects[:2]
	next := h.s.Reload(m, h.now)

	assert.Equal(t, 400.0, next.Doc.ScrollY)
	assert.Equal(t, i18n.French, next.Translator.Language())
	assert.Nil(t, next.Doc.ByID("simpson"))
	assert.Nil(t, next.Doc.ByID(page.IDShowMore))
}

func TestImagePaths(t *testing.T) {
	paths := ImagePaths(site.Default())
	assert.Len(t, paths, 18)
	assert.Contains(t, paths, "resources/terminal.png")
	assert.Contains(t, paths, "resources/dust2_2.png")
}
