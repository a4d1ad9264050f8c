// Package game runs the portfolio in an Ebitengine window: the particle
// backdrop, the page overlay and the gallery modal.
package game

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/app"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/particles"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/prefs"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/render"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/sfx"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/site"
)

// Button dimensions
const (
	buttonWidth  = 120
	buttonHeight = 28
	buttonX      = 12
	buttonY      = 30
)

// Options are the collaborators a Game is built from.
type Options struct {
	Settings *config.Settings
	Manifest *site.Manifest
	// SitePath is the manifest file; empty for the built-in manifest.
	SitePath string
	// Images are the decoded gallery images by path.
	Images map[string]image.Image
	Store  prefs.Store
	Sounds *sfx.Player
	Rand   particles.Rand
	Log    *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Game implements ebiten.Game.
type Game struct {
	settings *config.Settings
	theme    config.Theme
	log      *zap.Logger
	clock    func() time.Time

	state    *app.State
	frames   *schedule.FrameQueue
	surface  *render.EbitenSurface
	animator *particles.Animator

	sitePath string
	watcher  watcher
	images   map[string]image.Image
	textures map[string]*ebiten.Image

	width, height int
	colorPhase    float64

	// input edge detection
	prevKey          map[ebiten.Key]bool
	cursorX, cursorY int

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// watcher is the part of site.Watcher the game consumes.
type watcher interface {
	Updates() <-chan *site.Manifest
	Close() error
}

func New(opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	s := opts.Settings
	theme := s.Theme()
	now := clock()

	g := &Game{
		settings: s,
		theme:    theme,
		log:      opts.Log,
		clock:    clock,
		frames:   &schedule.FrameQueue{},
		surface:  render.NewEbitenSurface(theme.Background, theme.Particle),
		sitePath: opts.SitePath,
		images:   opts.Images,
		textures: make(map[string]*ebiten.Image),
		width:    s.WindowWidth,
		height:   s.WindowHeight,
		prevKey:  map[ebiten.Key]bool{},
	}
	if g.images == nil {
		g.images = make(map[string]image.Image)
	}
	g.surface.SetSize(float64(g.width), float64(g.height))
	g.animator = particles.Create(g.surface, g.frames, opts.Rand)
	g.state = app.New(opts.Manifest, float64(g.width), float64(g.height), opts.Store, opts.Sounds, opts.Log, now)
	if s.Watch && opts.SitePath != "" {
		g.watch(opts.SitePath)
	}
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Portfolio - L: language, M: menu, O: open site, Esc: close, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.settings.FrameRate)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Close stops the manifest watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) State() *app.State { return g.state }

func (g *Game) Animator() *particles.Animator { return g.animator }

// input is one Update's worth of user input.
type input struct {
	cursorX, cursorY float64
	moved            bool
	wheel            float64
	click            bool
	keys             []app.Key
	section          int
	open             bool
	quit             bool
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	in := input{
		cursorX: float64(mouseX),
		cursorY: float64(mouseY),
		moved:   mouseX != g.cursorX || mouseY != g.cursorY,
	}
	g.cursorX, g.cursorY = mouseX, mouseY

	// Handle button interactions
	g.buttonHovered = mouseX >= buttonX && mouseX <= buttonX+buttonWidth &&
		mouseY >= buttonY && mouseY <= buttonY+buttonHeight
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			in.open = true
		}
		g.buttonPressed = false
	}
	if !g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.click = true
	}

	_, dy := ebiten.Wheel()
	in.wheel = -dy * config.WheelStep

	keymap := []struct {
		key ebiten.Key
		to  app.Key
	}{
		{ebiten.KeyEscape, app.KeyEscape},
		{ebiten.KeyArrowLeft, app.KeyLeft},
		{ebiten.KeyArrowRight, app.KeyRight},
		{ebiten.KeyL, app.KeyLanguage},
		{ebiten.KeyM, app.KeyMenu},
		{ebiten.KeySpace, app.KeyMore},
		{ebiten.KeyHome, app.KeyHome},
	}
	for _, k := range keymap {
		if justPressed(k.key) {
			in.keys = append(in.keys, k.to)
		}
	}
	digits := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}
	for i, k := range digits {
		if justPressed(k) {
			in.section = i + 1
		}
	}
	if justPressed(ebiten.KeyArrowDown) {
		in.wheel += config.WheelStep
	}
	if justPressed(ebiten.KeyArrowUp) {
		in.wheel -= config.WheelStep
	}
	if justPressed(ebiten.KeyO) {
		in.open = true
	}
	if justPressed(ebiten.KeyQ) {
		in.quit = true
	}

	return g.step(in, g.clock())
}

// step applies in to the page state at now.
func (g *Game) step(in input, now time.Time) error {
	if in.quit {
		return ebiten.Termination
	}
	if in.open {
		if err := g.openSiteDialog(now); err != nil {
			g.lastErr = err
			g.log.Warn("failed to open site manifest", zap.Error(err))
		}
	}
	g.pollWatcher(now)

	if in.moved {
		g.state.MouseMove(in.cursorX, in.cursorY)
	}
	if in.wheel != 0 {
		g.state.Wheel(in.wheel)
	}
	for _, k := range in.keys {
		g.state.HandleKey(k, now)
	}
	if in.section > 0 {
		g.followSection(in.section-1, now)
	}
	if in.click {
		g.click(in.cursorX, in.cursorY, now)
	}

	g.state.Update(now)
	g.colorPhase += config.ColorShiftSpeed
	return nil
}

// followSection clicks the i-th section link: the drawer's while the menu
// is open, which also closes it, and the navbar's otherwise.
func (g *Game) followSection(i int, now time.Time) {
	class := page.ClassNavLink
	if g.state.Menu.IsOpen() {
		class = page.ClassMenuLink
	}
	links := g.state.Doc.ByClass(class)
	if i >= len(links) {
		return
	}
	g.state.Click(links[i], now)
}

// click handles a left click at viewport position (x, y). While the modal
// is showing, the left and right thirds page through it and the middle
// closes it. Otherwise overlay controls take the click before the page.
func (g *Game) click(x, y float64, now time.Time) {
	if g.state.Modal.IsOpen() {
		switch w := float64(g.width); {
		case x < w/3:
			g.state.HandleKey(app.KeyLeft, now)
		case x > 2*w/3:
			g.state.HandleKey(app.KeyRight, now)
		default:
			g.state.HandleKey(app.KeyEscape, now)
		}
		return
	}
	if e, ok := g.controlAt(int(x), int(y)); ok {
		g.state.Click(e, now)
		return
	}
	g.state.Click(g.state.Hit(x, y+g.state.Doc.ScrollY), now)
}

func (g *Game) pollWatcher(now time.Time) {
	if g.watcher == nil {
		return
	}
	select {
	case m, ok := <-g.watcher.Updates():
		if !ok || m == nil {
			g.watcher = nil
			return
		}
		g.reload(m, now)
		g.log.Info("site manifest reloaded", zap.String("path", g.sitePath))
	default:
	}
}

func (g *Game) reload(m *site.Manifest, now time.Time) {
	g.state = g.state.Reload(m, now)
}

// Layout follows the window size. A size change resizes the particle field
// and the document viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.surface.SetSize(float64(g.width), float64(g.height))
		g.animator.Resize(float64(g.width), float64(g.height))
		g.state.Resize(float64(g.width), float64(g.height))
	}
	return g.width, g.height
}
