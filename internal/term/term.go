// Package term draws the particle backdrop in a terminal.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/particles"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/render"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
)

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return screen, nil
}

// Runner animates a field on an initialised screen. Frames, resizes and
// keys are all handled on the goroutine calling Run.
type Runner struct {
	screen   tcell.Screen
	surface  *render.TermSurface
	frames   *schedule.FrameQueue
	animator *particles.Animator
	interval time.Duration
	log      *zap.Logger
}

func New(screen tcell.Screen, settings *config.Settings, rng particles.Rand, log *zap.Logger) *Runner {
	theme := settings.Theme()
	bg, ok := colorful.MakeColor(theme.Background)
	if !ok {
		bg = colorful.Color{}
	}
	surface := render.NewTermSurface(screen, config.TerminalCellWidth, config.TerminalCellHeight, bg, theme.Particle)
	frames := &schedule.FrameQueue{}
	return &Runner{
		screen:   screen,
		surface:  surface,
		frames:   frames,
		animator: particles.Create(surface, frames, rng),
		interval: time.Second / time.Duration(settings.FrameRate),
		log:      log,
	}
}

func (r *Runner) Animator() *particles.Animator { return r.animator }

// Run draws a frame every interval until ctx ends or the user presses
// Esc, Ctrl+C or q.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go r.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				r.screen.Sync()
				w, h := r.surface.Size()
				r.animator.Resize(w, h)
				r.log.Debug("terminal resized", zap.Float64("width", w), zap.Float64("height", h))
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return nil
				}
			}
		case now := <-ticker.C:
			r.frames.Run(now)
			r.screen.Show()
		}
	}
}
