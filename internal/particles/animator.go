package particles

import (
	"time"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
)

// Surface is a viewport-sized drawing target. Colours are fixed by the
// surface; callers only choose opacity.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillCircle(x, y, radius, alpha float64)
	StrokeLine(x0, y0, x1, y1, width, alpha float64)
}

// FrameRequester is the host's next-display-refresh primitive.
type FrameRequester interface {
	RequestFrame(fn schedule.FrameFunc)
}

// Animator owns a Field and redraws it once per display refresh, forever.
type Animator struct {
	field   *Field
	surface Surface
	frames  FrameRequester
	conns   []Connection
	ticks   uint64
}

// Create sizes a field to the surface and schedules the first tick. A nil
// surface yields an inert animator. A typed nil is still called, so its
// methods must accept a nil receiver.
func Create(s Surface, frames FrameRequester, rng Rand) *Animator {
	a := &Animator{surface: s, frames: frames}
	if s == nil {
		return a
	}
	w, h := s.Size()
	a.field = NewField(w, h, rng)
	if frames != nil {
		frames.RequestFrame(a.frame)
	}
	return a
}

func (a *Animator) frame(time.Time) {
	a.Tick()
	a.frames.RequestFrame(a.frame)
}

// Tick clears the surface, advances and draws each particle, then draws the
// proximity lines between the advanced positions.
func (a *Animator) Tick() {
	if a.field == nil {
		return
	}
	a.surface.Clear()

	f := a.field
	for i := range f.particles {
		f.StepParticle(i)
		p := &f.particles[i]
		a.surface.FillCircle(p.X, p.Y, p.Radius, p.Opacity)
	}

	a.conns = f.AppendConnections(a.conns[:0])
	for _, c := range a.conns {
		p1, p2 := &f.particles[c.A], &f.particles[c.B]
		a.surface.StrokeLine(p1.X, p1.Y, p2.X, p2.Y, config.ConnectLineWidth, c.Alpha)
	}
	a.ticks++
}

// Resize is the viewport resize observer.
func (a *Animator) Resize(w, h float64) {
	if a.field == nil {
		return
	}
	a.field.Resize(w, h)
}

// Field exposes the animated field; nil for an inert animator.
func (a *Animator) Field() *Field { return a.field }

func (a *Animator) Ticks() uint64 { return a.ticks }
