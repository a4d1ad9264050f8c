package particles

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/schedule"
)

type circle struct{ X, Y, R, A float64 }

type line struct{ X0, Y0, X1, Y1, W, A float64 }

type recordingSurface struct {
	w, h    float64
	ops     []string
	circles []circle
	lines   []line
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, "clear")
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *recordingSurface) FillCircle(x, y, r, a float64) {
	s.ops = append(s.ops, "circle")
	s.circles = append(s.circles, circle{x, y, r, a})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, w, a float64) {
	s.ops = append(s.ops, "line")
	s.lines = append(s.lines, line{x0, y0, x1, y1, w, a})
}

func TestAnimatorTickDrawOrder(t *testing.T) {
	surface := &recordingSurface{w: 800, h: 600}
	a := Create(surface, nil, seeded(11))
	require.NotNil(t, a.Field())

	a.Tick()

	require.NotEmpty(t, surface.ops)
	assert.Equal(t, "clear", surface.ops[0])
	for i := 1; i <= config.ParticleCount; i++ {
		assert.Equal(t, "circle", surface.ops[i], "op %d", i)
	}
	for _, op := range surface.ops[config.ParticleCount+1:] {
		assert.Equal(t, "line", op)
	}

	// Circles are drawn at the advanced positions with the fixed attributes.
	want := make([]circle, 0, config.ParticleCount)
	for _, p := range a.Field().Particles() {
		want = append(want, circle{p.X, p.Y, p.Radius, p.Opacity})
	}
	if diff := cmp.Diff(want, surface.circles); diff != "" {
		t.Errorf("circles mismatch (-want +got):\n%s", diff)
	}

	conns := a.Field().Connections()
	require.Len(t, surface.lines, len(conns))
	for i, c := range conns {
		assert.InDelta(t, c.Alpha, surface.lines[i].A, 1e-12)
		assert.Equal(t, config.ConnectLineWidth, surface.lines[i].W)
	}
}

func TestAnimatorSchedulesOneTickPerFrame(t *testing.T) {
	surface := &recordingSurface{w: 320, h: 240}
	var frames schedule.FrameQueue

	a := Create(surface, &frames, seeded(5))
	assert.Equal(t, 1, frames.Len(), "create schedules the first tick")
	assert.Zero(t, a.Ticks())

	now := time.Unix(0, 0)
	for i := 1; i <= 10; i++ {
		frames.Run(now)
		now = now.Add(16 * time.Millisecond)
		assert.Equal(t, uint64(i), a.Ticks())
		assert.Equal(t, 1, frames.Len())
	}
}

func TestAnimatorResizeObserver(t *testing.T) {
	surface := &recordingSurface{w: 320, h: 240}
	a := Create(surface, nil, seeded(5))
	before := a.Field().Particles()

	a.Resize(1920, 1080)
	assert.Equal(t, 1920.0, a.Field().Width)
	assert.Equal(t, 1080.0, a.Field().Height)
	assert.Equal(t, before, a.Field().Particles())
}

func TestAnimatorWithoutSurfaceIsInert(t *testing.T) {
	var frames schedule.FrameQueue
	a := Create(nil, &frames, seeded(1))

	assert.Nil(t, a.Field())
	assert.Zero(t, frames.Len())
	assert.NotPanics(t, func() {
		a.Tick()
		a.Resize(100, 100)
	})
	assert.Zero(t, a.Ticks())
}
