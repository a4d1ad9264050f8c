package particles

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
)

// seqRand replays a fixed sequence, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// spreadField places every particle on a coarse grid so that no pair is
// within the connect distance.
func spreadField() *Field {
	f := &Field{Width: 3000, Height: 3000}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       float64(100 + 200*(i%10)),
			Y:       float64(100 + 300*(i/10)),
			Radius:  1,
			Opacity: 0.5,
		}
	}
	return f
}

func TestNewFieldAttributeRanges(t *testing.T) {
	f := NewField(1280, 800, seeded(1))
	require.Equal(t, config.ParticleCount, f.Len())

	for i, p := range f.Particles() {
		assert.GreaterOrEqual(t, p.X, 0.0, "particle %d", i)
		assert.Less(t, p.X, 1280.0, "particle %d", i)
		assert.GreaterOrEqual(t, p.Y, 0.0, "particle %d", i)
		assert.Less(t, p.Y, 800.0, "particle %d", i)
		assert.InDelta(t, 0, p.VX, 0.2, "particle %d", i)
		assert.InDelta(t, 0, p.VY, 0.2, "particle %d", i)
		assert.GreaterOrEqual(t, p.Radius, 1.0)
		assert.LessOrEqual(t, p.Radius, 3.5)
		assert.GreaterOrEqual(t, p.Opacity, 0.3)
		assert.LessOrEqual(t, p.Opacity, 0.9)
	}
}

func TestStepInvariants(t *testing.T) {
	f := NewField(640, 480, seeded(7))
	before := f.Particles()

	for tick := 0; tick < 5000; tick++ {
		f.Step()
		require.Equal(t, config.ParticleCount, f.Len())
		for i := 0; i < f.Len(); i++ {
			p := f.Particle(i)
			// A left/top-edge crossing lands exactly on the far edge for one tick.
			require.True(t, p.X >= 0 && p.X <= f.Width, "tick %d particle %d x=%f", tick, i, p.X)
			require.True(t, p.Y >= 0 && p.Y <= f.Height, "tick %d particle %d y=%f", tick, i, p.Y)
			if p.X == f.Width {
				require.Negative(t, p.VX)
			}
			if p.Y == f.Height {
				require.Negative(t, p.VY)
			}
		}
	}

	after := f.Particles()
	for i := range before {
		assert.Equal(t, before[i].VX, after[i].VX)
		assert.Equal(t, before[i].VY, after[i].VY)
		assert.Equal(t, before[i].Radius, after[i].Radius)
		assert.Equal(t, before[i].Opacity, after[i].Opacity)
	}
}

func TestWrapBoundary(t *testing.T) {
	f := spreadField()
	f.Width, f.Height = 800, 600

	f.particles[0].X, f.particles[0].VX = 0.19, -0.2
	f.particles[1].X, f.particles[1].VX = 799.81, 0.2
	f.particles[2].Y, f.particles[2].VY = 0.05, -0.2
	f.particles[3].Y, f.particles[3].VY = 599.875, 0.125

	f.StepParticle(0)
	f.StepParticle(1)
	f.StepParticle(2)
	f.StepParticle(3)

	assert.Equal(t, 800.0, f.particles[0].X, "x=-0.01 wraps to width, not 0")
	assert.Equal(t, 0.0, f.particles[1].X, "x=width+0.01 wraps to 0")
	assert.Equal(t, 600.0, f.particles[2].Y)
	assert.Equal(t, 0.0, f.particles[3].Y, "y meeting the height wraps to 0")
}

func TestWrapFunction(t *testing.T) {
	tests := []struct {
		in, limit, want float64
	}{
		{-0.01, 100, 100},
		{0, 100, 0},
		{99.99, 100, 99.99},
		{100, 100, 0},
		{250, 100, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wrap(tt.in, tt.limit), "wrap(%v, %v)", tt.in, tt.limit)
	}
}

func TestConnectionThreshold(t *testing.T) {
	f := spreadField()
	require.Empty(t, f.Connections())

	f.particles[0].X, f.particles[0].Y = 50, 2900
	f.particles[1].X, f.particles[1].Y = 170, 2900
	assert.Empty(t, f.Connections(), "distance exactly 120 must not connect")

	f.particles[1].X = 50 + 119.999
	conns := f.Connections()
	require.Len(t, conns, 1)
	assert.Equal(t, 0, conns[0].A)
	assert.Equal(t, 1, conns[0].B)
	assert.InDelta(t, 119.999, conns[0].Distance, 1e-9)
	assert.InDelta(t, 0.15*(1-119.999/120), conns[0].Alpha, 1e-12)
}

func TestLineAlphaFalloff(t *testing.T) {
	assert.InDelta(t, 0.15, LineAlpha(0), 1e-12)
	assert.InDelta(t, 0.075, LineAlpha(60), 1e-12)
	assert.InDelta(t, 0, LineAlpha(120), 1e-12)
}

func TestConnectionsEachPairOnce(t *testing.T) {
	f := &Field{Width: 100, Height: 100}
	for i := range f.particles {
		f.particles[i].X, f.particles[i].Y = 50, 50
	}
	conns := f.Connections()
	n := config.ParticleCount
	require.Len(t, conns, n*(n-1)/2)

	seen := make(map[[2]int]bool, len(conns))
	for _, c := range conns {
		require.Less(t, c.A, c.B)
		key := [2]int{c.A, c.B}
		require.False(t, seen[key], "pair %v repeated", key)
		seen[key] = true
		assert.InDelta(t, 0.15, c.Alpha, 1e-12)
	}
}

func TestResizeKeepsPositions(t *testing.T) {
	f := NewField(1024, 768, seeded(3))
	before := f.Particles()

	f.Resize(f.Width, f.Height)
	assert.Equal(t, before, f.Particles())

	f.Resize(200, 100)
	assert.Equal(t, before, f.Particles(), "resize never rescales positions")
	assert.Equal(t, 200.0, f.Width)
	assert.Equal(t, 100.0, f.Height)
}

func TestShrunkFieldWrapsOnNextStep(t *testing.T) {
	f := spreadField()
	f.particles[0].X, f.particles[0].VX = 1500, 0.1
	f.Resize(800, 3000)
	f.StepParticle(0)
	assert.Equal(t, 0.0, f.particles[0].X)
}

func TestSeededFieldOneTick(t *testing.T) {
	// Even particles draw the first six values, odd particles the next six.
	rng := &seqRand{vals: []float64{
		0.5, 0.25, 0.75, 0.25, 0.5, 0.5,
		0.0, 0.999, 0.0, 0.5, 0.0, 0.0,
	}}
	f := NewField(800, 600, rng)

	even, odd := f.Particle(0), f.Particle(1)
	assert.InDelta(t, 400, even.X, 1e-9)
	assert.InDelta(t, 150, even.Y, 1e-9)
	assert.InDelta(t, 0.1, even.VX, 1e-9)
	assert.InDelta(t, -0.1, even.VY, 1e-9)
	assert.InDelta(t, 2.25, even.Radius, 1e-9)
	assert.InDelta(t, 0.6, even.Opacity, 1e-9)

	assert.Equal(t, 0.0, odd.X)
	assert.InDelta(t, 599.4, odd.Y, 1e-9)
	assert.InDelta(t, -0.2, odd.VX, 1e-9)
	assert.InDelta(t, 0, odd.VY, 1e-9)
	assert.InDelta(t, 1.0, odd.Radius, 1e-9)
	assert.InDelta(t, 0.3, odd.Opacity, 1e-9)

	f.Step()

	for i := 0; i < f.Len(); i++ {
		p := f.Particle(i)
		if i%2 == 0 {
			assert.InDelta(t, 400.1, p.X, 1e-9, "particle %d", i)
			assert.InDelta(t, 149.9, p.Y, 1e-9, "particle %d", i)
		} else {
			assert.Equal(t, 800.0, p.X, "particle %d wraps off the left edge", i)
			assert.InDelta(t, 599.4, p.Y, 1e-9, "particle %d", i)
		}
	}
}
