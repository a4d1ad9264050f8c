// Package particles implements the drifting point field drawn behind the
// portfolio: fixed-size, toroidally wrapped, with proximity lines.
package particles

import (
	"math"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
)

// Rand is the randomness the field draws its particles from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Particle is a point-mass. Velocity, Radius and Opacity are fixed at creation.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// Field is the particle set and the bounds it wraps against.
type Field struct {
	particles     [config.ParticleCount]Particle
	Width, Height float64
}

// Connection is a proximity line between particles A and B (A < B).
type Connection struct {
	A, B     int
	Distance float64
	Alpha    float64
}

// NewField spreads config.ParticleCount particles uniformly over a w×h surface.
// Each particle consumes six values from rng: x, y, vx, vy, radius, opacity.
func NewField(w, h float64, rng Rand) *Field {
	f := &Field{Width: w, Height: h}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			VX:      between(rng, -config.MaxVelocity, config.MaxVelocity),
			VY:      between(rng, -config.MaxVelocity, config.MaxVelocity),
			Radius:  between(rng, config.MinRadius, config.MaxRadius),
			Opacity: between(rng, config.MinOpacity, config.MaxOpacity),
		}
	}
	return f
}

func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func (f *Field) Len() int { return len(f.particles) }

// Particle returns a copy of particle i.
func (f *Field) Particle(i int) Particle { return f.particles[i] }

// Particles returns a copy of the whole set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles[:])
	return out
}

// Resize changes the wrap bounds. Positions are left where they are; anything
// now outside the surface wraps on its next step.
func (f *Field) Resize(w, h float64) {
	f.Width, f.Height = w, h
}

// StepParticle advances particle i by one tick and wraps it.
func (f *Field) StepParticle(i int) {
	p := &f.particles[i]
	p.X = wrap(p.X+p.VX, f.Width)
	p.Y = wrap(p.Y+p.VY, f.Height)
}

// Step advances every particle in order.
func (f *Field) Step() {
	for i := range f.particles {
		f.StepParticle(i)
	}
}

// wrap sends a coordinate that left through the low edge to the high edge
// and one at or past the high edge to zero.
func wrap(v, limit float64) float64 {
	if v < 0 {
		return limit
	}
	if v >= limit {
		return 0
	}
	return v
}

// Connections lists every pair closer than config.ConnectDistance, each
// unordered pair checked exactly once.
func (f *Field) Connections() []Connection {
	return f.AppendConnections(nil)
}

func (f *Field) AppendConnections(dst []Connection) []Connection {
	for i := 0; i < len(f.particles); i++ {
		p1 := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			p2 := &f.particles[j]
			dx, dy := p1.X-p2.X, p1.Y-p2.Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < config.ConnectDistance {
				dst = append(dst, Connection{A: i, B: j, Distance: d, Alpha: LineAlpha(d)})
			}
		}
	}
	return dst
}

// LineAlpha is the stroke opacity for a connection of length d: 0.15 at zero
// falling linearly to 0 at the connect distance.
func LineAlpha(d float64) float64 {
	return config.ConnectMaxAlpha * (1 - d/config.ConnectDistance)
}
