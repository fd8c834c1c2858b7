// Package effects implements the particle system behind eat bursts, level-up
// rings and the game-over cascade.
package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Particle tuning. Positions and speeds are in board cells.
const (
	particleLife = 60   // Frames
	damping      = 0.98 // Velocity multiplier per frame
	maxSpeed     = 0.1  // Initial speed bound per axis, cells per frame
	ringRadius   = 2.5  // Cells
	ringPoints   = 20
	maxParticles = 2000
)

// DefaultFrame is the frame period the particle constants are tuned for.
const DefaultFrame = time.Second / 60

// Particle is one moving dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Size   float64
	Color  core.Color
}

// Alpha returns the remaining life as a fraction in (0, 1].
func (p Particle) Alpha() float64 {
	return float64(p.Life) / particleLife
}

type pending struct {
	effect snake.Effect
	frames int // Frames left before the effect spawns
}

// System owns live particles and delayed effect requests. It implements
// snake.EffectSink. It is not safe for concurrent use; Emit, Update and Draw
// are called from the goroutine that drives the game.
type System struct {
	rng       *rand.Rand
	frame     time.Duration
	particles []Particle
	queue     []pending
}

var _ snake.EffectSink = (*System)(nil)

// New creates a particle system advancing one frame per Update call. A zero
// frame uses DefaultFrame.
func New(seed int64, frame time.Duration) *System {
	if frame <= 0 {
		frame = DefaultFrame
	}
	return &System{
		rng:   rand.New(rand.NewSource(seed)),
		frame: frame,
	}
}

// Emit schedules an effect. Delayed effects spawn once the delay has passed
// in frames.
func (s *System) Emit(e snake.Effect) {
	if e.Delay > 0 {
		frames := int(math.Ceil(float64(e.Delay) / float64(s.frame)))
		s.queue = append(s.queue, pending{effect: e, frames: frames})
		return
	}
	s.spawn(e)
}

func (s *System) spawn(e snake.Effect) {
	cx := float64(e.At.X) + 0.5
	cy := float64(e.At.Y) + 0.5

	switch e.Kind {
	case snake.EffectRing:
		perPoint := max(1, e.Count/ringPoints)
		for i := 0; i < ringPoints; i++ {
			angle := float64(i) / ringPoints * 2 * math.Pi
			x := cx + math.Cos(angle)*ringRadius
			y := cy + math.Sin(angle)*ringRadius
			s.add(x, y, perPoint, e.Color)
		}
	default:
		s.add(cx, cy, e.Count, e.Color)
	}
}

func (s *System) add(x, y float64, count int, c core.Color) {
	for i := 0; i < count; i++ {
		if len(s.particles) >= maxParticles {
			return
		}
		s.particles = append(s.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (s.rng.Float64() - 0.5) * 2 * maxSpeed,
			VY:    (s.rng.Float64() - 0.5) * 2 * maxSpeed,
			Life:  particleLife,
			Size:  s.rng.Float64()*4 + 2,
			Color: c,
		})
	}
}

// Update advances one frame: queued effects count down, particles move,
// slow down and age, and dead ones are dropped.
func (s *System) Update() {
	n := 0
	for _, p := range s.queue {
		p.frames--
		if p.frames <= 0 {
			s.spawn(p.effect)
			continue
		}
		s.queue[n] = p
		n++
	}
	s.queue = s.queue[:n]

	n = 0
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= damping
		p.VY *= damping
		p.Life--
		if p.Life > 0 {
			s.particles[n] = p
			n++
		}
	}
	s.particles = s.particles[:n]
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Pending returns the number of effects waiting for their delay.
func (s *System) Pending() int {
	return len(s.queue)
}

// Active reports whether anything is left to animate.
func (s *System) Active() bool {
	return len(s.particles) > 0 || len(s.queue) > 0
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Clear drops every particle and queued effect.
func (s *System) Clear() {
	s.particles = s.particles[:0]
	s.queue = s.queue[:0]
}
