package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cue names a sound event. Cues are fire-and-forget.
type Cue int

const (
	CueEat Cue = iota
	CueBonus
	CueSpeed
	CueGameOver
	CueLevelUp
	CuePause
	CueResume
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueBonus:
		return "bonus"
	case CueSpeed:
		return "speed"
	case CueGameOver:
		return "game-over"
	case CueLevelUp:
		return "level-up"
	case CuePause:
		return "pause"
	case CueResume:
		return "resume"
	default:
		return "unknown"
	}
}

// CueSink receives sound cues. Play must not block.
type CueSink interface {
	Play(c Cue)
}

// EffectKind selects the particle pattern of an effect request.
type EffectKind int

const (
	EffectBurst EffectKind = iota // Particles fly out of a single cell
	EffectRing                    // Particles start on a ring around a cell
)

// Effect asks the visual collaborator for particles.
type Effect struct {
	Kind  EffectKind
	At    Point
	Count int
	Color core.Color
	Delay time.Duration // Start offset, used to stagger the game-over cascade
}

// EffectSink receives effect requests. Emit must not block.
type EffectSink interface {
	Emit(e Effect)
}

// Particle counts and timings.
const (
	eatParticles      = 12
	levelUpParticles  = 60
	gameOverParticles = 6
	gameOverStagger   = 100 * time.Millisecond
)

// FoodColor returns the display color of a food kind.
func FoodColor(k FoodKind) core.Color {
	switch k {
	case FoodBonus:
		return core.ColorGold
	case FoodSpeed:
		return core.ColorSky
	default:
		return core.ColorRed
	}
}

// cueForFood returns the cue played when a kind is eaten.
func cueForFood(k FoodKind) Cue {
	switch k {
	case FoodBonus:
		return CueBonus
	case FoodSpeed:
		return CueSpeed
	default:
		return CueEat
	}
}

type nopCues struct{}

func (nopCues) Play(Cue) {}

type nopEffects struct{}

func (nopEffects) Emit(Effect) {}
