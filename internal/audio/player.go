// Package audio synthesizes the game's sound cues with beep oscillators.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const sampleRate = beep.SampleRate(48000)

// Player plays cues through the system speaker. It implements
// snake.CueSink; Play never blocks on audio output.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	logger      *log.Logger
}

var _ snake.CueSink = (*Player)(nil)

// NewPlayer creates a player. Volume is a linear multiplier on the built-in
// cue gain. The speaker is not opened until Init.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: true,
		logger:  logger,
	}
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue on the mixer.
func (p *Player) Play(c snake.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}
	s := Render(c, p.volume, sampleRate)
	if s == nil {
		p.logger.Debug("no recipe for cue", "cue", c)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetEnabled mutes or unmutes the player.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
}

// Toggle flips the mute state and returns the new one.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Silent is a CueSink with a mute switch and no output, for sessions where
// the server's speaker is not the player's.
type Silent struct {
	enabled bool
}

func (s *Silent) Play(snake.Cue)     {}
func (s *Silent) Enabled() bool      { return s.enabled }
func (s *Silent) SetEnabled(on bool) { s.enabled = on }
func (s *Silent) Toggle() bool       { s.enabled = !s.enabled; return s.enabled }
