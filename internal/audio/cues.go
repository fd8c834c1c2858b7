package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Every tone starts at toneGain and fades to toneGain*toneFloor.
const (
	toneGain  = 0.1
	toneFloor = 0.1
)

// tone is one note of a cue.
type tone struct {
	freq float64
	dur  time.Duration
	wave WaveType
	at   time.Duration // Offset from the start of the cue
}

const ms = time.Millisecond

var recipes = map[snake.Cue][]tone{
	snake.CueEat: {
		{800, 100 * ms, WaveSquare, 0},
		{1000, 100 * ms, WaveSquare, 50 * ms},
	},
	snake.CueBonus: {
		{600, 100 * ms, WaveSine, 0},
		{800, 100 * ms, WaveSine, 50 * ms},
		{1000, 100 * ms, WaveSine, 100 * ms},
		{1200, 100 * ms, WaveSine, 150 * ms},
	},
	snake.CueSpeed: {
		{1500, 50 * ms, WaveSaw, 0},
		{1600, 50 * ms, WaveSaw, 30 * ms},
		{1700, 50 * ms, WaveSaw, 60 * ms},
		{1800, 50 * ms, WaveSaw, 90 * ms},
		{1900, 50 * ms, WaveSaw, 120 * ms},
	},
	snake.CueGameOver: {
		{400, 200 * ms, WaveSaw, 0},
		{300, 200 * ms, WaveSaw, 100 * ms},
		{200, 300 * ms, WaveSaw, 200 * ms},
	},
	snake.CueLevelUp: {
		{523, 200 * ms, WaveSine, 0},
		{659, 200 * ms, WaveSine, 100 * ms},
		{784, 200 * ms, WaveSine, 200 * ms},
		{1047, 200 * ms, WaveSine, 300 * ms},
	},
	snake.CuePause: {
		{440, 100 * ms, WaveTriangle, 0},
	},
	snake.CueResume: {
		{660, 100 * ms, WaveTriangle, 0},
	},
}

// cueLength returns the number of samples a cue lasts.
func cueLength(tones []tone, rate beep.SampleRate) int {
	n := 0
	for _, t := range tones {
		n = max(n, rate.N(t.at)+rate.N(t.dur))
	}
	return n
}

// Render synthesizes a cue at the given volume. It returns nil for cues
// without a recipe.
func Render(c snake.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	tones, ok := recipes[c]
	if !ok {
		return nil
	}

	voices := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := NewOscillator(t.freq, t.dur, t.wave, rate)
		shaped := NewDecay(osc, t.dur, toneFloor, rate)
		voices = append(voices, beep.Seq(beep.Silence(rate.N(t.at)), shaped))
	}

	mixed := beep.Take(cueLength(tones, rate), beep.Mix(voices...))
	return newVolume(mixed, toneGain*volume)
}
