package snake

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrRunActive is returned when settings are changed while a run is playing
// or paused.
var ErrRunActive = errors.New("snake: settings are locked while a run is active")

// State is the state of the game state machine.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
	StateVictory  State = "victory"
)

// Stats are the counters of the current run plus the persisted best score.
type Stats struct {
	Score     int
	HighScore int
	Level     int
	FoodEaten int
	GameTime  int // Seconds spent in StatePlaying
}

// Game is the Snake state machine. It owns the snake, the food and the
// stats, and reacts to commands and loop fires.
//
// Game is not safe for concurrent use. Every call, including the Tick and
// ClockTick calls that answer Scheduler fires, must come from one goroutine.
type Game struct {
	settings Settings
	rng      *rand.Rand

	state    State
	snake    *Snake
	food     Food
	stats    Stats
	interval time.Duration
	runID    string
	newHigh  bool // Current run beat the stored best score

	sched    Scheduler
	cues     CueSink
	effects  EffectSink
	store    ScoreStore
	logger   *log.Logger
	watchers []func(Snapshot)
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the game's random source. Equal seeds and equal command
// sequences give equal runs.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithScheduler sets the loop driver.
func WithScheduler(s Scheduler) Option {
	return func(g *Game) { g.sched = s }
}

// WithCues sets the sound collaborator.
func WithCues(c CueSink) Option {
	return func(g *Game) { g.cues = c }
}

// WithEffects sets the particle collaborator.
func WithEffects(e EffectSink) Option {
	return func(g *Game) { g.effects = e }
}

// WithScoreStore sets the persistence collaborator.
func WithScoreStore(s ScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game in StateMenu. The best score is read from the store;
// a failing store leaves it at zero.
func New(settings Settings, opts ...Option) (*Game, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}

	g := &Game{
		settings: settings,
		state:    StateMenu,
		sched:    nopScheduler{},
		cues:     nopCues{},
		effects:  nopEffects{},
		store:    nopStore{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if high, err := g.store.LoadHighScore(); err != nil {
		g.logger.Warn("could not load high score", "error", err)
	} else if high > 0 {
		g.stats.HighScore = high
	}

	// Lay out an idle board so the menu has something to draw.
	g.initRun()
	return g, nil
}

// initRun places a fresh snake and food and resets the run counters.
func (g *Game) initRun() {
	g.snake = NewSnake(g.settings.Start, DirRight)
	g.stats.Score = 0
	g.stats.Level = 1
	g.stats.FoodEaten = 0
	g.stats.GameTime = 0
	g.newHigh = false
	g.interval = g.settings.InitialInterval()
	g.food = PlaceFood(g.rng, g.snake, g.settings.GridSize, g.settings.Food)
}

// Watch registers a function called with a fresh snapshot after every
// change. Watchers run synchronously on the caller's goroutine.
func (g *Game) Watch(fn func(Snapshot)) {
	g.watchers = append(g.watchers, fn)
}

func (g *Game) notify() {
	if len(g.watchers) == 0 {
		return
	}
	snap := g.Snapshot()
	for _, fn := range g.watchers {
		fn(snap)
	}
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Stats returns the current counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Settings returns the configuration the next run will use.
func (g *Game) Settings() Settings {
	return g.settings
}

// Interval returns the current movement tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// inRun reports whether a run is in progress (playing or paused).
func (g *Game) inRun() bool {
	return g.state == StatePlaying || g.state == StatePaused
}

// StartGame begins a new run from the menu or an end screen. It is ignored
// while a run is in progress. Returns whether a run was started.
func (g *Game) StartGame() bool {
	if g.inRun() {
		return false
	}

	g.initRun()
	g.runID = uuid.NewString()
	g.state = StatePlaying
	g.sched.Start(LoopMove, g.interval)
	g.sched.Start(LoopClock, ClockInterval)

	g.logger.Debug("run started",
		"run", g.runID,
		"difficulty", g.settings.Difficulty,
		"interval", g.interval,
		"grid", g.settings.GridSize,
	)
	g.notify()
	return true
}

// PauseGame halts both loops. Only valid while playing.
func (g *Game) PauseGame() bool {
	if g.state != StatePlaying {
		return false
	}
	g.state = StatePaused
	g.stopLoops()
	g.cues.Play(CuePause)
	g.notify()
	return true
}

// ResumeGame restarts both loops from now without touching run state.
// Only valid while paused.
func (g *Game) ResumeGame() bool {
	if g.state != StatePaused {
		return false
	}
	g.state = StatePlaying
	g.sched.Start(LoopMove, g.interval)
	g.sched.Start(LoopClock, ClockInterval)
	g.cues.Play(CueResume)
	g.notify()
	return true
}

// TogglePause pauses a playing run or resumes a paused one.
func (g *Game) TogglePause() bool {
	switch g.state {
	case StatePlaying:
		return g.PauseGame()
	case StatePaused:
		return g.ResumeGame()
	default:
		return false
	}
}

// ResetGame returns to the menu from any state. The last run's stats stay
// visible until the next StartGame.
func (g *Game) ResetGame() {
	g.stopLoops()
	g.state = StateMenu
	g.notify()
}

// VisibilityLost reacts to the host losing foreground: a playing run is
// paused as if PauseGame were called.
func (g *Game) VisibilityLost() bool {
	if g.state != StatePlaying {
		return false
	}
	return g.PauseGame()
}

// ChangeDirection forwards a heading request to the snake while playing.
func (g *Game) ChangeDirection(d Direction) bool {
	if g.state != StatePlaying {
		return false
	}
	return g.snake.ChangeDirection(d)
}

// SetDifficulty selects the tier for the next run.
func (g *Game) SetDifficulty(d config.Difficulty) error {
	if g.inRun() {
		return ErrRunActive
	}
	next := g.settings
	next.Difficulty = d
	if err := next.validate(); err != nil {
		return err
	}
	g.settings = next
	g.interval = next.InitialInterval()
	g.notify()
	return nil
}

// SetGridSize changes the board for the next run. The spawn cell moves to
// the center if it no longer fits.
func (g *Game) SetGridSize(size int) error {
	if g.inRun() {
		return ErrRunActive
	}
	next := g.settings
	next.GridSize = size
	if !InBounds(next.Start, size) {
		next.Start = Point{X: size / 2, Y: size / 2}
	}
	if err := next.validate(); err != nil {
		return err
	}
	g.settings = next
	g.initRun()
	g.notify()
	return nil
}

// ClockTick answers a LoopClock fire.
func (g *Game) ClockTick() {
	if g.state != StatePlaying {
		return
	}
	g.stats.GameTime++
	g.notify()
}

// Tick answers a LoopMove fire: one movement step and its consequences.
func (g *Game) Tick() Outcome {
	if g.state != StatePlaying {
		return Outcome{}
	}

	eaten := g.food
	out := g.snake.Step(eaten, g.settings.GridSize)

	switch out.Kind {
	case OutcomeCrashed:
		g.logger.Debug("crashed", "run", g.runID, "cause", out.Cause, "head", g.snake.Head())
		g.finish(StateGameOver)
	case OutcomeAte:
		g.eat(eaten, out)
		g.food = PlaceFood(g.rng, g.snake, g.settings.GridSize, g.settings.Food)
	case OutcomeWon:
		g.eat(eaten, out)
		g.finish(StateVictory)
	}

	g.notify()
	return out
}

// eat applies scoring, speed and level changes for a meal.
func (g *Game) eat(food Food, out Outcome) {
	g.stats.Score += out.Points
	g.stats.FoodEaten++
	g.cues.Play(cueForFood(out.Food))
	g.effects.Emit(Effect{
		Kind:  EffectBurst,
		At:    food.Pos,
		Count: eatParticles,
		Color: FoodColor(out.Food),
	})

	if out.Food == FoodSpeed {
		g.interval = g.settings.faster(g.interval, g.settings.Speed.SpeedFoodStep())
		g.restartMoveLoop()
	}

	if g.stats.FoodEaten%g.settings.FoodPerLevel == 0 {
		g.stats.Level++
		g.interval = g.settings.faster(g.interval, g.settings.Speed.LevelStep())
		g.restartMoveLoop()
		g.cues.Play(CueLevelUp)
		g.effects.Emit(Effect{
			Kind:  EffectRing,
			At:    g.snake.Head(),
			Count: levelUpParticles,
			Color: core.ColorGold,
		})
		g.logger.Debug("level up", "run", g.runID, "level", g.stats.Level, "interval", g.interval)
	}
}

// restartMoveLoop re-arms the movement loop at the current interval. The
// phase of the tick clock restarts from now.
func (g *Game) restartMoveLoop() {
	if g.state == StatePlaying {
		g.sched.Start(LoopMove, g.interval)
	}
}

func (g *Game) stopLoops() {
	g.sched.Stop(LoopMove)
	g.sched.Stop(LoopClock)
}

// finish ends the run in GameOver or Victory.
func (g *Game) finish(end State) {
	g.state = end
	g.stopLoops()

	if end == StateVictory {
		g.cues.Play(CueLevelUp)
	} else {
		g.cues.Play(CueGameOver)
		for i, seg := range g.snake.Body {
			g.effects.Emit(Effect{
				Kind:  EffectBurst,
				At:    seg,
				Count: gameOverParticles,
				Color: core.ColorRed,
				Delay: time.Duration(i) * gameOverStagger,
			})
		}
	}

	if g.stats.Score > g.stats.HighScore {
		g.stats.HighScore = g.stats.Score
		g.newHigh = true
		if err := g.store.SaveHighScore(g.stats.HighScore); err != nil {
			g.logger.Warn("could not save high score", "error", err)
		}
	}

	if g.stats.Score > 0 {
		rec := RunRecord{
			ID:         g.runID,
			Difficulty: g.settings.Difficulty,
			GridSize:   g.settings.GridSize,
			Score:      g.stats.Score,
			Level:      g.stats.Level,
			FoodEaten:  g.stats.FoodEaten,
			Seconds:    g.stats.GameTime,
			Outcome:    end,
			EndedAt:    time.Now(),
		}
		if err := g.store.RecordRun(rec); err != nil {
			g.logger.Warn("could not record run", "error", err)
		}
	}

	g.logger.Info("run finished",
		"run", g.runID,
		"outcome", end,
		"score", g.stats.Score,
		"level", g.stats.Level,
		"seconds", g.stats.GameTime,
	)
}
