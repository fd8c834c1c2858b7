// Package runner drives a snake game headlessly: one goroutine owns the
// Game and serializes timer fires, commands and queries.
package runner

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrStopped is returned by calls made after Run has returned.
var ErrStopped = errors.New("runner: stopped")

// Config configures a Runner.
type Config struct {
	Settings  snake.Settings
	Autopilot bool                 // Steer the snake with Steer before every move
	Watch     func(snake.Snapshot) // Called on the runner goroutine after every change
	Logger    *log.Logger
	Options   []snake.Option // Extra game options (seed, cues, store, ...)
}

type request struct {
	fn   func(*snake.Game)
	done chan struct{}
}

// Runner owns a Game and the timers that drive it.
type Runner struct {
	game      *snake.Game
	sched     *timerScheduler
	inbox     chan request
	stopped   chan struct{}
	autopilot bool
	logger    *log.Logger
}

// New creates a runner and its game. The game starts in the menu; send
// core.ActionStart to begin.
func New(cfg Config) (*Runner, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := newTimerScheduler()
	opts := append([]snake.Option{snake.WithLogger(logger)}, cfg.Options...)
	opts = append(opts, snake.WithScheduler(sched))

	g, err := snake.New(cfg.Settings, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Watch != nil {
		g.Watch(cfg.Watch)
	}

	return &Runner{
		game:      g,
		sched:     sched,
		inbox:     make(chan request),
		stopped:   make(chan struct{}),
		autopilot: cfg.Autopilot,
		logger:    logger,
	}, nil
}

// Run processes fires and requests until ctx is done. It returns nil on
// cancellation.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.stopped)
	defer r.sched.shutdown()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner stopping", "reason", ctx.Err())
			return nil

		case req := <-r.inbox:
			req.fn(r.game)
			close(req.done)

		case f := <-r.sched.fires:
			if !r.sched.current(f) {
				continue
			}
			r.handleFire(f)
			r.sched.rearm(f)
		}
	}
}

func (r *Runner) handleFire(f fire) {
	switch f.loop {
	case snake.LoopMove:
		if r.autopilot {
			r.game.ChangeDirection(Steer(r.game.Snapshot()))
		}
		r.game.Tick()
	case snake.LoopClock:
		r.game.ClockTick()
	}
}

// Do runs fn on the runner goroutine and waits for it to finish.
func (r *Runner) Do(ctx context.Context, fn func(*snake.Game)) error {
	req := request{fn: fn, done: make(chan struct{})}

	select {
	case r.inbox <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-r.stopped:
		return ErrStopped
	}

	select {
	case <-req.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Send applies an action to the game.
func (r *Runner) Send(ctx context.Context, a core.Action) error {
	return r.Do(ctx, func(g *snake.Game) { g.Apply(a) })
}

// Snapshot returns the current game snapshot.
func (r *Runner) Snapshot(ctx context.Context) (snake.Snapshot, error) {
	var snap snake.Snapshot
	err := r.Do(ctx, func(g *snake.Game) { snap = g.Snapshot() })
	return snap, err
}
