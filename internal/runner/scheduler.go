package runner

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// fire is one timer expiry, tagged with the arming it belongs to.
type fire struct {
	loop snake.Loop
	gen  uint64
}

// timerScheduler implements snake.Scheduler with time.AfterFunc. Timers
// only post fires to a channel; Start, Stop, current and rearm are called
// from the actor goroutine alone.
type timerScheduler struct {
	fires chan fire
	stop  chan struct{}
	once  sync.Once

	timers map[snake.Loop]*time.Timer
	every  map[snake.Loop]time.Duration
	gens   map[snake.Loop]uint64
}

var _ snake.Scheduler = (*timerScheduler)(nil)

func newTimerScheduler() *timerScheduler {
	return &timerScheduler{
		fires:  make(chan fire),
		stop:   make(chan struct{}),
		timers: make(map[snake.Loop]*time.Timer),
		every:  make(map[snake.Loop]time.Duration),
		gens:   make(map[snake.Loop]uint64),
	}
}

// Start arms loop to fire every interval from now. Any pending fire of the
// previous arming becomes stale.
func (s *timerScheduler) Start(loop snake.Loop, every time.Duration) {
	s.cancel(loop)
	s.gens[loop]++
	s.every[loop] = every
	s.arm(fire{loop: loop, gen: s.gens[loop]})
}

// Stop cancels loop. A fire already in flight becomes stale.
func (s *timerScheduler) Stop(loop snake.Loop) {
	s.cancel(loop)
	s.gens[loop]++
}

func (s *timerScheduler) cancel(loop snake.Loop) {
	if t, ok := s.timers[loop]; ok {
		t.Stop()
		delete(s.timers, loop)
	}
}

func (s *timerScheduler) arm(f fire) {
	s.timers[f.loop] = time.AfterFunc(s.every[f.loop], func() {
		select {
		case s.fires <- f:
		case <-s.stop:
		}
	})
}

// current reports whether f belongs to the live arming of its loop.
func (s *timerScheduler) current(f fire) bool {
	_, armed := s.timers[f.loop]
	return armed && s.gens[f.loop] == f.gen
}

// rearm schedules the next fire of a repeating loop unless the fire's
// handler restarted or stopped it.
func (s *timerScheduler) rearm(f fire) {
	if s.current(f) {
		s.arm(f)
	}
}

// shutdown stops every timer and releases blocked senders.
func (s *timerScheduler) shutdown() {
	s.once.Do(func() {
		for loop := range s.timers {
			s.cancel(loop)
		}
		close(s.stop)
	})
}
