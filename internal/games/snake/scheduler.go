package snake

import "time"

// Loop identifies one of the two repeating timers a run uses.
type Loop int

const (
	LoopMove  Loop = iota // Movement tick, interval follows the current speed
	LoopClock             // Wall-clock counter, fires once per second
)

func (l Loop) String() string {
	if l == LoopClock {
		return "clock"
	}
	return "move"
}

// ClockInterval is the period of LoopClock.
const ClockInterval = time.Second

// Scheduler drives the game's loops. Start (re)arms a loop from now,
// discarding any pending fire; Stop cancels it. On every fire the owner
// calls Game.Tick (LoopMove) or Game.ClockTick (LoopClock) from the same
// goroutine that makes every other Game call.
type Scheduler interface {
	Start(loop Loop, every time.Duration)
	Stop(loop Loop)
}

type nopScheduler struct{}

func (nopScheduler) Start(Loop, time.Duration) {}
func (nopScheduler) Stop(Loop)                 {}
