// Package tui provides the Bubble Tea front end: the game model, key
// bindings, rendering, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// LoopMsg is a fire of one of the game's loops.
type LoopMsg struct {
	Loop snake.Loop
	Gen  uint64
}

// FrameMsg advances the particle animation by one frame.
type FrameMsg time.Time

// frameCmd returns a command that sends a frame message at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// teaScheduler implements snake.Scheduler on top of tea.Tick. Bubble Tea
// cannot cancel a tick, so every arming gets a generation number and fires
// from older generations are dropped. Start queues a command that the model
// hands back to the runtime through drain.
type teaScheduler struct {
	gens    map[snake.Loop]uint64
	every   map[snake.Loop]time.Duration
	pending []tea.Cmd
}

var _ snake.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		gens:  make(map[snake.Loop]uint64),
		every: make(map[snake.Loop]time.Duration),
	}
}

func (s *teaScheduler) Start(loop snake.Loop, every time.Duration) {
	s.gens[loop]++
	s.every[loop] = every
	s.queue(LoopMsg{Loop: loop, Gen: s.gens[loop]})
}

func (s *teaScheduler) Stop(loop snake.Loop) {
	s.gens[loop]++
	delete(s.every, loop)
}

func (s *teaScheduler) queue(msg LoopMsg) {
	s.pending = append(s.pending, tea.Tick(s.every[msg.Loop], func(time.Time) tea.Msg {
		return msg
	}))
}

// current reports whether msg belongs to the live arming of its loop.
func (s *teaScheduler) current(msg LoopMsg) bool {
	_, armed := s.every[msg.Loop]
	return armed && s.gens[msg.Loop] == msg.Gen
}

// rearm queues the next fire unless the handler restarted or stopped the
// loop.
func (s *teaScheduler) rearm(msg LoopMsg) {
	if s.current(msg) {
		s.queue(msg)
	}
}

// drain returns the queued commands as one batch.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
