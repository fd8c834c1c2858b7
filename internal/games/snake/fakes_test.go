package snake

import (
	"errors"
	"testing"
	"time"
)

// fakeScheduler records loop state instead of firing timers.
type fakeScheduler struct {
	running map[Loop]time.Duration
	starts  []loopStart
	stopped int
}

type loopStart struct {
	loop  Loop
	every time.Duration
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{running: make(map[Loop]time.Duration)}
}

func (s *fakeScheduler) Start(loop Loop, every time.Duration) {
	s.running[loop] = every
	s.starts = append(s.starts, loopStart{loop, every})
}

func (s *fakeScheduler) Stop(loop Loop) {
	delete(s.running, loop)
	s.stopped++
}

func (s *fakeScheduler) isRunning(loop Loop) bool {
	_, ok := s.running[loop]
	return ok
}

type recordingCues struct {
	played []Cue
}

func (r *recordingCues) Play(c Cue) { r.played = append(r.played, c) }

func (r *recordingCues) last() Cue {
	if len(r.played) == 0 {
		return Cue(-1)
	}
	return r.played[len(r.played)-1]
}

func (r *recordingCues) count(c Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

type recordingEffects struct {
	emitted []Effect
}

func (r *recordingEffects) Emit(e Effect) { r.emitted = append(r.emitted, e) }

type memStore struct {
	high     int
	saves    []int
	runs     []RunRecord
	failLoad bool
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.failLoad {
		return 0, errors.New("disk on fire")
	}
	return m.high, nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.high = score
	m.saves = append(m.saves, score)
	return nil
}

func (m *memStore) RecordRun(rec RunRecord) error {
	m.runs = append(m.runs, rec)
	return nil
}

// testRig bundles a game with its recording collaborators.
type testRig struct {
	game    *Game
	sched   *fakeScheduler
	cues    *recordingCues
	effects *recordingEffects
	store   *memStore
}

func newRig(t *testing.T, settings Settings, store *memStore) *testRig {
	t.Helper()
	if store == nil {
		store = &memStore{}
	}
	r := &testRig{
		sched:   newFakeScheduler(),
		cues:    &recordingCues{},
		effects: &recordingEffects{},
		store:   store,
	}
	g, err := New(settings,
		WithSeed(42),
		WithScheduler(r.sched),
		WithCues(r.cues),
		WithEffects(r.effects),
		WithScoreStore(r.store),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r.game = g
	return r
}

// startedRig returns a rig with a run in progress.
func startedRig(t *testing.T) *testRig {
	t.Helper()
	r := newRig(t, DefaultSettings(), nil)
	if !r.game.StartGame() {
		t.Fatal("StartGame() from menu should succeed")
	}
	return r
}

// stubRand returns scripted values.
type stubRand struct {
	ints   []int
	floats []float64
}

func (s *stubRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *stubRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// occupiedSet is an Occupancy over a fixed set of cells.
type occupiedSet map[Point]bool

func (o occupiedSet) Occupies(p Point) bool { return o[p] }

// serpentine returns all cells of a size×size grid as one boustrophedon path.
func serpentine(size int) []Point {
	path := make([]Point, 0, size*size)
	for y := 0; y < size; y++ {
		for i := 0; i < size; i++ {
			x := i
			if y%2 == 1 {
				x = size - 1 - i
			}
			path = append(path, Point{X: x, Y: y})
		}
	}
	return path
}
