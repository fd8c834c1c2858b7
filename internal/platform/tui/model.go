package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/effects"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/i18n"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Sound is a cue player that can be muted at runtime.
type Sound interface {
	snake.CueSink
	Enabled() bool
	Toggle() bool
}

// Options configures a Model.
type Options struct {
	Settings snake.Settings
	Runtime  core.RuntimeConfig

	// Store persists the best score, the language and the run history.
	// Nil plays without persistence.
	Store *storage.Store

	// Sound plays cues. Nil uses a muted audio.Silent.
	Sound Sound

	// Lang overrides the stored language preference for this session when set.
	// Toggling the language in the UI still persists.
	Lang i18n.Lang

	// ScreenshotDir receives Ctrl+S dumps. Empty means ~/.snake/screenshots.
	ScreenshotDir string

	Logger *log.Logger
}

// Model is the Bubble Tea model for a Snake session.
type Model struct {
	game   *snake.Game
	sched  *teaScheduler
	fx     *effects.System
	sound  Sound
	tr     *i18n.Translator
	store  *storage.Store
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	scoreboard ScoreboardModel
	showScores bool

	frameRate     int
	screenshotDir string
	width         int
	height        int
	quitting      bool
}

// NewModel creates a model with the game in its menu.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = &audio.Silent{}
	}

	sched := newTeaScheduler()
	fx := effects.New(cfg.Seed, time.Second/time.Duration(cfg.FrameRate))

	gameOpts := []snake.Option{
		snake.WithSeed(cfg.Seed),
		snake.WithScheduler(sched),
		snake.WithCues(sound),
		snake.WithEffects(fx),
		snake.WithLogger(logger),
	}
	// A nil *storage.Store must not end up inside the interfaces.
	var prefs i18n.Prefs
	if opts.Store != nil {
		gameOpts = append(gameOpts, snake.WithScoreStore(opts.Store))
		prefs = opts.Store
	}

	game, err := snake.New(opts.Settings, gameOpts...)
	if err != nil {
		return Model{}, err
	}

	tr := i18n.New(prefs, logger)
	if opts.Lang != "" {
		tr.Use(opts.Lang)
	}
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	m := Model{
		game:          game,
		sched:         sched,
		fx:            fx,
		sound:         sound,
		tr:            tr,
		store:         opts.Store,
		screen:        core.NewScreen(1, 1),
		keys:          NewKeyMap(tr),
		help:          h,
		logger:        logger,
		frameRate:     cfg.FrameRate,
		screenshotDir: opts.ScreenshotDir,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m, nil
}

// Init starts the animation frame loop. The game loops start with a run.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.showScores {
			m.scoreboard, cmd = m.scoreboard.Update(msg)
		}

	case LoopMsg:
		m.handleLoop(msg)

	case FrameMsg:
		m.fx.Update()
		cmd = frameCmd(m.frameRate)

	case tea.BlurMsg:
		m.game.VisibilityLost()
	}

	// Scheduler starts queued during this update become tick commands here.
	return m, tea.Batch(cmd, m.sched.drain())
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		switch {
		case m.scoreboard.IsQuitting():
			m.quitting = true
			return tea.Quit
		case m.scoreboard.IsGoingBack():
			m.showScores = false
		}
		return cmd
	}

	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return nil
	}

	if d, ok := m.keys.Tier(msg); ok {
		if err := m.game.SetDifficulty(d); err != nil {
			m.logger.Debug("difficulty not changed", "error", err)
		}
		return nil
	}

	switch action := m.keys.Action(msg, m.game.State()); action {
	case core.ActionQuit:
		m.quitting = true
		return tea.Quit
	case core.ActionLanguage:
		m.tr.Toggle()
		m.keys = NewKeyMap(m.tr)
	case core.ActionSound:
		m.sound.Toggle()
	case core.ActionScoreboard:
		m.game.VisibilityLost()
		m.openScoreboard()
	default:
		m.game.Apply(action)
	}
	return nil
}

// handleLoop answers a scheduler fire. Fires from cancelled or restarted
// loops are dropped.
func (m *Model) handleLoop(msg LoopMsg) {
	if !m.sched.current(msg) {
		return
	}
	switch msg.Loop {
	case snake.LoopMove:
		m.game.Tick()
	case snake.LoopClock:
		m.game.ClockTick()
	}
	m.sched.rearm(msg)
}

// resize processes window resize events. The last row holds the help line.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.screen.Resize(max(width, 1), max(height-1, 1))
}

func (m *Model) openScoreboard() {
	var source RunSource
	if m.store != nil {
		source = m.store
	}
	m.scoreboard = NewScoreboardModel(source, m.tr, m.game.Settings().Difficulty, m.width, m.height)
	m.showScores = true
}

// draw renders the game and its particles into the screen buffer.
func (m Model) draw() {
	board := snake.Render(m.screen, m.game.Snapshot(), m.tr, m.sound.Enabled())
	if board.W > 0 {
		m.fx.Draw(m.screen, board, snake.CellWidth)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the underlying state machine.
func (m Model) Game() *snake.Game {
	return m.game
}

// Lang returns the current UI language.
func (m Model) Lang() i18n.Lang {
	return m.tr.Lang()
}

// ShowingScoreboard reports whether the run history is open.
func (m Model) ShowingScoreboard() bool {
	return m.showScores
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Focus loss pauses the run
	)

	_, err = p.Run()
	return err
}
