package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/i18n"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDifficulty string
	flagGrid       int
	flagMute       bool
	flagVolume     float64
	flagLang       string
	flagFPS        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start the game in this terminal.

Controls:
  Arrows/WASD  - Steer
  Space        - Pause/Resume
  Enter        - Start a run
  Esc/B        - Back to menu
  Left/Right   - Change difficulty (menu)
  1-4          - Pick difficulty (menu)
  L            - Switch language (zh/en)
  M            - Sound on/off
  Tab          - Scoreboard
  Ctrl+S       - Screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 200ms per move
  medium - 150ms per move
  hard   - 100ms per move
  expert - 75ms per move

Examples:
  snake play
  snake play --difficulty expert
  snake play --grid 12 --lang en
  snake play --mute --log-file /tmp/snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard, expert")
	playCmd.Flags().IntVar(&flagGrid, "grid", 0, "Board size in cells (0 = from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Cue volume multiplier")
	playCmd.Flags().StringVar(&flagLang, "lang", "", "Language for this session: zh or en (default: saved preference)")
	playCmd.Flags().IntVar(&flagFPS, "fps", core.DefaultConfig().FrameRate, "Particle animation rate")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Logs would fight the alt screen, so they only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	exitOnErr("setting up logging", err)
	defer closeLog()

	settings, err := loadSettings(flagDifficulty, flagGrid)
	exitOnErr("loading config", err)

	var lang i18n.Lang
	if flagLang != "" {
		lang, err = i18n.Parse(flagLang)
		exitOnErr("parsing --lang", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.FrameRate = flagFPS
	rc.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound tui.Sound
	player := audio.NewPlayer(flagVolume, logger)
	if initErr := player.Init(); initErr != nil {
		logger.Warn("sound disabled", "error", initErr)
		sound = &audio.Silent{}
	} else {
		player.SetEnabled(!flagMute)
		sound = player
	}

	runErr := tui.Run(tui.Options{
		Settings: settings,
		Runtime:  rc,
		Store:    store,
		Sound:    sound,
		Lang:     lang,
		Logger:   logger,
	})

	player.Close()
	if store != nil {
		store.Close()
	}

	exitOnErr("running game", runErr)
}
