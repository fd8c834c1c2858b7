package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/i18n"
	"github.com/vovakirdan/tui-snake/internal/runner"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDemoRuns    int
	flagDemoRender  bool
	flagDemoRecord  bool
	flagDemoTimeout time.Duration
	flagDemoLang    string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot play",
	Long: `Run the game headless with a simple autopilot steering the snake.
The game runs on real timers at the configured speed. Each finished run is
logged; with --render every move is drawn to stdout.

Runs are not recorded unless --record is given.

Examples:
  snake demo
  snake demo --render --grid 10
  snake demo --runs 5 --difficulty expert --seed 42
  snake demo --record --timeout 2m`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoRuns, "runs", 1, "Number of runs to play")
	demoCmd.Flags().BoolVar(&flagDemoRender, "render", false, "Draw the board after every change")
	demoCmd.Flags().BoolVar(&flagDemoRecord, "record", false, "Save scores and runs to the database")
	demoCmd.Flags().DurationVar(&flagDemoTimeout, "timeout", 0, "Stop after this long (0 = no limit)")
	demoCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard, expert")
	demoCmd.Flags().IntVar(&flagGrid, "grid", 0, "Board size in cells (0 = from config)")
	demoCmd.Flags().StringVar(&flagDemoLang, "lang", "en", "Language of the rendered board: zh or en")
}

func runDemo(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	exitOnErr("setting up logging", err)
	defer closeLog()

	settings, err := loadSettings(flagDifficulty, flagGrid)
	exitOnErr("loading config", err)

	lang, err := i18n.Parse(flagDemoLang)
	exitOnErr("parsing --lang", err)
	tx := i18n.New(nil, logger)
	tx.Use(lang)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if flagDemoTimeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, flagDemoTimeout)
		defer cancelTimeout()
	}

	var opts []snake.Option
	if flagSeed != 0 {
		opts = append(opts, snake.WithSeed(flagSeed))
	}
	if flagDemoRecord {
		store, openErr := storage.Open(flagDBPath)
		exitOnErr("opening database", openErr)
		defer store.Close()
		opts = append(opts, snake.WithScoreStore(store))
	}

	w, h := snake.MinScreen(settings.GridSize)
	screen := core.NewScreen(max(w, 80), h)

	// Watchers run on the runner goroutine; the channel hands finished runs
	// back to this one.
	finished := make(chan snake.Snapshot, 1)
	watch := func(snap snake.Snapshot) {
		if flagDemoRender {
			snake.Render(screen, snap, tx, false)
			fmt.Print("\x1b[H\x1b[2J", screen.String(), "\n")
		}
		if snap.State == snake.StateGameOver || snap.State == snake.StateVictory {
			select {
			case finished <- snap:
			default:
			}
		}
	}

	r, err := runner.New(runner.Config{
		Settings:  settings,
		Autopilot: true,
		Watch:     watch,
		Logger:    logger,
		Options:   opts,
	})
	exitOnErr("creating game", err)

	stopped := make(chan error, 1)
	go func() { stopped <- r.Run(ctx) }()

	played := 0
	for played < flagDemoRuns {
		if err := r.Send(ctx, core.ActionStart); err != nil {
			break
		}
		select {
		case snap := <-finished:
			played++
			logger.Info("demo run finished",
				"run", played,
				"outcome", snap.State,
				"score", snap.Stats.Score,
				"level", snap.Stats.Level,
				"length", len(snap.Body),
				"seconds", snap.Stats.GameTime,
			)
		case <-ctx.Done():
			logger.Info("demo stopped", "reason", ctx.Err())
		}
		if ctx.Err() != nil {
			break
		}
	}

	cancel()
	if err := <-stopped; err != nil {
		logger.Error("runner failed", "error", err)
	}
	fmt.Printf("Played %d of %d runs.\n", played, flagDemoRuns)
}
