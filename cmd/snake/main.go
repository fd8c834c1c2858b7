// snake is a terminal Snake game with sound cues, particles and a run history.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake demo               - Watch the autopilot play headless
//	snake serve              - Start SSH server for remote play
//	snake scores [tier]      - Show the run history
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search path, then built-in)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/snake.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal take on the classic game: eat food to grow,
avoid the walls and your own tail, fill the board to win.

Available commands:
  play     - Play in this terminal
  demo     - Watch the autopilot play
  serve    - Start SSH server for remote play
  scores   - View the run history
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard --grid 15
  snake demo --render
  snake serve --ssh :2222
  snake scores medium`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback; the returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the game config and applies command-line overrides.
func loadConfig(difficulty string, gridSize int) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if err := config.ApplyOverrides(&cfg, difficulty, gridSize); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// loadSettings is loadConfig reduced to the game's settings.
func loadSettings(difficulty string, gridSize int) (snake.Settings, error) {
	cfg, err := loadConfig(difficulty, gridSize)
	if err != nil {
		return snake.Settings{}, err
	}
	return snake.SettingsFrom(cfg), nil
}

// exitOnErr prints err and exits when it is not nil.
func exitOnErr(context string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
		os.Exit(1)
	}
}
