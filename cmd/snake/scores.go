package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the run history",
	Long: `Display the best recorded runs, for one difficulty or for all.

Examples:
  snake scores
  snake scores hard --limit 20
  snake scores --stats
  snake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show totals per difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(_ *cobra.Command, args []string) {
	var difficulty config.Difficulty
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		exitOnErr("parsing difficulty", err)
		difficulty = d
	}

	store, err := storage.Open(flagDBPath)
	exitOnErr("opening database", err)
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			store.Close()
			exitOnErr("clearing runs", err)
		}
		fmt.Println("Run history cleared.")
	case flagScoresStats:
		printStats(store)
	default:
		printRuns(store, difficulty)
	}
}

func printRuns(store *storage.Store, difficulty config.Difficulty) {
	runs, err := store.TopRuns(difficulty, flagScoresLimit)
	if err != nil {
		store.Close()
		exitOnErr("retrieving runs", err)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = string(difficulty)
	}
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-6s  %-9s  %-8s  %s\n",
		"Rank", "Score", "Level", "Food", "Time", "Outcome", "Tier", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-6s  %-9s  %-8s  %s\n",
		"----", "-----", "-----", "----", "----", "-------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-6d  %-5d  %-6s  %-9s  %-8s  %s\n",
			i+1, r.Score, r.Level, r.FoodEaten, snake.FormatClock(r.Seconds),
			r.Outcome, r.Difficulty, r.EndedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.LoadHighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		store.Close()
		exitOnErr("retrieving stats", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-5s  %-5s  %-6s  %-8s  %-9s  %s\n",
		"Tier", "Runs", "Wins", "Best", "Average", "Played", "Last")
	for _, d := range config.Difficulties() {
		st, ok := stats[d]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-5d  %-6d  %-8.1f  %-9s  %s\n",
			d, st.Runs, st.Victories, st.BestScore, st.AvgScore,
			snake.FormatClock(st.TotalSeconds), st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println()
}
