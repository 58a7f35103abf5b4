package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bobby-glide/internal/games/bobby"
	"github.com/vovakirdan/bobby-glide/internal/platform/tui"
	"github.com/vovakirdan/bobby-glide/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs and overall stats.

In a terminal this opens an interactive table (tab switches between top
and recent runs). Use --plain for text output.

Examples:
  bobby scores
  bobby scores --plain --limit 5
  bobby scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(bobby.GameID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store, flagScoresLimit)
}

func printScores(store *storage.Store, limit int) error {
	runs, err := store.TopRuns(bobby.GameID, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(bobby.GameID)
	if err != nil {
		return err
	}

	fmt.Println("Top Runs - Bobby Glide")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bobby play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %-6s  %s\n", "Rank", "Player", "Coins", "Reached", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %-6s  %s\n", "----", "------", "-----", "-------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-5d  %-8s  %-6s  %s\n",
			i+1,
			r.Player,
			r.Score,
			reached(r.Stage),
			fmt.Sprintf("%.0fs", r.Duration),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Losses: %d  Best: %d  Average: %.1f\n",
		stats.Runs, stats.Wins, stats.Losses, stats.HighScore, stats.AvgScore)
	return nil
}

// reached names how far a run got.
func reached(stage int) string {
	switch bobby.Stage(stage) {
	case bobby.StageWin:
		return "win"
	case bobby.StageLose:
		return "zapped"
	default:
		return fmt.Sprintf("level %d", stage)
	}
}
