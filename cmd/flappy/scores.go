package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the best score",
	Long: `Display the best recorded runs, or the latest ones with --recent.

Examples:
  flappy scores
  flappy scores --recent --limit 20
  flappy scores -i          # interactive scoreboard
  flappy scores --clear     # forget run history (the best score is kept)`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(flappy.ID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var scores []storage.ScoreEntry
	title := "Top Runs"
	if flagScoresRecent {
		title = "Recent Runs"
		scores, err = store.RecentScores(flappy.ID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flappy.ID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	best, err := flappy.LoadBest(store)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s - %s\n\n", flappy.Title, title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'flappy play' and pass a pipe to record your first run!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-16s  %s\n", "Rank", "Score", "Tier", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-16s  %s\n", "----", "-----", "----", "----", "---")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-6d  %-8s  %-16s  %s\n",
			i+1, e.Score, e.Tier, e.CreatedAt.Format("2006-01-02 15:04"), e.RunID)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", best)
	if total, err := store.CountScores(flappy.ID); err == nil {
		fmt.Fprintf(out, "Runs: %d\n", total)
	}
	return nil
}
