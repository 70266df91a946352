package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shipshoot/internal/platform/tui"
	"github.com/vovakirdan/shipshoot/internal/storage"
)

var (
	flagInteractive  bool
	flagClearHistory bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 high scores.

With --store sqlite every finished game is also kept in a history table;
the interactive view shows it on a second page with totals.

Examples:
  shipshoot scores
  shipshoot scores -i
  shipshoot scores --store sqlite --clear-history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen view")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete the game history (sqlite only), keeping the top 10")
}

func runScores(_ *cobra.Command, _ []string) {
	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high scores: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	db, hasHistory := store.(*storage.Store)

	if flagClearHistory {
		if !hasHistory {
			fmt.Fprintln(os.Stderr, "Error: --clear-history needs --store sqlite")
			closer.Close()
			os.Exit(1)
		}
		if err := db.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			closer.Close()
			os.Exit(1)
		}
		fmt.Println("Game history cleared.")
		return
	}

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		closer.Close()
		os.Exit(1)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		var history tui.History
		if hasHistory {
			history = db
		}
		if err := tui.RunScoreboard(entries, history, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closer.Close()
			os.Exit(1)
		}
		return
	}

	fmt.Println("High Scores - ShipShoot")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shipshoot' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-12s  %s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-12s  %d\n", i+1, e.Name, e.Score)
	}

	if hasHistory {
		stats, err := db.Stats()
		if err == nil && stats.GamesCount > 0 {
			fmt.Println()
			fmt.Printf("Games played: %d  Average: %.0f  Last played: %s\n",
				stats.GamesCount, stats.AvgScore, stats.LastPlayed.Local().Format("2006-01-02 15:04"))
		}
	}
}
