// shipshoot is a fixed-shooter arcade game for the terminal.
//
// Usage:
//
//	shipshoot                - Play (same as shipshoot play)
//	shipshoot play           - Play in this terminal
//	shipshoot scores         - Show the high score table
//	shipshoot serve          - Start SSH server for remote play
//	shipshoot config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for reproducible gameplay
//	--store <text|sqlite>     - Choose the high score backend
//	--scores <path>           - Plain text high score file
//	--db <path>               - SQLite database path
//	--log-file <path>         - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagStore      string
	flagScoresPath string
	flagDBPath     string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shipshoot",
	Short: "ShipShoot - defend the bottom row in your terminal",
	Long: `ShipShoot is a fixed-screen shooter: a wave of enemies marches side to
side and steps down at every wall, a boss crosses the top now and then, and
your shields crumble one block at a time.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the high score table
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  shipshoot
  shipshoot play --difficulty hard
  shipshoot scores -i --store sqlite
  shipshoot serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeText, "High score backend: text or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "~/.shipshoot/highscores.txt", "Path to the plain text high score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shipshoot/scores.db", "Path to the SQLite scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (discarded when empty)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger writes to --log-file, or to fallback when the flag is empty.
// The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shipshoot",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
