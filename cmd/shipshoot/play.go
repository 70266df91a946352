package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shipshoot/internal/audio/speaker"
	"github.com/vovakirdan/shipshoot/internal/config"
	"github.com/vovakirdan/shipshoot/internal/core"
	"github.com/vovakirdan/shipshoot/internal/games/shipshoot"
	"github.com/vovakirdan/shipshoot/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start ShipShoot in this terminal.

Controls:
  A-Z, Backspace  - Type your name on the title screen
  Enter           - Start
  Arrows/mouse    - Move
  Space           - Fire (at most three shots in the air)
  P               - Pause
  Esc/Ctrl+C      - Quit
  Ctrl+S          - Save a screenshot

Difficulty options:
  easy   - Five lives, slower enemy fire, wave speeds up with your score
  normal - Starts at 30% difficulty, progresses to max
  hard   - Two lives, faster fire and bosses, starts at 70% difficulty
  fixed  - No progression, the wave keeps its configured speed

Examples:
  shipshoot play
  shipshoot play --difficulty hard
  shipshoot play --config ./my-shipshoot.yaml --mute
  shipshoot play --store sqlite --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// loadGameConfig reads --config and applies --difficulty.
func loadGameConfig() (config.ShipShootConfig, error) {
	cfg, err := config.LoadShipShoot(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParseDifficultyPreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyShipShootPreset(&cfg, preset)
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The game still works without persistence
	store, storeCloser, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high scores: %v\n", err)
		logger.Warn("high scores disabled", "store", flagStore, "error", err)
		store, storeCloser = nil, nopCloser{}
	}

	sink, err := speaker.Open(flagMute, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}

	game := shipshoot.New(gameCfg, store)
	runErr := tui.Run(game, cfg, tui.Options{
		World:  core.Vec2{X: gameCfg.World.Width, Y: gameCfg.World.Height},
		Sink:   sink,
		Muted:  flagMute || err != nil,
		Logger: logger,
	})

	// Close before a potential exit
	sink.Close()
	if closeErr := storeCloser.Close(); closeErr != nil {
		logger.Error("closing high scores", "error", closeErr)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		logCloser.Close()
		os.Exit(1)
	}
}
