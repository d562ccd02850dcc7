package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wavetap/internal/config"
	"github.com/vovakirdan/wavetap/internal/core"
	"github.com/vovakirdan/wavetap/internal/game"
	"github.com/vovakirdan/wavetap/internal/platform/tui"
	"github.com/vovakirdan/wavetap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play wavetap in the local terminal",
	Long: `Start a run in the current terminal.

Controls:
  Mouse click  - Tap a cell
  WASD/Arrows  - Move the cursor
  Space/Enter  - Tap the cell under the cursor
  P/Esc        - Pause
  R            - Restart
  Tab          - Scoreboard
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, slower wave, longer target windows
  normal - Default rules
  hard   - 2 lives, faster wave, shorter target windows

Examples:
  wavetap play
  wavetap play --difficulty hard
  wavetap play --config ./my-wavetap.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game tunables
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     30,
		Seed:    flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	eng := game.New(gameCfg, cfg.Seed)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(eng, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
