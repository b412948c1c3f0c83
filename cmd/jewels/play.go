package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/core"
	"github.com/vovakirdan/tui-jewels/internal/games/jewels"
	"github.com/vovakirdan/tui-jewels/internal/platform/tui"
	"github.com/vovakirdan/tui-jewels/internal/registry"
	"github.com/vovakirdan/tui-jewels/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagPace   string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing. Without a variant the classic 8x8 board is used,
or the board named by --preset.

Controls:
  Arrows/WASD/hjkl - Move the cursor
  Space/Enter      - Pick the tile under the cursor
  Mouse click      - Pick a tile
  P                - Pause (Esc/B while paused: leave)
  R                - End the round (new board when nothing scored)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Board presets:
  classic - 8x8, 5 colors
  small   - 6x6, 4 colors
  large   - 10x10, 6 colors

Pace presets:
  relaxed, normal, fast, instant

Examples:
  jewels play
  jewels play jewels_large
  jewels play --preset small --pace fast
  jewels play --config ./my-jewels.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a jewels config YAML (env "+config.EnvConfig+")")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: classic, small, large")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Cascade pace: relaxed, normal, fast, instant")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadJewels(flagConfig)
	if err != nil {
		return err
	}

	gameID := jewels.Classic.ID
	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		config.ApplyJewelsPreset(&cfg, preset)
	}
	if flagPace != "" {
		pace, err := config.ParsePace(flagPace)
		if err != nil {
			return err
		}
		config.ApplyPace(&cfg, pace)
	}
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'jewels list' to see the variants", gameID)
	}
	jewels.SetConfig(cfg)

	logger, closeLog, err := newLogger(io.Discard, "jewels")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("play", "game", gameID, "board", cfg.Board.Size, "colors", cfg.Board.Colors, "seed", flagSeed)
	return tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger), tui.WithPlayer(os.Getenv("USER")))
}

// runtimeConfig builds the platform config from the flags and the current
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
