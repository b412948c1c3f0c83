package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/games/jewels"
	"github.com/vovakirdan/tui-jewels/internal/platform/tui"
	"github.com/vovakirdan/tui-jewels/internal/registry"
	"github.com/vovakirdan/tui-jewels/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and pace from a menu",
	Long: `Start in interactive menu mode.

Pick a board variant, then how fast cascades play out. When you leave a
game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Esc/B        - Back
  Q            - Quit

Examples:
  jewels menu
  jewels menu --fps 60
  jewels menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a jewels config YAML (env "+config.EnvConfig+")")
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.LoadJewels(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "jewels")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}
		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		pace, err := tui.RunPaceSelector(cfg)
		if err != nil {
			return err
		}
		if pace == nil {
			continue
		}

		gameCfg := base
		config.ApplyPace(&gameCfg, *pace)
		jewels.SetConfig(gameCfg)

		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("play", "game", res.GameID, "pace", *pace)
		if err := tui.Run(game, store, cfg, tui.WithLogger(logger), tui.WithPlayer(os.Getenv("USER"))); err != nil {
			return err
		}
	}
}
