// jewels is a match-3 tile game for the terminal.
//
// Usage:
//
//	jewels list                 - List board variants
//	jewels play [variant]       - Play a variant (default: jewels)
//	jewels menu                 - Pick variants and pace interactively
//	jewels serve                - Start SSH server for remote play
//	jewels scores <variant>     - Show high scores for a variant
//	jewels config init|path     - Write or locate the user config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.jewels/scores.db)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/core"

	// Register the board variants.
	_ "github.com/vovakirdan/tui-jewels/internal/games/jewels"
)

const defaultDBPath = "~/.jewels/scores.db"

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jewels",
	Short: "Jewels - swap tiles, line up three, watch them cascade",
	Long: `Jewels is a match-3 game for the terminal.

Swap two neighbouring tiles to line up three or more of a color. Lined-up
tiles vanish, the tiles above fall down and new ones drop in, which may
line up again.

Available commands:
  list     - Show the board variants
  play     - Play a variant directly
  menu     - Interactive variant and pace picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Write or locate the user config file

Examples:
  jewels play
  jewels play jewels_small --seed 7
  jewels play --preset large --config ./my-jewels.yaml
  jewels serve --ssh :2222
  jewels scores jewels`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		applyEnvDefaults(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env "+config.EnvDB+")")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (env "+config.EnvLogFile+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env "+config.EnvLogLevel+")")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.Getenv(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("log-file") {
		flagLogFile = config.Getenv(config.EnvLogFile, flagLogFile)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.Getenv(config.EnvLogLevel, flagLogLevel)
	}
	if f := flags.Lookup("config"); f != nil && !f.Changed {
		flagConfig = config.Getenv(config.EnvConfig, flagConfig)
	}
}
