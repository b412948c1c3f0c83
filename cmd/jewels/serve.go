package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/games/jewels"
	"github.com/vovakirdan/tui-jewels/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the jewels SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant menu.
Scores are stored per server, so all users share the leaderboard;
each round records the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.jewels/host_key

Examples:
  jewels serve                           # Listen on :23234
  jewels serve --ssh :2222               # Listen on port 2222
  jewels serve --host-key ./my_host_key  # Use a specific host key
  jewels serve --db ./scores.db          # Use a specific database

Users connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle for this long")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a jewels config YAML for every session")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadJewels(flagConfig)
	if err != nil {
		return err
	}
	jewels.SetConfig(cfg)

	logger, closeLog, err := newLogger(os.Stderr, "jewels-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = flagIdleTimeout
	srvCfg.TickRate = flagFPS
	srvCfg.Logger = logger

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting jewels SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
