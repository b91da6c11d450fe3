package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-run/internal/games/rocket"
	"github.com/vovakirdan/rocket-run/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Rocket Run SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game session with the title screen.
Scores are stored per server; all players share one leaderboard and
each score is recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rocket/host_key

Examples:
  rocket serve                           # Listen on :23234 with auto-generated key
  rocket serve --ssh :2222               # Listen on port 2222
  rocket serve --host-key ./my_host_key  # Use specific host key
  rocket serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"logs": "stderr"},
	RunE:        runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", settings.SSHAddress, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", settings.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.GameID = rocket.GameID

	server, err := tui.NewSSHServer(cfg, tuiOptions(store))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Starting Rocket Run SSH server on %s\n", cfg.Address)
	fmt.Fprintln(os.Stdout, "Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
