package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragoncave/internal/assets"
	"github.com/vovakirdan/dragoncave/internal/catalogs/classic"
	"github.com/vovakirdan/dragoncave/internal/game"
	"github.com/vovakirdan/dragoncave/internal/platform/tui"
)

var (
	serveSetup      gameSetup
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Dragon Cave SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own run through the catalog. Sound is not
played for remote players.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dragoncave/host_key

Examples:
  dragoncave serve                           # Listen on :23234 with auto-generated key
  dragoncave serve --ssh :2222               # Listen on port 2222
  dragoncave serve --host-key ./my_host_key  # Use specific host key
  dragoncave serve --catalog training        # Serve the training rooms

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	f.StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	f.IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	f.StringVar(&serveSetup.catalogID, "catalog", classic.ID, "Built-in level catalog to serve")
	f.StringVar(&serveSetup.levelsFile, "levels", "", "Path to a YAML level catalog (overrides --catalog)")
	f.IntVar(&serveSetup.dragons, "dragons", 0, "Initial number of dragons (0 = difficulty default)")
	f.StringVar(&serveSetup.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	f.StringVar(&serveSetup.configPath, "config", "", "Path to custom tuning config YAML")
	f.StringVar(&serveSetup.assetsDir, "assets", "assets", "Directory with sprites")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveSetup.loadConfig()
	if err != nil {
		return err
	}
	catalog, err := serveSetup.loadCatalog(cfg)
	if err != nil {
		return err
	}
	dragons, err := serveSetup.dragonCount(cfg)
	if err != nil {
		return err
	}

	provider := assets.New(serveSetup.assetsDir)
	defer provider.Close()

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.TickRate = flagFPS
	serverCfg.HoldTicks = cfg.Controls.HoldTicks
	serverCfg.NewSession = func() *game.Session {
		return game.NewSession(game.Options{
			Config:  cfg,
			Catalog: catalog,
			Dragons: dragons,
			Images:  provider,
		})
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Dragon Cave SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
