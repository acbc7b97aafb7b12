package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragoncave/internal/assets"
	"github.com/vovakirdan/dragoncave/internal/catalogs/classic"
	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/game"
	"github.com/vovakirdan/dragoncave/internal/levels"
	"github.com/vovakirdan/dragoncave/internal/platform/tui"
)

var (
	playSetup      gameSetup
	flagWatch      bool
	flagStartLevel int
	flagMute       bool
	flagLogFile    string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the cave",
	Long: `Start a run through a level catalog.

Controls:
  Left/Right, A/D  - Move
  Up/W             - Jump
  Space            - Drop a rock (lures an awake dragon)
  Enter            - Start the run
  +/- or Up/Down   - Number of dragons (start screen)
  P                - Pause
  R                - Play again (after the run ended)
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - 1 dragon, slower fire
  normal - 2 dragons
  hard   - 3 dragons, faster fire

Examples:
  dragoncave play
  dragoncave play --catalog training
  dragoncave play --difficulty hard
  dragoncave play --levels ./my-cave.yaml --watch
  dragoncave play --start-level 5 --dragons 2`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&playSetup.catalogID, "catalog", classic.ID, "Built-in level catalog to play")
	f.StringVar(&playSetup.levelsFile, "levels", "", "Path to a YAML level catalog (overrides --catalog)")
	f.BoolVar(&flagWatch, "watch", false, "Reload --levels whenever the file changes")
	f.IntVar(&playSetup.dragons, "dragons", 0, "Number of dragons per level (0 = difficulty default)")
	f.StringVar(&playSetup.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	f.IntVar(&flagStartLevel, "start-level", 1, "Level to start each run from (1-based)")
	f.StringVar(&playSetup.configPath, "config", "", "Path to custom tuning config YAML")
	f.StringVar(&playSetup.assetsDir, "assets", "assets", "Directory with sprites and sounds")
	f.BoolVar(&flagMute, "mute", false, "Disable sound")
	f.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	f.BoolVar(&flagDebug, "debug", false, "Log debug events")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := playSetup.loadConfig()
	if err != nil {
		return err
	}
	catalog, err := playSetup.loadCatalog(cfg)
	if err != nil {
		return err
	}
	dragons, err := playSetup.dragonCount(cfg)
	if err != nil {
		return err
	}
	if flagStartLevel < 1 || flagStartLevel > catalog.Len() {
		return fmt.Errorf("--start-level must be between 1 and %d", catalog.Len())
	}

	logger, closeLog, err := newPlayLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("run", uuid.NewString())

	provider := assets.New(playSetup.assetsDir, assets.WithLogger(logger))
	defer provider.Close()

	var sounds tui.SoundBank
	if !flagMute {
		if err := provider.EnableAudio(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			sounds = provider
		}
	}

	var watcher *levels.Watcher
	if flagWatch {
		if playSetup.levelsFile == "" {
			return errors.New("--watch needs --levels")
		}
		watcher, err = levels.NewWatcher(playSetup.levelsFile, cfg.World.ScreenWidth)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	session := game.NewSession(game.Options{
		Config:     cfg,
		Catalog:    catalog,
		Dragons:    dragons,
		StartLevel: flagStartLevel - 1,
		Images:     provider,
	})

	logger.Info("session started", "catalog", catalog.ID, "levels", catalog.Len(), "dragons", dragons)
	err = tui.Run(session, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		HoldTicks: cfg.Controls.HoldTicks,
		Sounds:    sounds,
		Logger:    logger,
		Watcher:   watcher,
	})
	logger.Info("session ended")
	return err
}

// newPlayLogger logs to path, or nowhere when path is empty: the game owns
// the terminal while it runs.
func newPlayLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragoncave",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
