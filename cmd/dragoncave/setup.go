package main

import (
	"fmt"

	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/levels"
	"github.com/vovakirdan/dragoncave/internal/registry"
)

// gameSetup holds the flags shared by play and serve.
type gameSetup struct {
	configPath string
	difficulty string
	catalogID  string
	levelsFile string
	dragons    int
	assetsDir  string
}

// loadConfig reads the tuning config and applies the difficulty preset.
func (s gameSetup) loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return config.GameConfig{}, err
	}
	if s.difficulty != "" {
		preset, err := config.ParsePreset(s.difficulty)
		if err != nil {
			return config.GameConfig{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// loadCatalog returns the catalog named by the flags. A levels file wins
// over a registered catalog ID.
func (s gameSetup) loadCatalog(cfg config.GameConfig) (levels.Catalog, error) {
	if s.levelsFile != "" {
		c, err := levels.LoadFile(s.levelsFile)
		if err != nil {
			return levels.Catalog{}, err
		}
		if err := c.Validate(cfg.World.ScreenWidth); err != nil {
			return levels.Catalog{}, fmt.Errorf("%s: %w", s.levelsFile, err)
		}
		return c, nil
	}

	if !registry.Exists(s.catalogID) {
		return levels.Catalog{}, fmt.Errorf("unknown catalog %q (run 'dragoncave catalogs' to see available catalogs)", s.catalogID)
	}
	return registry.Create(s.catalogID)
}

// dragonCount resolves --dragons against the config limits.
func (s gameSetup) dragonCount(cfg config.GameConfig) (int, error) {
	if s.dragons == 0 {
		return cfg.Dragon.DefaultCount, nil
	}
	if s.dragons < 1 || s.dragons > cfg.Dragon.MaxCount {
		return 0, fmt.Errorf("--dragons must be between 1 and %d", cfg.Dragon.MaxCount)
	}
	return s.dragons, nil
}
