package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragoncave/internal/catalogs/classic"
	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/levels"
)

var levelsSetup gameSetup

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of a catalog",
	Long: `Shows the levels of a built-in catalog or a YAML catalog file.

Examples:
  dragoncave levels
  dragoncave levels --catalog training
  dragoncave levels --levels ./my-cave.yaml
  dragoncave levels validate ./my-cave.yaml
  dragoncave levels export --catalog classic > cave.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML level catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsValidate,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print a catalog as YAML",
	Long:  `Writes a catalog in the YAML format accepted by --levels, as a starting point for custom caves.`,
	Args:  cobra.NoArgs,
	RunE:  runLevelsExport,
}

func init() {
	pf := levelsCmd.PersistentFlags()
	pf.StringVar(&levelsSetup.catalogID, "catalog", classic.ID, "Built-in level catalog")
	pf.StringVar(&levelsSetup.levelsFile, "levels", "", "Path to a YAML level catalog (overrides --catalog)")
	pf.StringVar(&levelsSetup.configPath, "config", "", "Path to custom tuning config YAML")

	levelsCmd.AddCommand(levelsValidateCmd)
	levelsCmd.AddCommand(levelsExportCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := levelsSetup.loadConfig()
	if err != nil {
		return err
	}
	catalog, err := levelsSetup.loadCatalog(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", catalog.Name, catalog.ID)
	if catalog.Description != "" {
		fmt.Println(catalog.Description)
	}
	fmt.Println()

	maxNameLen := len("Name")
	for _, lvl := range catalog.Levels {
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("  %3s  %-*s  %6s  %9s  %7s\n", "#", maxNameLen, "Name", "Width", "Treasures", "Dragons")
	fmt.Printf("  %3s  %-*s  %6s  %9s  %7s\n", "--", maxNameLen, "----", "-----", "---------", "-------")
	for i, lvl := range catalog.Levels {
		fmt.Printf("  %3d  %-*s  %6.0f  %9d  %7d\n", i+1, maxNameLen, lvl.Name, lvl.Width, len(lvl.Treasures), len(lvl.Dragons))
	}

	fmt.Println()
	fmt.Printf("Run 'dragoncave play --catalog %s' to play.\n", catalog.ID)
	return nil
}

func runLevelsValidate(_ *cobra.Command, args []string) error {
	path := args[0]
	if !levels.IsCatalogFile(path) {
		return fmt.Errorf("%s: not a level catalog (expected .yaml or .yml)", path)
	}

	cfg, err := config.Load(levelsSetup.configPath)
	if err != nil {
		return err
	}
	catalog, err := levels.LoadFile(path)
	if err != nil {
		return err
	}
	if err := catalog.Validate(cfg.World.ScreenWidth); err != nil {
		return fmt.Errorf("%s is invalid:\n%w", path, err)
	}

	fmt.Printf("%s: %d levels OK\n", path, catalog.Len())
	return nil
}

func runLevelsExport(_ *cobra.Command, _ []string) error {
	cfg, err := levelsSetup.loadConfig()
	if err != nil {
		return err
	}
	catalog, err := levelsSetup.loadCatalog(cfg)
	if err != nil {
		return err
	}
	data, err := levels.Encode(catalog)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
