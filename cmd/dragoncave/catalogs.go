package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragoncave/internal/registry"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List the built-in level catalogs",
	Long:  `Shows every level catalog compiled into dragoncave.`,
	Args:  cobra.NoArgs,
	Run:   runCatalogs,
}

func runCatalogs(_ *cobra.Command, _ []string) {
	catalogs := registry.List()

	if len(catalogs) == 0 {
		fmt.Println("No catalogs available.")
		return
	}

	fmt.Println("Available catalogs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range catalogs {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "ID", "Levels", "Name")
	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "--", "------", "----")
	for _, c := range catalogs {
		fmt.Printf("  %-*s  %6d  %s\n", maxIDLen, c.ID, c.Levels, c.Name)
		if c.Description != "" {
			fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "", "", c.Description)
		}
	}

	fmt.Println()
	fmt.Println("Run 'dragoncave play --catalog <id>' to play a catalog.")
}
