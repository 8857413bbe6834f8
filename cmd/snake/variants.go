package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List all front-end variants",
	Long:  `Shows the registered front-end variants. Pass one to 'snake play --variant'.`,
	Run:   runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, v := range variants {
		desc := v.Description
		if v.DPad {
			desc += " (on-screen pad)"
		}
		if v.ID == registry.DefaultID {
			desc += " [default]"
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, desc)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --variant <id>' to play with a variant.")
}
