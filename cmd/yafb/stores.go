package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/yafb/internal/registry"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List score store backends",
	Long:  `Shows the score store backends that can be selected with --store.`,
	Args:  cobra.NoArgs,
	Run:   runStores,
}

func runStores(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No score stores available.")
		return
	}

	fmt.Println("Available score stores:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Default path")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "------------")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.DefaultPath)
	}

	fmt.Println()
	fmt.Println("Run 'yafb play --store <name>' to use one.")
}
