package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the terminal backends",
	Long:  `Shows the terminal backends that can be selected with --backend.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No backends available.")
		return
	}

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}
}
