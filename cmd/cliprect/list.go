package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available clips",
	Long: `Shows the clips defined in the clips file, the presets saved in the
database, and the built-in clips. A name found in more than one place
resolves in that order.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	entries := cat.entries()
	if len(entries) == 0 {
		fmt.Println("No clips available.")
		return nil
	}

	fmt.Println("Available clips:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.Name))
		maxTitleLen = max(maxTitleLen, len(e.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Source", "Ease")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "----")

	for _, e := range entries {
		ease := e.Ease
		if ease == "" {
			ease = "-"
		}
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, e.Name, maxTitleLen, e.Title, e.Source, ease)
	}

	fmt.Println()
	fmt.Println("Run 'cliprect preview <id>' to play a clip.")
	return nil
}
