// cliprect previews and inspects clip rectangle animations in the terminal.
//
// Usage:
//
//	cliprect list                    - List available clips
//	cliprect sample <clip>           - Print resolved rects frame by frame
//	cliprect preview [clip]          - Play a clip in the terminal
//	cliprect preset save|show|list|delete
//	cliprect serve                   - Serve previews over SSH
//
// Global flags:
//
//	--config <path>  - Clips YAML file (default: search ~/.cliprect, ./configs, built-in)
//	--db <path>      - Preset database (default: ~/.cliprect/presets.db)
//	--fps <rate>     - Preview frame rate (default: 30)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/cliprect/internal/presets"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagFPS     int
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "cliprect",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cliprect",
	Short: "Clip rectangle animations in your terminal",
	Long: `cliprect animates the clip rectangle of a target box between two sets of
edges. Each edge is absolute, or a fraction of the target's own size, or a
fraction of its parent's size.

Available commands:
  list     - Show all available clips
  sample   - Print the resolved rectangles frame by frame
  preview  - Play a clip in the terminal
  preset   - Save, show, list and delete stored presets
  serve    - Start SSH server for remote previews

Examples:
  cliprect list
  cliprect sample reveal --size 200x100 --parent 400x300 --frames 5
  cliprect preview iris --ease outBounce --duration 800
  cliprect preset save myiris iris
  cliprect serve --ssh :23235`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
			logger.SetReportTimestamp(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to clips YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cliprect/presets.db", "Path to preset database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Preview frame rate (frames per second)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(serveCmd)
}
