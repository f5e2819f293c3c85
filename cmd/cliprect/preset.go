package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliprect/internal/anim"
	"github.com/vovakirdan/cliprect/internal/storage"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage stored clip presets",
	Long: `Presets are clips saved in the database as their parsed edges.
Saving resolves the source clip's edges once; later changes to the clips
file do not affect a saved preset.

Examples:
  cliprect preset save myiris iris
  cliprect preset show myiris
  cliprect preset list
  cliprect preset delete myiris`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name> <clip>",
	Short: "Save a clip under a preset name",
	Args:  cobra.ExactArgs(2),
	RunE:  runPresetSave,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the edges of a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func init() {
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetDeleteCmd)
}

// openStore opens the preset database; unlike the catalog it fails hard.
func openStore() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}

func runPresetSave(_ *cobra.Command, args []string) error {
	name, clipName := args[0], args[1]

	cat, err := openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	if cat.store == nil {
		return errors.New("preset database is unavailable")
	}

	src, err := cat.lookup(clipName)
	if err != nil {
		return err
	}

	if err := cat.store.SavePreset(name, src.build().Pair()); err != nil {
		return err
	}

	logger.Info("preset saved", "name", name, "from", clipName, "origin", src.origin)
	return nil
}

func runPresetShow(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.LoadPreset(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Preset %s (saved %s)\n\n", p.Name, p.CreatedAt.Format("Jan 02 2006 15:04"))
	fmt.Printf("  %-10s  %-8s  %s\n", "Edge", "Type", "Value")
	fmt.Printf("  %-10s  %-8s  %s\n", "----", "----", "-----")
	for _, a := range anim.Attrs {
		e := p.Edges.Edge(a)
		fmt.Printf("  %-10s  %-8s  %g\n", a, e.Type, e.Value)
	}
	return nil
}

func runPresetList(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	presets, err := store.ListPresets()
	if err != nil {
		return err
	}

	if len(presets) == 0 {
		fmt.Println("No presets saved yet.")
		fmt.Println("Run 'cliprect preset save <name> <clip>' to save one.")
		return nil
	}

	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Saved")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxNameLen, p.Name, p.CreatedAt.Format("Jan 02 15:04"))
	}
	return nil
}

func runPresetDelete(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeletePreset(args[0]); err != nil {
		return err
	}

	logger.Info("preset deleted", "name", args[0])
	return nil
}
