package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cliprect/internal/platform/tui"
)

var (
	flagPreviewEase     string
	flagPreviewDuration int
	flagPreviewRepeat   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [clip]",
	Short: "Play a clip in the terminal",
	Long: `Plays a clip animation. The terminal is the parent and a box centered in
it is the target. Without a clip name a picker is shown.

Controls:
  Space/P    - Pause
  Left/Right - Step while paused
  R          - Restart
  ?          - More help
  Q/Esc      - Quit

Examples:
  cliprect preview
  cliprect preview iris
  cliprect preview curtain --ease outBounce --duration 800 --repeat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagPreviewEase, "ease", "", "Easing curve (default: the clip's, else linear)")
	previewCmd.Flags().IntVar(&flagPreviewDuration, "duration", 0, "Duration in milliseconds (default: the clip's, else 1000)")
	previewCmd.Flags().BoolVar(&flagPreviewRepeat, "repeat", false, "Loop the animation")
}

func runPreview(_ *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = tui.RunPicker(cat.entries(), width, height)
		if err != nil {
			return err
		}
		if name == "" {
			return nil
		}
	}

	src, err := cat.lookup(name)
	if err != nil {
		return err
	}

	clip := src.previewClip()
	if flagPreviewEase != "" {
		clip.Ease = flagPreviewEase
	}
	if flagPreviewDuration > 0 {
		clip.Duration = time.Duration(flagPreviewDuration) * time.Millisecond
	}

	logger.Debug("preview", "clip", clip.Name, "origin", src.origin, "ease", clip.Ease, "duration", clip.Duration)

	return tui.Run(clip, tui.PreviewOptions{
		TickRate: flagFPS,
		Repeat:   flagPreviewRepeat,
		Width:    width,
		Height:   height,
		Logger:   logger,
	})
}
