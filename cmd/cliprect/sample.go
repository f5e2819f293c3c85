package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cliprect/internal/anim"
	"github.com/vovakirdan/cliprect/internal/core"
	"github.com/vovakirdan/cliprect/internal/timing"
)

var (
	flagSampleSize   string
	flagSampleParent string
	flagSampleFrames int
	flagSampleEase   string
)

var sampleCmd = &cobra.Command{
	Use:   "sample <clip>",
	Short: "Print the clip rectangle frame by frame",
	Long: `Resolves a clip against a target and parent size and prints the start
and end rectangles followed by the interpolated rectangle of each frame.

The parent defaults to the terminal size and the target to half of it.

Examples:
  cliprect sample reveal --size 200x100 --parent 400x300 --frames 5
  cliprect sample spotlight --frames 11 --ease inOutSine`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&flagSampleSize, "size", "", "Target size WxH (default: half the parent)")
	sampleCmd.Flags().StringVar(&flagSampleParent, "parent", "", "Parent size WxH (default: terminal size)")
	sampleCmd.Flags().IntVar(&flagSampleFrames, "frames", 5, "Number of frames, first and last included")
	sampleCmd.Flags().StringVar(&flagSampleEase, "ease", "", "Easing curve (default: the clip's, else linear)")
}

func runSample(_ *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	src, err := cat.lookup(args[0])
	if err != nil {
		return err
	}

	parent, target, err := sampleSizes(flagSampleParent, flagSampleSize)
	if err != nil {
		return err
	}
	if flagSampleFrames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", flagSampleFrames)
	}

	easeName := flagSampleEase
	if easeName == "" {
		easeName = src.ease
	}
	ease, err := timing.Lookup(easeName)
	if err != nil {
		return err
	}
	if easeName == "" {
		easeName = timing.DefaultEase
	}

	clip := src.build()
	clip.Initialize(target.W, target.H, parent.W, parent.H)
	logger.Debug("sample", "clip", src.name, "origin", src.origin, "target", target, "parent", parent)

	writeSample(os.Stdout, src, clip, target, parent, easeName, timing.Frames(flagSampleFrames, ease))
	return nil
}

// sampleSizes parses the size flags, filling in terminal-based defaults.
func sampleSizes(parentFlag, sizeFlag string) (parent, target core.Size, err error) {
	if parentFlag != "" {
		if parent, err = core.ParseSize(parentFlag); err != nil {
			return parent, target, fmt.Errorf("--parent: %w", err)
		}
	} else {
		parent = core.Size{W: 80, H: 24}
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			parent = core.Size{W: w, H: h}
		}
	}

	if sizeFlag != "" {
		if target, err = core.ParseSize(sizeFlag); err != nil {
			return parent, target, fmt.Errorf("--size: %w", err)
		}
	} else {
		target = core.Size{W: max(1, parent.W/2), H: max(1, parent.H/2)}
	}
	return parent, target, nil
}

func writeSample(w io.Writer, src clipSource, clip *anim.ClipRect, target, parent core.Size, easeName string, fractions []float64) {
	from, to := clip.Edges()
	fmt.Fprintf(w, "clip %s (%s)  target %v  parent %v  ease %s\n", src.name, src.origin, target, parent, easeName)
	fmt.Fprintf(w, "  from  %-40s -> %v\n", edgeSetString(from), clip.FromRect())
	fmt.Fprintf(w, "  to    %-40s -> %v\n", edgeSetString(to), clip.ToRect())
	fmt.Fprintln(w)

	var xf anim.Transformation
	fmt.Fprintf(w, "  %5s  %8s  %6s  %6s  %6s  %6s\n", "frame", "fraction", "left", "top", "right", "bottom")
	for i, f := range fractions {
		clip.ApplyTransformation(f, &xf)
		r, _ := xf.ClipRect()
		fmt.Fprintf(w, "  %5d  %8.4f  %6d  %6d  %6d  %6d\n", i, f, r.Left, r.Top, r.Right, r.Bottom)
	}
}

func edgeSetString(s anim.EdgeSet) string {
	return fmt.Sprintf("[%v %v %v %v]", s.Left, s.Top, s.Right, s.Bottom)
}
