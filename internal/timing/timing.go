// Package timing maps frames and elapsed time to animation fractions.
// Easing curves come from github.com/fogleman/ease; the clip animator
// itself only ever sees the resulting fraction.
package timing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fogleman/ease"
)

// Func is an easing curve mapping linear progress in [0, 1] to a fraction.
type Func func(t float64) float64

// DefaultEase is used when no curve is named.
const DefaultEase = "linear"

var curves = map[string]Func{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outbounce":  ease.OutBounce,
}

// Lookup returns the easing curve with the given name. Names are matched
// case-insensitively, so "inOutCubic" and "inoutcubic" are the same curve.
// An empty name yields the linear curve.
func Lookup(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultEase
	}
	f, ok := curves[key]
	if !ok {
		return nil, fmt.Errorf("timing: unknown ease %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the known curve names, sorted.
func Names() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FrameFraction returns the linear progress of frame i out of n frames,
// spread evenly so the first frame is 0 and the last is 1.
// A single frame is the end state.
func FrameFraction(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(i) / float64(n-1)
}

// Frames returns n eased fractions from start to end.
func Frames(n int, f Func) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f(FrameFraction(i, n))
	}
	return out
}

// Timeline drives an animation from wall-clock time.
type Timeline struct {
	Duration time.Duration
	Ease     Func
	// Repeat restarts the timeline after each cycle instead of holding
	// the final frame.
	Repeat bool
}

// NewTimeline creates a timeline with the named ease.
func NewTimeline(d time.Duration, easeName string, repeat bool) (Timeline, error) {
	if d <= 0 {
		return Timeline{}, fmt.Errorf("timing: duration must be positive, got %s", d)
	}
	f, err := Lookup(easeName)
	if err != nil {
		return Timeline{}, err
	}
	return Timeline{Duration: d, Ease: f, Repeat: repeat}, nil
}

// Progress returns the linear progress at elapsed, in [0, 1].
func (tl Timeline) Progress(elapsed time.Duration) float64 {
	if tl.Duration <= 0 || elapsed < 0 {
		return 0
	}
	if tl.Repeat {
		elapsed %= tl.Duration
	} else if elapsed >= tl.Duration {
		return 1
	}
	return float64(elapsed) / float64(tl.Duration)
}

// At returns the eased fraction at elapsed and whether a non-repeating
// timeline has finished.
func (tl Timeline) At(elapsed time.Duration) (fraction float64, done bool) {
	p := tl.Progress(elapsed)
	f := tl.Ease
	if f == nil {
		f = ease.Linear
	}
	return f(p), !tl.Repeat && elapsed >= tl.Duration
}
