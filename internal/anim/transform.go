package anim

import "github.com/vovakirdan/cliprect/internal/core"

// ClipSink receives the clip rectangle produced for a frame.
type ClipSink interface {
	SetClipRect(left, top, right, bottom int)
}

// Animation is what a frame driver needs from an animation.
type Animation interface {
	// Initialize is called whenever the target or parent size changes.
	Initialize(width, height, parentWidth, parentHeight int)

	// ApplyTransformation writes the state at fraction into t.
	ApplyTransformation(fraction float64, t ClipSink)

	// WillChangeTransformationMatrix lets callers skip matrix work.
	WillChangeTransformationMatrix() bool
}

var _ Animation = (*ClipRect)(nil)

// Transformation is a minimal ClipSink that records the last clip rectangle.
type Transformation struct {
	clip    core.Rect
	hasClip bool
}

// SetClipRect implements ClipSink.
func (t *Transformation) SetClipRect(left, top, right, bottom int) {
	t.clip = core.NewRect(left, top, right, bottom)
	t.hasClip = true
}

// ClipRect returns the recorded clip and whether one has been set.
func (t *Transformation) ClipRect() (core.Rect, bool) {
	return t.clip, t.hasClip
}

// Clear drops the recorded clip.
func (t *Transformation) Clear() {
	t.clip = core.Rect{}
	t.hasClip = false
}
