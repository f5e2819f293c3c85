package anim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cliprect/internal/core"
)

// ErrInvalidArgument is returned when a required constructor argument is missing.
var ErrInvalidArgument = errors.New("anim: invalid argument")

// EdgeSet holds the four edge specifications of one rectangle.
type EdgeSet struct {
	Left, Top, Right, Bottom EdgeSpec
}

// Resolve converts the edges into a concrete rectangle. Left and right are
// scaled against widths, top and bottom against heights, and each resolved
// coordinate is truncated toward zero.
func (s EdgeSet) Resolve(width, height, parentWidth, parentHeight int) core.Rect {
	w, h := float64(width), float64(height)
	pw, ph := float64(parentWidth), float64(parentHeight)
	return core.Rect{
		Left:   int(Resolve(s.Left, w, pw)),
		Top:    int(Resolve(s.Top, h, ph)),
		Right:  int(Resolve(s.Right, w, pw)),
		Bottom: int(Resolve(s.Bottom, h, ph)),
	}
}

func absoluteEdges(r core.Rect) EdgeSet {
	return EdgeSet{
		Left:   Abs(float64(r.Left)),
		Top:    Abs(float64(r.Top)),
		Right:  Abs(float64(r.Right)),
		Bottom: Abs(float64(r.Bottom)),
	}
}

// ClipRect animates the clip rectangle of a target between two edge sets.
//
// Edge specifications are fixed at construction. Initialize resolves them
// into two concrete rectangles once per size change, and Interpolate derives
// the rectangle for each frame from those. A ClipRect is not safe for
// concurrent use.
type ClipRect struct {
	from, to EdgeSet

	fromRect    core.Rect
	toRect      core.Rect
	initialized bool
}

// NewClipRect builds an animation from two explicit edge sets.
func NewClipRect(from, to EdgeSet) *ClipRect {
	return &ClipRect{from: from, to: to}
}

// FromAttributes builds an animation from a declarative resource store.
// Each attribute is parsed independently; absent attributes become an
// absolute edge at 0.
func FromAttributes(src AttributeSource, m Metrics) *ClipRect {
	var p Pair
	for _, a := range Attrs {
		v, ok := src.Peek(a)
		if !ok {
			v = TypedValue{}
		}
		p.SetEdge(a, ParseEdgeSpec(v, m))
	}
	return NewClipRect(p.From, p.To)
}

// FromRects builds an animation between two absolute clip rectangles.
// It returns ErrInvalidArgument if either rectangle is nil.
func FromRects(fromClip, toClip *core.Rect) (*ClipRect, error) {
	if fromClip == nil || toClip == nil {
		return nil, fmt.Errorf("%w: expected non-nil animation clip rects", ErrInvalidArgument)
	}
	return NewClipRect(absoluteEdges(*fromClip), absoluteEdges(*toClip)), nil
}

// FromInts builds an animation between two absolute rectangles given as
// edge coordinates.
func FromInts(fromL, fromT, fromR, fromB, toL, toT, toR, toB int) *ClipRect {
	return NewClipRect(
		absoluteEdges(core.NewRect(fromL, fromT, fromR, fromB)),
		absoluteEdges(core.NewRect(toL, toT, toR, toB)),
	)
}

// FromFractions builds an animation whose edges are all fractions of the
// target's own size.
func FromFractions(fromL, fromT, fromR, fromB, toL, toT, toR, toB float64) *ClipRect {
	return NewClipRect(
		EdgeSet{Left: Self(fromL), Top: Self(fromT), Right: Self(fromR), Bottom: Self(fromB)},
		EdgeSet{Left: Self(toL), Top: Self(toT), Right: Self(toR), Bottom: Self(toB)},
	)
}

// Edges returns the unresolved start and end edge sets.
func (c *ClipRect) Edges() (from, to EdgeSet) {
	return c.from, c.to
}

// Pair returns the unresolved edges addressable by attribute.
func (c *ClipRect) Pair() Pair {
	return Pair{From: c.from, To: c.to}
}

// Initialize resolves both edge sets against the target and parent size.
// It must be called whenever either size changes and before Interpolate is
// meaningful. Previously resolved rectangles are replaced.
func (c *ClipRect) Initialize(width, height, parentWidth, parentHeight int) {
	c.fromRect = c.from.Resolve(width, height, parentWidth, parentHeight)
	c.toRect = c.to.Resolve(width, height, parentWidth, parentHeight)
	c.initialized = true
}

// Initialized reports whether Initialize has been called.
func (c *ClipRect) Initialized() bool {
	return c.initialized
}

// FromRect returns the resolved start rectangle.
func (c *ClipRect) FromRect() core.Rect {
	return c.fromRect
}

// ToRect returns the resolved end rectangle.
func (c *ClipRect) ToRect() core.Rect {
	return c.toRect
}

// Interpolate returns the clip rectangle at the given fraction. The fraction
// is not clamped; values outside [0, 1] extrapolate linearly.
func (c *ClipRect) Interpolate(fraction float64) core.Rect {
	return core.Rect{
		Left:   lerpEdge(c.fromRect.Left, c.toRect.Left, fraction),
		Top:    lerpEdge(c.fromRect.Top, c.toRect.Top, fraction),
		Right:  lerpEdge(c.fromRect.Right, c.toRect.Right, fraction),
		Bottom: lerpEdge(c.fromRect.Bottom, c.toRect.Bottom, fraction),
	}
}

// lerpEdge truncates the scaled delta before adding it to the integer base,
// so fraction 0 and 1 land exactly on from and to.
func lerpEdge(from, to int, fraction float64) int {
	return from + int(float64(to-from)*fraction)
}

// ApplyTransformation writes the clip rectangle at fraction into t.
func (c *ClipRect) ApplyTransformation(fraction float64, t ClipSink) {
	r := c.Interpolate(fraction)
	t.SetClipRect(r.Left, r.Top, r.Right, r.Bottom)
}

// WillChangeTransformationMatrix is always false: a clip animation only
// touches the clip rectangle.
func (*ClipRect) WillChangeTransformationMatrix() bool {
	return false
}
