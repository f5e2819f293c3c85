// Package core provides the geometry types shared by the clip engine and the
// terminal preview. It has no external dependencies so the animation math
// stays pure and testable.
package core

import "fmt"

// Rect is an integer rectangle described by its four edges.
// Left <= Right and Top <= Bottom are not enforced: inverted or degenerate
// rectangles are legal values and pass through unchanged.
type Rect struct {
	Left, Top     int
	Right, Bottom int
}

// NewRect creates a rectangle from its four edge coordinates.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectXYWH creates a rectangle from a top-left corner and a size.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right - Left. Negative for inverted rectangles.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns Bottom - Top. Negative for inverted rectangles.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Intersect returns the overlap of two rectangles, or the zero Rect when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   Max(r.Left, other.Left),
		Top:    Max(r.Top, other.Top),
		Right:  Min(r.Right, other.Right),
		Bottom: Min(r.Bottom, other.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// String formats the rectangle as "(l, t, r, b)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Size is a pair of non-negative pixel extents.
type Size struct {
	W, H int
}

// ParseSize parses "WxH" (e.g. "320x200").
func ParseSize(s string) (Size, error) {
	var sz Size
	if _, err := fmt.Sscanf(s, "%dx%d", &sz.W, &sz.H); err != nil {
		return Size{}, fmt.Errorf("invalid size %q (want WxH): %w", s, err)
	}
	if sz.W < 0 || sz.H < 0 {
		return Size{}, fmt.Errorf("invalid size %q: extents must be non-negative", s)
	}
	return sz, nil
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
