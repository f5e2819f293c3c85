// Package anim implements clip rectangle animation: edge specifications that
// are absolute or relative to an extent, their resolution into pixel
// coordinates, and per-frame interpolation between two resolved rectangles.
//
// The package is pure computation. Timing, easing and rendering are supplied
// by callers.
package anim

import (
	"fmt"
	"strings"
)

// EdgeType determines which extent an edge value is scaled against.
type EdgeType int

const (
	// Absolute edges are raw pixel coordinates.
	Absolute EdgeType = iota
	// RelativeToSelf edges are fractions of the animated target's extent.
	RelativeToSelf
	// RelativeToParent edges are fractions of the parent's extent.
	RelativeToParent
)

var edgeTypeNames = [...]string{
	Absolute:         "absolute",
	RelativeToSelf:   "self",
	RelativeToParent: "parent",
}

// String returns the short name used in config files and storage.
func (t EdgeType) String() string {
	if t < 0 || int(t) >= len(edgeTypeNames) {
		return fmt.Sprintf("EdgeType(%d)", int(t))
	}
	return edgeTypeNames[t]
}

// ParseEdgeType maps a short name back to an EdgeType.
func ParseEdgeType(s string) (EdgeType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range edgeTypeNames {
		if n == name {
			return EdgeType(i), nil
		}
	}
	return Absolute, fmt.Errorf("unknown edge type %q", s)
}

// EdgeSpec is one edge of a clip rectangle before resolution.
// Value is a pixel count for Absolute edges and a fraction otherwise.
type EdgeSpec struct {
	Type  EdgeType
	Value float64
}

// Abs returns an absolute edge at v pixels.
func Abs(v float64) EdgeSpec {
	return EdgeSpec{Type: Absolute, Value: v}
}

// Self returns an edge at fraction f of the target's own extent.
func Self(f float64) EdgeSpec {
	return EdgeSpec{Type: RelativeToSelf, Value: f}
}

// Parent returns an edge at fraction f of the parent's extent.
func Parent(f float64) EdgeSpec {
	return EdgeSpec{Type: RelativeToParent, Value: f}
}

// String formats the spec as "<type>:<value>".
func (e EdgeSpec) String() string {
	return fmt.Sprintf("%s:%g", e.Type, e.Value)
}

// Resolve converts spec into a coordinate given the target's own extent and
// the parent's extent along the same axis. An unknown type is a programming
// error and panics.
func Resolve(spec EdgeSpec, ownExtent, parentExtent float64) float64 {
	switch spec.Type {
	case Absolute:
		return spec.Value
	case RelativeToSelf:
		return spec.Value * ownExtent
	case RelativeToParent:
		return spec.Value * parentExtent
	}
	panic(fmt.Sprintf("anim: unknown edge type %d", int(spec.Type)))
}
