// Package config loads clip animation definitions from YAML. It plays the
// role of the declarative resource store: each clip yields one optional
// textual value per edge attribute.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cliprect/internal/anim"
)

// File is the top-level structure of a clips YAML file.
type File struct {
	Metrics MetricsConfig `yaml:"metrics"`
	Clips   []ClipConfig  `yaml:"clips"`
}

// MetricsConfig describes the display used for dp/sp/pt/in/mm values.
// Zero fields fall back to anim.DefaultMetrics.
type MetricsConfig struct {
	Density       float64 `yaml:"density"`
	ScaledDensity float64 `yaml:"scaled_density"`
	XDPI          float64 `yaml:"xdpi"`
}

// ClipConfig defines one named clip animation.
type ClipConfig struct {
	Name       string      `yaml:"name"`
	Title      string      `yaml:"title"`
	DurationMs int         `yaml:"duration_ms"` // Preview only
	Ease       string      `yaml:"ease"`        // Preview only
	From       EdgesConfig `yaml:"from"`
	To         EdgesConfig `yaml:"to"`
}

// EdgesConfig holds the four textual edge values of one rectangle.
type EdgesConfig struct {
	Left   AttrValue `yaml:"left"`
	Top    AttrValue `yaml:"top"`
	Right  AttrValue `yaml:"right"`
	Bottom AttrValue `yaml:"bottom"`
}

// AttrValue is a raw scalar from the YAML file. Set is false when the key
// was missing or null.
type AttrValue struct {
	Raw string
	Set bool
}

// UnmarshalYAML accepts any scalar ("0", 12, 12.5, "8dp", "50%", "50%p").
func (v *AttrValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: edge value must be a scalar", n.Line)
	}
	if n.ShortTag() == "!!null" {
		*v = AttrValue{}
		return nil
	}
	*v = AttrValue{Raw: n.Value, Set: true}
	return nil
}

// MarshalYAML writes the raw scalar back out.
func (v AttrValue) MarshalYAML() (any, error) {
	if !v.Set {
		return nil, nil
	}
	return v.Raw, nil
}

// Value returns v as a string value, set.
func Value(raw string) AttrValue {
	return AttrValue{Raw: raw, Set: true}
}

// ToMetrics converts the config to anim.Metrics, filling unset fields.
func (m MetricsConfig) ToMetrics() anim.Metrics {
	out := anim.DefaultMetrics()
	if m.Density > 0 {
		out.Density = m.Density
	}
	if m.ScaledDensity > 0 {
		out.ScaledDensity = m.ScaledDensity
	}
	if m.XDPI > 0 {
		out.XDPI = m.XDPI
	}
	return out
}

// Attributes returns the clip's edge values as an attribute source.
// Missing edges are left out so the parser applies its default.
func (c ClipConfig) Attributes() anim.AttributeSet {
	set := make(anim.AttributeSet, len(anim.Attrs))
	put := func(a anim.Attr, v AttrValue) {
		if v.Set {
			set[a] = ParseValue(v.Raw)
		}
	}
	put(anim.FromLeft, c.From.Left)
	put(anim.FromTop, c.From.Top)
	put(anim.FromRight, c.From.Right)
	put(anim.FromBottom, c.From.Bottom)
	put(anim.ToLeft, c.To.Left)
	put(anim.ToTop, c.To.Top)
	put(anim.ToRight, c.To.Right)
	put(anim.ToBottom, c.To.Bottom)
	return set
}

// Build constructs the clip animation described by c.
func (c ClipConfig) Build(m MetricsConfig) *anim.ClipRect {
	return anim.FromAttributes(c.Attributes(), m.ToMetrics())
}

// Find returns the clip with the given name.
func (f File) Find(name string) (ClipConfig, bool) {
	for _, c := range f.Clips {
		if c.Name == name {
			return c, true
		}
	}
	return ClipConfig{}, false
}
