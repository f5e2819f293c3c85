// Package presets registers the built-in clip animations.
// Import it for its side effects:
//
//	import _ "github.com/vovakirdan/cliprect/internal/presets"
package presets

import (
	"github.com/vovakirdan/cliprect/internal/anim"
	"github.com/vovakirdan/cliprect/internal/core"
	"github.com/vovakirdan/cliprect/internal/registry"
)

func init() {
	// Reveal left to right over the target's own width.
	registry.Register(registry.ClipInfo{ID: "reveal", Title: "Reveal (left to right)", Ease: "outQuad"},
		func() *anim.ClipRect {
			return anim.FromFractions(0, 0, 0, 1, 0, 0, 1, 1)
		})

	// Open from the center outward.
	registry.Register(registry.ClipInfo{ID: "iris", Title: "Iris open", Ease: "inOutCubic"},
		func() *anim.ClipRect {
			return anim.NewClipRect(
				anim.EdgeSet{Left: anim.Self(0.5), Top: anim.Self(0.5), Right: anim.Self(0.5), Bottom: anim.Self(0.5)},
				anim.EdgeSet{Left: anim.Self(0), Top: anim.Self(0), Right: anim.Self(1), Bottom: anim.Self(1)},
			)
		})

	registry.Register(registry.ClipInfo{ID: "drop", Title: "Drop down", Ease: "outBounce"},
		func() *anim.ClipRect {
			return anim.FromAttributes(anim.AttributeSet{
				anim.FromRight: anim.Fraction(1),
				anim.ToRight:   anim.Fraction(1),
				anim.ToBottom:  anim.Fraction(1),
			}, anim.DefaultMetrics())
		})

	// A horizontal band sized by the parent, widening to the full parent height.
	registry.Register(registry.ClipInfo{ID: "band", Title: "Parent band", Ease: "inOutSine"},
		func() *anim.ClipRect {
			return anim.FromAttributes(anim.AttributeSet{
				anim.FromTop:    anim.ParentFraction(0.4),
				anim.FromRight:  anim.Fraction(1),
				anim.FromBottom: anim.ParentFraction(0.6),
				anim.ToRight:    anim.Fraction(1),
				anim.ToBottom:   anim.ParentFraction(1),
			}, anim.DefaultMetrics())
		})

	registry.Register(registry.ClipInfo{ID: "grow", Title: "Grow fixed box", Ease: "linear"},
		func() *anim.ClipRect {
			from := core.NewRect(0, 0, 8, 4)
			to := core.NewRect(0, 0, 40, 12)
			c, err := anim.FromRects(&from, &to)
			if err != nil {
				panic(err)
			}
			return c
		})

	registry.Register(registry.ClipInfo{ID: "shrink", Title: "Shrink to inset", Ease: "inQuad"},
		func() *anim.ClipRect {
			return anim.FromInts(0, 0, 40, 12, 10, 3, 30, 9)
		})
}
