package anim

// ValueKind tags how a TypedValue from a declarative source is encoded.
type ValueKind int

const (
	// KindNull marks an absent value. It is the zero value.
	KindNull ValueKind = iota
	// KindFraction is a fraction of an extent ("50%" is stored as 0.5).
	KindFraction
	// KindFloat is a literal floating point pixel value.
	KindFloat
	// KindInt is a literal integer pixel value.
	KindInt
	// KindDimension is a number with a unit that Metrics converts to pixels.
	KindDimension
)

// Unit is a dimension unit.
type Unit int

const (
	UnitPx Unit = iota
	UnitDp
	UnitSp
	UnitPt
	UnitIn
	UnitMm
)

// TypedValue is a single attribute value as a declarative resource store
// yields it. Parent only matters for KindFraction and Unit only for
// KindDimension.
type TypedValue struct {
	Kind   ValueKind
	Number float64
	Parent bool
	Unit   Unit
}

// Fraction returns a fraction value relative to the target itself.
func Fraction(f float64) TypedValue {
	return TypedValue{Kind: KindFraction, Number: f}
}

// ParentFraction returns a fraction value relative to the parent.
func ParentFraction(f float64) TypedValue {
	return TypedValue{Kind: KindFraction, Number: f, Parent: true}
}

// Float returns a literal pixel value.
func Float(v float64) TypedValue {
	return TypedValue{Kind: KindFloat, Number: v}
}

// Int returns a literal integer pixel value.
func Int(v int) TypedValue {
	return TypedValue{Kind: KindInt, Number: float64(v)}
}

// Dimension returns a value in the given unit.
func Dimension(v float64, u Unit) TypedValue {
	return TypedValue{Kind: KindDimension, Number: v, Unit: u}
}

// Metrics describes the display used to convert dimensions to pixels.
type Metrics struct {
	Density       float64 // pixels per dp
	ScaledDensity float64 // pixels per sp
	XDPI          float64 // physical pixels per inch along x
}

// DefaultMetrics is a 160dpi display where 1dp == 1sp == 1px.
func DefaultMetrics() Metrics {
	return Metrics{Density: 1, ScaledDensity: 1, XDPI: 160}
}

// ToPixels converts a dimension to pixels.
func (m Metrics) ToPixels(v float64, u Unit) float64 {
	switch u {
	case UnitDp:
		return v * m.Density
	case UnitSp:
		return v * m.ScaledDensity
	case UnitPt:
		return v * m.XDPI / 72
	case UnitIn:
		return v * m.XDPI
	case UnitMm:
		return v * m.XDPI / 25.4
	}
	return v
}

// ParseEdgeSpec turns a declarative value into an EdgeSpec. It never fails:
// absent or unrecognized values become an absolute edge at 0.
func ParseEdgeSpec(v TypedValue, m Metrics) EdgeSpec {
	switch v.Kind {
	case KindFraction:
		if v.Parent {
			return Parent(v.Number)
		}
		return Self(v.Number)
	case KindFloat, KindInt:
		return Abs(v.Number)
	case KindDimension:
		return Abs(m.ToPixels(v.Number, v.Unit))
	}
	return Abs(0)
}
